// File: pkg/dump/tree.go
package dump

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
)

// treeNode is one record of the arena. Children hold arena indices in display order.
type treeNode struct {
	name     string
	isDir    bool
	parent   int
	children []int
}

// treeArena accumulates the directory hierarchy before rendering. Index 0 is the root.
type treeArena struct {
	nodes []treeNode
}

func newTreeArena(rootName string) *treeArena {
	return &treeArena{nodes: []treeNode{{name: rootName, isDir: true, parent: -1}}}
}

func (a *treeArena) add(parent int, name string, isDir bool) int {
	a.nodes = append(a.nodes, treeNode{name: name, isDir: isDir, parent: parent})
	idx := len(a.nodes) - 1
	a.nodes[parent].children = append(a.nodes[parent].children, idx)
	return idx
}

// RenderTree renders the directory hierarchy under root as a box-drawing tree
// rooted at the directory's own name. Entries whose root-relative path is
// matched by ignore are dropped; directories are listed before files and
// names compare case-insensitively.
//
// A directory that cannot be listed is logged and rendered as empty.
func RenderTree(root string, ignore IgnoreParser, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	arena := newTreeArena(filepath.Base(absRoot))
	arena.build(0, absRoot, absRoot, ignore, logger)
	return arena.render()
}

// build lists directory, filters and sorts its children, and recurses into subdirectories.
func (a *treeArena) build(parent int, directory, root string, ignore IgnoreParser, logger *zap.Logger) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return
	}

	kept := entries[:0]
	for _, entry := range entries {
		relPath := relativeSlashPath(root, filepath.Join(directory, entry.Name()))
		if ignore != nil && ignore.MatchesPath(relPath) {
			logger.Debug("Skipping ignored path in tree", zap.String("path", relPath))
			continue
		}
		kept = append(kept, entry)
	}

	// Directories first, then case-insensitive name, then exact name.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		li, lj := strings.ToLower(kept[i].Name()), strings.ToLower(kept[j].Name())
		if li != lj {
			return li < lj
		}
		return kept[i].Name() < kept[j].Name()
	})

	for _, entry := range kept {
		idx := a.add(parent, entry.Name(), entry.IsDir())
		if entry.IsDir() {
			a.build(idx, filepath.Join(directory, entry.Name()), root, ignore, logger)
		}
	}
}

// render produces the final text in a single pass over the arena.
func (a *treeArena) render() string {
	var b strings.Builder
	b.WriteString(a.nodes[0].name)
	a.renderChildren(&b, 0, "")
	return b.String()
}

func (a *treeArena) renderChildren(b *strings.Builder, idx int, prefix string) {
	children := a.nodes[idx].children
	for i, child := range children {
		connector, indent := branchConnector, branchIndent
		if i == len(children)-1 {
			connector, indent = lastConnector, lastIndent
		}

		node := a.nodes[child]
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(node.name)
		if node.isDir {
			b.WriteByte('/')
			a.renderChildren(b, child, prefix+indent)
		}
	}
}
