package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"repod/pkg/dump"
	"repod/pkg/logging"
	"repod/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Flag names double as viper keys; REPOD_<NAME> (dashes as underscores) overrides the default.
const (
	envPrefix      = "REPOD"
	flagOutput     = "output"
	flagIgnoreFile = "ignore-file"
	flagPreamble   = "preamble"
	flagNoTree     = "no-tree"
	flagEncoding   = "encoding"
	flagSkipBinary = "skip-binary"
	flagVerbose    = "verbose"
)

// LoggerFactory builds the logger for one run.
type LoggerFactory func(verbose bool) (*zap.Logger, error)

// defaultLoggerFactory logs to stderr through pkg/logging.
func defaultLoggerFactory(verbose bool) (*zap.Logger, error) {
	return logging.New(verbose, "repod", version.Get().Version)
}

// NewRootCommand builds the repod command. Output messages go to out.
func NewRootCommand(out io.Writer, newLogger LoggerFactory) *cobra.Command {
	if newLogger == nil {
		newLogger = defaultLoggerFactory
	}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "repod [repo_path]",
		Short: "Dump repository contents to a single markdown file",
		Long: `repod walks a repository and writes its directory tree and the contents of
every file not matched by an ignore pattern into one markdown document,
ready to be handed to an LLM or a reviewer.

Ignore patterns are shell globs matched against the whole path relative to
the repository root, read from .rpdignore in addition to built-in defaults.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}
			return runDump(cmd.Context(), v, repoPath, out, newLogger)
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.Flags()
	flags.StringP(flagOutput, "o", dump.DefaultOutputFile, "output file path")
	flags.StringP(flagIgnoreFile, "i", dump.DefaultIgnoreFile, "path to ignore file (default looked up in repo_path)")
	flags.StringP(flagPreamble, "p", "", "path to preamble file")
	flags.Bool(flagNoTree, false, "disable tree structure in output")
	flags.StringP(flagEncoding, "e", dump.DefaultEncoding, "text encoding of repository files")
	flags.Bool(flagSkipBinary, false, "skip files that look binary")
	flags.BoolP(flagVerbose, "v", false, "enable debug logging")

	bindEnvironment(v, flags)
	setVersion(rootCmd)
	return rootCmd
}

// bindEnvironment lets REPOD_* variables supply values for flags not given on the command line.
func bindEnvironment(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// BindPFlags only fails for a nil flag set.
	_ = v.BindPFlags(flags)
}

// runDump resolves the effective configuration and performs one dump.
func runDump(ctx context.Context, v *viper.Viper, repoPath string, out io.Writer, newLogger LoggerFactory) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(v.GetBool(flagVerbose))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer syncLogger(logger)

	cfg, err := dump.NewConfig(repoPath,
		dump.WithOutput(v.GetString(flagOutput)),
		dump.WithIgnoreFile(ignoreFilePath(v, repoPath)),
		dump.WithPreambleFile(v.GetString(flagPreamble)),
		dump.WithTree(!v.GetBool(flagNoTree)),
		dump.WithEncoding(v.GetString(flagEncoding)),
		dump.WithSkipBinary(v.GetBool(flagSkipBinary)),
	)
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return err
	}

	summary, err := dump.Dump(ctx, cfg, logger)
	if err != nil {
		logger.Error("Error during dump process", zap.Error(err))
		return err
	}

	fmt.Fprintf(out, "Repository contents written to %s\n", summary.OutputPath)
	return nil
}

// ignoreFilePath returns the configured ignore file. When neither the flag nor
// the environment names one, .rpdignore inside the repository is used.
func ignoreFilePath(v *viper.Viper, repoPath string) string {
	if v.IsSet(flagIgnoreFile) {
		return v.GetString(flagIgnoreFile)
	}
	return filepath.Join(repoPath, dump.DefaultIgnoreFile)
}

// syncLogger flushes the logger when stderr can be synced; pipes and character
// devices other than terminals return EINVAL, which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand(os.Stdout, nil)
	return rootCmd.ExecuteContext(ctx)
}
