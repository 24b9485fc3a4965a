// File: cmd/version.go
package cmd

import (
	"repod/pkg/version"

	"github.com/spf13/cobra"
)

// setVersion enables --version on the root command.
func setVersion(rootCmd *cobra.Command) {
	info := version.Get()
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(info.String() + "\n")
}
