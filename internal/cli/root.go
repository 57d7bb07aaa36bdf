// Package cli implements the cnpjgeo command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the cnpjgeo command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cnpjgeo",
		Short:        "CNPJ check digits and integer rectangle geometry",
		SilenceUsage: true,
	}

	cmd.AddCommand(cnpjCmd())
	cmd.AddCommand(rectCmd())
	cmd.AddCommand(serveCmd())
	return cmd
}
