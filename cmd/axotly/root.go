package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the top-level "axotly" command tree: run for the
// core file/directory pipeline, request for a single ad-hoc dispatch.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axotly",
		Short: "Run .ax HTTP API test files",
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newRequestCmd())
	return cmd
}
