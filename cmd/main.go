package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exec executes the main command.
func Exec() {
	cmd := &cobra.Command{
		Use:   "overwrite",
		Short: "Redraw terminal output in place",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		},
	}

	cmd.AddCommand(versionCommand())
	cmd.AddCommand(boardCommand())
	cmd.AddCommand(paragraphCommand())
	cmd.AddCommand(progressCommand())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
