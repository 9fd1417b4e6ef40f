package cmd

import (
	"fmt"
	"os"

	"github.com/func/overwrite/version"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
	return cmd
}
