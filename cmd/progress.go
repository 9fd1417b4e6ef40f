package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func progressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a progress bar filling up",
	}
	flags := cmd.Flags()

	var opts animationOpts
	opts.register(flags, 100)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		app := opts.app()

		err := run(func(ctx context.Context) error {
			return app.Progress(ctx, opts.Frames)
		})
		if err != nil {
			app.Logger.Errorf("%v\n", err)
			os.Exit(1)
		}
	}

	return cmd
}
