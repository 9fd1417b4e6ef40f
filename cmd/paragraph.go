package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func paragraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paragraph",
		Short: "Print tasks once and only redraw their state markers",
	}
	flags := cmd.Flags()

	var opts animationOpts
	opts.register(flags, 0)
	file := flags.StringP("file", "f", "", "YAML file with tasks to show")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		app := opts.app()

		tasks, err := loadTasks(app, *file)
		if err != nil {
			app.Logger.Errorf("%v\n", err)
			os.Exit(1)
		}

		err = run(func(ctx context.Context) error {
			return app.Paragraph(ctx, tasks, opts.Frames)
		})
		if err != nil {
			app.Logger.Errorf("%v\n", err)
			os.Exit(1)
		}
	}

	return cmd
}
