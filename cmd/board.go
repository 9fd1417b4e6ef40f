package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/func/overwrite/cli"
	"github.com/spf13/cobra"
)

func boardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a live task board",
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
			return app.Board(ctx, tasks, opts.Frames)
		})
		if err != nil {
			app.Logger.Errorf("%v\n", err)
			os.Exit(1)
		}
	}

	return cmd
}

func loadTasks(app *cli.App, file string) ([]cli.Task, error) {
	if file == "" {
		app.Logger.Verbosef("No task file, using default tasks\n")
		return cli.DefaultTasks(), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tasks, err := cli.LoadTasks(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	app.Logger.Verbosef("Loaded %d tasks from %s\n", len(tasks), file)
	return tasks, nil
}
