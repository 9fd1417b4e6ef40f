package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/func/overwrite/cli"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

type animationOpts struct {
	Frames   int
	Interval time.Duration
	LogLevel int
}

func (o *animationOpts) register(flags *pflag.FlagSet, frames int) {
	flags.IntVarP(&o.Frames, "frames", "n", frames, "Number of frames to render, 0 to run until interrupted")
	flags.DurationVar(&o.Interval, "interval", 40*time.Millisecond, "Time between frames")
	flags.CountVarP(&o.LogLevel, "v", "v", "Log level")
}

func (o *animationOpts) app() *cli.App {
	app := cli.NewApp(cli.LogLevel(o.LogLevel))
	app.Interval = o.Interval
	app.Logger.Tracef("Log level %s\n", app.Logger.Level)
	return app
}

// run runs fn until it returns or the process is interrupted. On interrupt
// the context passed to fn is cancelled, giving it a chance to restore the
// terminal.
func run(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	g.Go(func() error {
		defer cancel()
		return fn(ctx)
	})
	g.Go(func() error {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	return g.Wait()
}
