package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hustlecli/hustle/pkg/catalog"
	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/docker"
	"github.com/hustlecli/hustle/pkg/envfile"
	"github.com/hustlecli/hustle/pkg/resolver"
	"github.com/hustlecli/hustle/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Copy file changes into the running container",
	Long: `Watch the working directory and copy every changed file into the
container at the configured mount target. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := invocationConfig()
		logger := newLogger(cfg)

		client, err := docker.NewClient(logger)
		if err != nil {
			return err
		}

		identity, err := resolver.Resolve(cfg, config.LoadRC(), envfile.DefaultPath)
		if err != nil {
			return err
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watcher.New(wd, identity, catalog.MountTarget(cfg), client, logger)
		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
