package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/serve"
)

func serveCmd(global *globalFlags) *cobra.Command {
	var (
		addr     string
		root     string
		noReload bool
		poll     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

Each tree document in the pages directory is served at /<name>, with
index.yaml at /. Pages are rendered on every request; with live reload
on, connected browsers refresh when a document changes.

Metrics are exposed at /metrics.

Examples:
  aurochs serve
  aurochs serve --addr=:3000 --root=site
  aurochs serve --no-reload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			set := cmd.Flags().Changed
			if set("addr") {
				cfg.Serve.Addr = addr
			}
			if set("root") {
				cfg.Serve.Root = root
			}
			if set("poll") {
				cfg.Serve.Poll = poll
			}
			if noReload {
				cfg.Serve.Reload = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			fmt.Fprintln(out, "  serve")
			fmt.Fprintln(out)
			info(out, "Pages:   %s", cfg.RootPath())
			info(out, "Address: %s", cfg.Serve.Addr)
			fmt.Fprintln(out)

			server := serve.New(serve.Options{
				Addr:   cfg.Serve.Addr,
				Root:   cfg.RootPath(),
				Render: cfg.RenderConfig(),
				Reload: cfg.Serve.Reload,
				Poll:   cfg.Serve.Poll,
				Logger: slog.Default(),
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "\n  Shut down")
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from aurochs.yaml)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Pages directory (default from aurochs.yaml)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	cmd.Flags().DurationVar(&poll, "poll", 0, "Change scan interval (default from aurochs.yaml)")

	return cmd
}
