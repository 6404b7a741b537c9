package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkchart/internal/server"
)

// serveCommand creates the serve command, which exposes layouts over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  POST /v1/layout   lay out a graph
  POST /v1/fit      fit positions into a viewport
  GET  /v1/layouts  list strategies
  GET  /healthz     liveness
  GET  /metrics     Prometheus metrics

The cache backend, default strategy and node geometry come from the config
file. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			metrics := server.NewMetrics()
			metrics.Register()

			srv := server.New(server.Options{
				Runner:       runner,
				Logger:       c.Logger,
				Metrics:      metrics,
				Config:       cfg.Layout.Config,
				Layout:       cfg.Layout.Name,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
			})
			c.Logger.Info("starting server", "addr", addr, "cache", cfg.Cache.Backend, "layout", cfg.Layout.Name)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
