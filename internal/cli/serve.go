package cli

import (
	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/internal/server"
	"github.com/mapforge/mapforge/pkg/cache"
	"github.com/mapforge/mapforge/pkg/pipeline"
)

// serveCommand creates the serve command, which renders uploaded map files
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve map rendering over HTTP",
		Long: `Start an HTTP server that renders uploaded map annotation files.

POST map files to /render as multipart "files" fields; the response is the
rendered image (png by default, ?format=svg for the vector document).
With --redis, rendered artifacts are cached in Redis so multiple instances
can share them; otherwise the local file cache is used.`,
		Example: `  mapforge serve
  mapforge serve --addr :9000 --redis localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			if redisAddr == "" {
				redisAddr = c.Config.Redis
			}

			artifactCache := c.newCache(false)
			if redisAddr != "" {
				rc, err := cache.NewRedisCache(cmd.Context(), redisAddr)
				if err != nil {
					return err
				}
				artifactCache = rc
			}
			defer artifactCache.Close()

			runner := pipeline.NewRunner(artifactCache, nil, c.Logger)
			return server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8734)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for shared artifact caching")

	return cmd
}
