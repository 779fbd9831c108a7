package cli

import (
	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/internal/server"
)

// serveCommand creates the serve command running the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Long: `Serve label previews and exports over HTTP for back-office UIs.

Routes:
  GET /healthz                      liveness check
  GET /media                        supported media sizes
  GET /labels/{id}/document.json    assembled label document
  GET /labels/{id}/layout.json      computed layout
  GET /labels/{id}/preview.png      raster preview
  GET /labels/{id}/label.pdf        print-ready PDF
  GET /labels/{id}/label.svg        vector rendition
  GET /labels/{id}/print.html       browser print document

All label routes accept ?size= with one of the media size keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			listen := addr
			if listen == "" {
				listen = c.Config.ListenAddr
			}

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			srv := server.New(runner, c.newSource(false), c.Config.BackendURL, c.Logger)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
