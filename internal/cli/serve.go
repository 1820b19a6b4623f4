package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/club-studio/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		port       string
		adminToken string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog, preview and account API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			if adminToken != "" {
				a.cfg.AdminToken = adminToken
			}
			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()

			srv := server.New(a.cfg, a.logger(""))
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 4000)")
	cmd.Flags().StringVar(&adminToken, "admin-token", "", "bearer token for /admin/stats")
	return cmd
}
