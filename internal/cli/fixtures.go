package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/club-studio/internal/server"
)

const defaultFixturePort = "4100"

func newFixturesCommand(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Serve seeded federation endpoints for offline development",
		Long: "Serves GET /<apiType>?query=<graphql> over a deterministic Swiss dataset.\n" +
			"Point FEDERATION_BASE_URL at it to work without the live federation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Port = port
			srv, err := server.NewFixtureServer(a.cfg, a.logger(""))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fixture federation on http://localhost:%s\n", port)

			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", defaultFixturePort, "listen port")
	return cmd
}
