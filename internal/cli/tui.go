package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/club-studio/internal/auth"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/server"
	"github.com/preston-bernstein/club-studio/internal/tui"
	"github.com/preston-bernstein/club-studio/internal/wizard"
)

func newTUICommand(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick sport, club, team and games in the terminal and preview the template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := a.logger(filepath.Join(os.TempDir(), serviceName+".log"))
			recorder := metrics.NewRecorder()

			services := server.BuildServices(ctx, a.cfg, logger, recorder)
			defer func() {
				if err := services.Close(); err != nil {
					logging.Warn(logger, "closing services failed", "error", err)
				}
			}()

			session := auth.NewContext(services.Auth, services.Profiles, logger)
			if err := session.Start(ctx); err != nil {
				logging.Warn(logger, "session unavailable", "error", err)
			}
			defer session.Close()

			runner := wizard.NewRunner(ctx, services.Executor(), wizard.New(a.cfg.Studio.MaxGames), logger, recorder)
			defer runner.Close()

			return tui.Run(ctx, tui.Options{
				Runner: runner,
				Auth:   session,
				OutDir: outDir,
				Logger: logger,
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for saved previews")
	return cmd
}
