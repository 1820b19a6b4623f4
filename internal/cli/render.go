package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/preview"
	"github.com/preston-bernstein/club-studio/internal/server"
)

type renderFlags struct {
	sport  string
	games  []string
	team   string
	club   string
	theme  string
	kind   string
	engine string
	out    string
}

func newRenderCommand(a *app) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one template without the wizard",
		Example: "  studio render --sport handball --game 3301-01 --game 3301-02 --team 3301 --club 330 --out previews/\n" +
			"  studio render --sport unihockey --game 4011-05 --theme kanva-dark --engine html",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.sport, "sport", "", "unihockey, volleyball or handball")
	fl.StringSliceVar(&f.games, "game", nil, fmt.Sprintf("game id, repeatable (1 to %d)", preview.MaxGames))
	fl.StringVar(&f.team, "team", "", "team id; when set, results are looked up to allow --kind result")
	fl.StringVar(&f.club, "club", "", "club id (handball schedules need it)")
	fl.StringVar(&f.theme, "theme", string(preview.DefaultTheme), "kanva, kanva-light or kanva-dark")
	fl.StringVar(&f.kind, "kind", "", "preview or result (default picks result when one is available)")
	fl.StringVar(&f.engine, "engine", "", "browser (PNG) or html")
	fl.StringVar(&f.out, "out", "", "output file or directory (default working directory)")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func (a *app) render(cmd *cobra.Command, f renderFlags) error {
	ctx := cmd.Context()
	sport, err := sports.Parse(f.sport)
	if err != nil {
		return fmt.Errorf("--sport: %w", err)
	}
	switch n := len(f.games); {
	case n == 0:
		return fmt.Errorf("--game: %w", preview.ErrNoGames)
	case n > preview.MaxGames:
		return fmt.Errorf("--game: %w", preview.ErrTooManyGames)
	}
	if f.engine != "" {
		a.cfg.Render.Engine = f.engine
	}

	logger := a.logger("")
	services := server.BuildServices(ctx, a.cfg, logger, nil)
	defer func() {
		if err := services.Close(); err != nil {
			logging.Warn(logger, "closing services failed", "error", err)
		}
	}()

	flags := make([]bool, len(f.games))
	if f.team != "" {
		listing, err := services.Games.ListGames(ctx, appgames.Query{
			Sport:       sport,
			TeamID:      f.team,
			ClubID:      f.club,
			IncludePast: true,
		})
		if err != nil {
			return err
		}
		sel := appgames.NewSelection(preview.MaxGames)
		for _, id := range f.games {
			sel = sel.Toggle(id)
		}
		if conf, ok := sel.Confirm(listing.Games); ok {
			flags = conf.ResultFlags
		}
	}

	req := preview.Request{
		APIType:     sport.APIType(),
		GameIDs:     f.games,
		ResultFlags: flags,
		Theme:       preview.Theme(f.theme),
		Kind:        preview.Kind(f.kind),
	}.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	art, err := services.Renderer.Render(ctx, req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path := outputPath(f.out, preview.FileName(req, art))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, art.Data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// outputPath treats out as a directory when it exists as one or ends in a separator.
func outputPath(out, name string) string {
	if out == "" {
		return name
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	if os.IsPathSeparator(out[len(out)-1]) {
		return filepath.Join(out, name)
	}
	return out
}
