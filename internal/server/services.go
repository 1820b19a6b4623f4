package server

import (
	"context"
	"errors"
	"log/slog"

	appclubs "github.com/preston-bernstein/club-studio/internal/app/clubs"
	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	appprofiles "github.com/preston-bernstein/club-studio/internal/app/profiles"
	appteams "github.com/preston-bernstein/club-studio/internal/app/teams"
	"github.com/preston-bernstein/club-studio/internal/auth"
	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/preview"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/store"
	"github.com/preston-bernstein/club-studio/internal/wizard"
)

// Services is the assembled application layer shared by the API server, the TUI and the CLI.
type Services struct {
	Provider providers.DataProvider
	Clubs    *appclubs.Resolver
	Teams    *appteams.Resolver
	Games    *appgames.Resolver
	Profiles *appprofiles.Service
	Auth     *auth.LocalProvider
	Store    store.Store
	Renderer preview.Renderer

	closeRenderer func() error
}

// BuildServices wires resolvers, profiles, auth and the renderer from cfg. recorder may be nil.
func BuildServices(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Services {
	provider := newProviderFactory(logger, recorder).build(cfg)
	return buildServicesWithProvider(ctx, cfg, logger, recorder, provider)
}

func buildServicesWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) *Services {
	loc := providers.ResolveTimezoneOrLocal(cfg.Studio.Timezone)
	st := buildStore(ctx, cfg.Store, logger)
	profiles := appprofiles.NewService(st, logger)
	renderer, closeRenderer := buildRenderer(cfg.Render, logger, recorder)

	return &Services{
		Provider: provider,
		Clubs:    appclubs.NewResolver(provider, logger, cfg.Studio.Locale),
		Teams:    appteams.NewResolver(provider, logger, cfg.Studio.Locale),
		Games:    appgames.NewResolver(provider, logger, loc),
		Profiles: profiles,
		Auth: auth.NewLocalProvider(auth.LocalConfig{
			Tokens:      st,
			Profiles:    profiles,
			Logger:      logger,
			RedirectURL: cfg.Auth.RedirectURL,
			TokenTTL:    cfg.Auth.TokenTTL,
			SessionTTL:  cfg.Auth.SessionTTL,
		}),
		Store:         st,
		Renderer:      renderer,
		closeRenderer: closeRenderer,
	}
}

// Executor adapts the services to the wizard's command executor.
func (s *Services) Executor() wizard.Executor {
	return wizard.Executor{
		Clubs:    s.Clubs,
		Teams:    s.Teams,
		Games:    s.Games,
		Renderer: s.Renderer,
	}
}

// Close releases the renderer and the store.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.closeRenderer != nil {
		errs = append(errs, s.closeRenderer())
	}
	if s.Store != nil {
		errs = append(errs, s.Store.Close())
	}
	return errors.Join(errs...)
}
