package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/http/middleware"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/providers/fixture"
)

// NewFixtureServer serves the seeded federation endpoints on cfg.Port, so the studio can be
// pointed at http://localhost:<port> instead of the live federation.
func NewFixtureServer(cfg config.Config, logger *slog.Logger) (*Server, error) {
	source := fixture.New(providers.ResolveTimezoneOrLocal(cfg.Studio.Timezone))
	handler, err := fixture.NewHandler(source, logger)
	if err != nil {
		return nil, fmt.Errorf("fixture schema: %w", err)
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	cfg.Federation.BaseURL = FixtureSource

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.LoggingMiddleware(logger, nil, handler),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return newServerWithDeps(cfg, logger, nil, netHTTPServer{srv: srv}), nil
}
