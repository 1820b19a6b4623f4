package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/providers/federation"
	"github.com/preston-bernstein/club-studio/internal/providers/fixture"
)

// providerFactory assembles the data provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := f.selectSource(cfg)
	// No retries: a failed step is left for the user to re-trigger.
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics)
}

func (f providerFactory) selectSource(cfg config.Config) providers.DataProvider {
	name := sourceName(cfg.Federation.BaseURL)
	if name == FixtureSource {
		logging.Info(f.logger, "using fixture data source", logging.FieldProvider, name)
		return fixture.New(providers.ResolveTimezoneOrLocal(cfg.Studio.Timezone))
	}
	logging.Info(f.logger, "using federation data source", logging.FieldProvider, name)
	return federation.NewClient(federation.Config{
		BaseURL:    strings.TrimSpace(cfg.Federation.BaseURL),
		HTTPClient: &http.Client{Timeout: cfg.Federation.Timeout},
	})
}
