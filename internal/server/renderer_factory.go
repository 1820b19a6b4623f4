package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/preview"
	"github.com/preston-bernstein/club-studio/internal/preview/rodrender"
)

const htmlEngine = "html"

// buildRenderer selects the preview engine and wraps it with metrics. The returned close
// func releases the browser, if one was started.
func buildRenderer(cfg config.RenderConfig, logger *slog.Logger, recorder *metrics.Recorder) (preview.Renderer, func() error) {
	if strings.EqualFold(cfg.Engine, htmlEngine) {
		base := preview.HTMLRenderer{ComponentsURL: cfg.ComponentsURL}
		return preview.WithMetrics(base, logger, recorder), func() error { return nil }
	}
	browser := rodrender.New(rodrender.Config{
		Bin:           cfg.BrowserBin,
		Headless:      cfg.Headless,
		ComponentsURL: cfg.ComponentsURL,
		Timeout:       cfg.Timeout,
		Logger:        logger,
	})
	return preview.WithMetrics(browser, logger, recorder), browser.Close
}
