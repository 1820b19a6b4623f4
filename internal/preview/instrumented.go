package preview

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
)

type instrumentedRenderer struct {
	inner   Renderer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// WithMetrics wraps r to record render counts, latency and failures.
func WithMetrics(r Renderer, logger *slog.Logger, recorder *metrics.Recorder) Renderer {
	return &instrumentedRenderer{inner: r, logger: logger, metrics: recorder}
}

func (r *instrumentedRenderer) Render(ctx context.Context, req Request) (Artifact, error) {
	req = req.Normalize()
	start := time.Now()
	art, err := r.inner.Render(ctx, req)
	elapsed := time.Since(start)
	r.metrics.RecordRender(string(req.Kind), elapsed, err)

	logger := logging.FromContext(ctx, r.logger)
	attrs := []any{
		slog.String("kind", string(req.Kind)),
		slog.String("theme", string(req.Theme)),
		slog.String("api_type", req.APIType),
		slog.Int(logging.FieldCount, len(req.GameIDs)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		logging.Error(logger, "preview render failed", err, attrs...)
		return Artifact{}, err
	}
	logging.Info(logger, "preview rendered", append(attrs, slog.Int("bytes", len(art.Data)))...)
	return art, nil
}
