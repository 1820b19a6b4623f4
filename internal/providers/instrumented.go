package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with per-call metrics and failure logs.
// It never retries: a failed fetch is reported once and the caller decides what to show.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner. Metrics are keyed by the sport's API type.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error) {
	start := p.now()
	result, err := p.inner.FetchClubs(ctx, sport)
	p.observe(ctx, sport, "clubs", start, len(result), err)
	return result, err
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error) {
	start := p.now()
	result, err := p.inner.FetchTeams(ctx, sport, clubID)
	p.observe(ctx, sport, "teams", start, len(result), err, slog.String(logging.FieldClubID, clubID))
	return result, err
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]games.Game, error) {
	start := p.now()
	result, err := p.inner.FetchGames(ctx, sport, teamID, clubID)
	p.observe(ctx, sport, "games", start, len(result), err, slog.String(logging.FieldTeamID, teamID))
	return result, err
}

func (p *instrumentedProvider) observe(ctx context.Context, sport sports.Sport, what string, start time.Time, count int, err error, attrs ...any) {
	elapsed := p.now().Sub(start)
	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(sport.APIType(), elapsed, err)
	}
	logger := logging.FromContext(ctx, p.logger)
	attrs = append(attrs,
		slog.String("resource", what),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, sport.APIType(), "provider fetch failed",
			append(attrs, slog.String("kind", Kind(err)), slog.Any("error", err))...)
		return
	}
	logWithProvider(ctx, logger, slog.LevelDebug, sport.APIType(), "provider fetch complete",
		append(attrs, slog.Int(logging.FieldCount, count))...)
}
