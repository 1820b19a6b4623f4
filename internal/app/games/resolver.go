// Package games resolves a team's schedule into date partitions and manages the bounded
// game selection.
package games

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

// Query keys one fetch. Changing any field means a new fetch.
type Query struct {
	Sport       sports.Sport
	TeamID      string
	ClubID      string
	IncludePast bool
}

// Listing is the display-ready result of a games fetch.
type Listing struct {
	Query      Query
	Partitions Partitions
	// Games is the ordered list honoring IncludePast.
	Games   []domaingames.Game
	Groups  []domaingames.DateGroup
	Skipped int
}

// Resolver fetches games and partitions them around the current day.
type Resolver struct {
	provider providers.GameProvider
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewResolver constructs a Resolver. Dates are compared at midnight in loc.
func NewResolver(provider providers.GameProvider, logger *slog.Logger, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{
		provider: provider,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// ListGames fetches the team's games once. Failures yield an empty listing; only a
// canceled ctx produces an error.
func (r *Resolver) ListGames(ctx context.Context, q Query) (Listing, error) {
	logger := logging.FromContext(ctx, r.logger)
	list, err := r.provider.FetchGames(ctx, q.Sport, q.TeamID, q.ClubID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Listing{}, ctxErr
		}
		logging.Warn(logger, "games unavailable",
			slog.String(logging.FieldSport, string(q.Sport)),
			slog.String(logging.FieldTeamID, q.TeamID),
			slog.String("kind", providers.Kind(err)),
			slog.Any("error", err),
		)
		return r.listing(logger, q, nil), nil
	}

	return r.listing(logger, q, list), nil
}

func (r *Resolver) listing(logger *slog.Logger, q Query, list []domaingames.Game) Listing {
	parts, skipped := Partition(list, r.now().In(r.loc))
	for _, err := range skipped {
		logging.Warn(logger, "skipping game with unparseable date",
			slog.String(logging.FieldSport, string(q.Sport)),
			slog.String(logging.FieldTeamID, q.TeamID),
			slog.Any("error", err),
		)
	}
	ordered := parts.Ordered(q.IncludePast)
	return Listing{
		Query:      q,
		Partitions: parts,
		Games:      ordered,
		Groups:     Group(ordered),
		Skipped:    len(skipped),
	}
}
