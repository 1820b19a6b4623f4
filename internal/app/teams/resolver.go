// Package teams resolves the teams of a club for the selection flow.
package teams

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	domainteams "github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/textutil"
)

// Resolver fetches a club's teams once per call and sorts them by name.
type Resolver struct {
	provider providers.TeamProvider
	logger   *slog.Logger
	locale   language.Tag
}

// NewResolver constructs a Resolver. locale drives name collation.
func NewResolver(provider providers.TeamProvider, logger *slog.Logger, locale string) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   logger,
		locale:   textutil.ResolveLocale(locale),
	}
}

// ListTeams returns the club's teams sorted by name. Failures yield an empty list;
// only a canceled ctx produces an error.
func (r *Resolver) ListTeams(ctx context.Context, sport sports.Sport, clubID string) ([]domainteams.Team, error) {
	list, err := r.provider.FetchTeams(ctx, sport, clubID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logging.Warn(logging.FromContext(ctx, r.logger), "teams unavailable",
			slog.String(logging.FieldSport, string(sport)),
			slog.String(logging.FieldClubID, clubID),
			slog.String("kind", providers.Kind(err)),
			slog.Any("error", err),
		)
		return []domainteams.Team{}, nil
	}
	if list == nil {
		list = []domainteams.Team{}
	}
	textutil.SortByName(r.locale, list, func(t domainteams.Team) string { return t.Name })
	return list, nil
}
