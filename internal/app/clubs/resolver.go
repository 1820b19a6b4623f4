// Package clubs resolves the club list of a sport for the selection flow.
package clubs

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	domainclubs "github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/textutil"
)

// Resolver fetches clubs once per call and sorts them by name.
type Resolver struct {
	provider providers.ClubProvider
	logger   *slog.Logger
	locale   language.Tag
}

// NewResolver constructs a Resolver. locale drives name collation.
func NewResolver(provider providers.ClubProvider, logger *slog.Logger, locale string) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   logger,
		locale:   textutil.ResolveLocale(locale),
	}
}

// ListClubs returns the sport's clubs sorted by name. Fetch failures are logged and
// yield an empty list. The only error returned is the context's, once the caller has
// abandoned the request.
func (r *Resolver) ListClubs(ctx context.Context, sport sports.Sport) ([]domainclubs.Club, error) {
	list, err := r.provider.FetchClubs(ctx, sport)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logging.Warn(logging.FromContext(ctx, r.logger), "clubs unavailable",
			slog.String(logging.FieldSport, string(sport)),
			slog.String("kind", providers.Kind(err)),
			slog.Any("error", err),
		)
		return []domainclubs.Club{}, nil
	}
	if list == nil {
		list = []domainclubs.Club{}
	}
	textutil.SortByName(r.locale, list, func(c domainclubs.Club) string { return c.Name })
	return list, nil
}

// Filter narrows an already fetched list by case-insensitive substring match on the name.
// A blank query returns list unchanged.
func Filter(list []domainclubs.Club, query string) []domainclubs.Club {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	out := make([]domainclubs.Club, 0, len(list))
	for _, c := range list {
		if textutil.ContainsFold(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}
