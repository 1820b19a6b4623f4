// Package sports is the static catalog of supported federations.
package sports

import (
	"errors"
	"fmt"
	"strings"
)

// Sport identifies one of the supported federations' game types.
type Sport string

const (
	Unihockey  Sport = "unihockey"
	Volleyball Sport = "volleyball"
	Handball   Sport = "handball"
)

// ErrUnknownSport is returned by Parse for values outside the catalog.
var ErrUnknownSport = errors.New("unknown sport")

type entry struct {
	label      string
	apiType    string
	teamFields []string
	gameFields []string
	gamesClub  bool
}

var catalog = map[Sport]entry{
	Unihockey: {
		label:      "Unihockey",
		apiType:    "swissunihockey",
		teamFields: []string{"id", "name"},
		gameFields: []string{"id", "result", "date", "time", "teamHome", "teamAway"},
	},
	Volleyball: {
		label:      "Volleyball",
		apiType:    "swissvolley",
		teamFields: []string{"id", "name", "liga"},
		gameFields: []string{"id", "date", "time", "location", "city", "teamHome", "teamAway", "teamHomeLogo", "teamAwayLogo", "result", "resultDetail"},
	},
	Handball: {
		label:      "Handball",
		apiType:    "swisshandball",
		teamFields: []string{"id", "name", "liga"},
		gameFields: []string{"id", "teamHome", "teamAway", "teamHomeLogo", "teamAwayLogo", "date", "time", "result", "resultDetail"},
		gamesClub:  true,
	},
}

// All returns the supported sports in display order.
func All() []Sport {
	return []Sport{Unihockey, Volleyball, Handball}
}

// Parse resolves a sport from user input (case-insensitive).
func Parse(raw string) (Sport, error) {
	s := Sport(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := catalog[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSport, raw)
	}
	return s, nil
}

// Valid reports whether s is part of the catalog.
func (s Sport) Valid() bool {
	_, ok := catalog[s]
	return ok
}

// Label is the human-readable name.
func (s Sport) Label() string {
	return catalog[s].label
}

// APIType is the federation endpoint segment, also used by the preview components.
func (s Sport) APIType() string {
	return catalog[s].apiType
}

// GamesNeedClub reports whether the games query must carry the club id.
func (s Sport) GamesNeedClub() bool {
	return catalog[s].gamesClub
}

// ClubsQuery returns the query listing all clubs of the federation.
func (s Sport) ClubsQuery() Query {
	return Query{Field: "clubs", Selection: []string{"id", "name"}}
}

// TeamsQuery returns the query listing the teams of one club.
func (s Sport) TeamsQuery(clubID string) Query {
	return Query{
		Field:     "teams",
		Args:      []Arg{{Name: "clubId", Value: clubID}},
		Selection: catalog[s].teamFields,
	}
}

// GamesQuery returns the query listing the games of one team.
// clubID is only sent for sports whose endpoint requires it.
func (s Sport) GamesQuery(teamID, clubID string) Query {
	args := []Arg{{Name: "teamId", Value: teamID}}
	if s.GamesNeedClub() {
		args = append(args, Arg{Name: "clubId", Value: clubID})
	}
	return Query{Field: "games", Args: args, Selection: catalog[s].gameFields}
}
