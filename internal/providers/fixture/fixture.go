// Package fixture serves a deterministic Swiss federation dataset, both in-process and over the
// federation's GraphQL-over-GET wire format.
package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/timeutil"
)

type clubSeed struct {
	id    string
	name  string
	city  string
	teams []teamSeed
}

type teamSeed struct {
	suffix string
	name   string
	league string
}

var seeds = map[sports.Sport][]clubSeed{
	sports.Unihockey: {
		{id: "401", name: "UHC Thun", city: "Thun", teams: []teamSeed{{"1", "Herren", ""}, {"2", "Damen", ""}, {"3", "U21 A", ""}}},
		{id: "402", name: "SV Wiler-Ersigen", city: "Kirchberg", teams: []teamSeed{{"1", "Herren", ""}, {"2", "U18 A", ""}}},
		{id: "403", name: "Floorball Köniz", city: "Köniz", teams: []teamSeed{{"1", "Herren", ""}, {"2", "Damen", ""}}},
		{id: "404", name: "Zug United", city: "Zug", teams: []teamSeed{{"1", "Herren", ""}}},
		{id: "405", name: "Grasshopper Club Zürich", city: "Zürich", teams: []teamSeed{{"1", "Herren", ""}}},
		{id: "406", name: "Äschi Hornets", city: "Aeschi", teams: []teamSeed{{"1", "Herren", ""}}},
	},
	sports.Volleyball: {
		{id: "7101", name: "Volero Zürich", city: "Zürich", teams: []teamSeed{{"1", "Damen 1", "NLA"}, {"2", "Damen 2", "1. Liga"}}},
		{id: "7102", name: "Volley Amriswil", city: "Amriswil", teams: []teamSeed{{"1", "Herren 1", "NLA"}}},
		{id: "7103", name: "VBC Cheseaux", city: "Cheseaux", teams: []teamSeed{{"1", "Herren 1", "NLB"}}},
		{id: "7104", name: "Volley Schönenwerd", city: "Schönenwerd", teams: []teamSeed{{"1", "Herren 1", "NLA"}}},
		{id: "7105", name: "Viteos NUC", city: "Neuchâtel", teams: []teamSeed{{"1", "Damen 1", "NLA"}}},
	},
	sports.Handball: {
		{id: "330", name: "Pfadi Winterthur", city: "Winterthur", teams: []teamSeed{{"1", "Herren", "QHL"}, {"2", "U19 Elite", "U19"}}},
		{id: "331", name: "Kadetten Schaffhausen", city: "Schaffhausen", teams: []teamSeed{{"1", "Herren", "QHL"}}},
		{id: "332", name: "HC Kriens-Luzern", city: "Kriens", teams: []teamSeed{{"1", "Herren", "QHL"}}},
		{id: "333", name: "BSV Bern", city: "Bern", teams: []teamSeed{{"1", "Herren", "QHL"}, {"2", "Damen", "SPL1"}}},
		{id: "334", name: "Wacker Thun", city: "Thun", teams: []teamSeed{{"1", "Herren", "QHL"}}},
	},
}

// schedule lays games out around today: two past, a double header today, and three upcoming.
var schedule = []struct {
	days int
	time string
}{
	{-14, "19:30"},
	{-7, "17:00"},
	{0, "14:00"},
	{0, "18:30"},
	{7, "20:00"},
	{14, "16:00"},
	{21, "19:30"},
}

// Provider returns a static dataset useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
	loc *time.Location
}

// New creates a fixture provider. Game dates are relative to "now" in loc.
func New(loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{
		now: time.Now,
		loc: loc,
	}
}

// FetchClubs returns the clubs of a sport in seed order.
func (p *Provider) FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]clubs.Club, 0, len(seeds[sport]))
	for _, c := range seeds[sport] {
		out = append(out, clubs.Club{ID: c.id, Name: c.name})
	}
	return out, nil
}

// FetchTeams returns the teams of a club. Unknown clubs have no teams.
func (p *Provider) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	club, ok := findClub(sport, clubID)
	if !ok {
		return []teams.Team{}, nil
	}
	out := make([]teams.Team, 0, len(club.teams))
	for _, t := range club.teams {
		out = append(out, teams.Team{ID: teamID(club, t), Name: t.name, League: t.league})
	}
	return out, nil
}

// FetchGames returns the schedule of a team. Handball mirrors the upstream and needs clubID.
func (p *Provider) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	club, team, ok := findTeam(sport, teamID)
	if !ok {
		return []games.Game{}, nil
	}
	if sport.GamesNeedClub() && clubID != club.id {
		return []games.Game{}, nil
	}
	return p.schedule(sport, club, team), nil
}

func (p *Provider) schedule(sport sports.Sport, club clubSeed, team teamSeed) []games.Game {
	today := timeutil.Midnight(p.now(), p.loc)
	id := teamID(club, team)
	opponents := opponentsOf(sport, club.id)
	out := make([]games.Game, 0, len(schedule))

	for i, slot := range schedule {
		opponent := opponents[i%len(opponents)]
		home, away := club, opponent
		if i%2 == 1 {
			home, away = opponent, club
		}
		g := games.Game{
			ID:       fmt.Sprintf("%s-%02d", id, i+1),
			Date:     timeutil.FormatGameDate(today.AddDate(0, 0, slot.days)),
			Time:     slot.time,
			HomeTeam: home.name + " " + team.name,
			AwayTeam: away.name + " " + team.name,
			Result:   resultFor(sport, slot.days, i),
		}
		if g.HasResult() && sport != sports.Unihockey {
			g.ResultDetail = detailFor(sport, i)
		}
		if sport == sports.Volleyball {
			g.Location = "Sporthalle " + home.city
			g.City = home.city
		}
		if sport != sports.Unihockey {
			g.HomeTeamLogo = logoURL(sport, home.id)
			g.AwayTeamLogo = logoURL(sport, away.id)
		}
		out = append(out, g)
	}
	return out
}

func resultFor(sport sports.Sport, days, index int) string {
	if days >= 0 {
		return games.NotPlayedResult
	}
	switch sport {
	case sports.Volleyball:
		return fmt.Sprintf("3:%d", index%3)
	case sports.Handball:
		return fmt.Sprintf("%d:%d", 28+index, 25+index%4)
	default:
		return fmt.Sprintf("%d:%d", 4+index%3, 3+index%2)
	}
}

func detailFor(sport sports.Sport, index int) string {
	if sport == sports.Volleyball {
		return "(25:21, 25:19, 25:23)"
	}
	return fmt.Sprintf("(%d:%d)", 14+index%3, 12+index%2)
}

func logoURL(sport sports.Sport, clubID string) string {
	return "https://fixtures.invalid/logos/" + sport.APIType() + "/" + clubID + ".png"
}

func teamID(c clubSeed, t teamSeed) string {
	return c.id + t.suffix
}

func findClub(sport sports.Sport, clubID string) (clubSeed, bool) {
	clubID = strings.TrimSpace(clubID)
	for _, c := range seeds[sport] {
		if c.id == clubID {
			return c, true
		}
	}
	return clubSeed{}, false
}

func findTeam(sport sports.Sport, id string) (clubSeed, teamSeed, bool) {
	id = strings.TrimSpace(id)
	for _, c := range seeds[sport] {
		for _, t := range c.teams {
			if teamID(c, t) == id {
				return c, t, true
			}
		}
	}
	return clubSeed{}, teamSeed{}, false
}

func opponentsOf(sport sports.Sport, clubID string) []clubSeed {
	out := make([]clubSeed, 0, len(seeds[sport]))
	for _, c := range seeds[sport] {
		if c.id != clubID {
			out = append(out, c)
		}
	}
	return out
}
