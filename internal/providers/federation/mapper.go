package federation

import (
	"strings"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
)

func mapClub(c clubResponse) clubs.Club {
	return clubs.Club{
		ID:   strings.TrimSpace(string(c.ID)),
		Name: strings.TrimSpace(string(c.Name)),
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:     strings.TrimSpace(string(t.ID)),
		Name:   strings.TrimSpace(string(t.Name)),
		League: strings.TrimSpace(string(t.Liga)),
	}
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		ID:           strings.TrimSpace(string(g.ID)),
		Date:         strings.TrimSpace(string(g.Date)),
		Time:         strings.TrimSpace(string(g.Time)),
		HomeTeam:     string(g.TeamHome),
		AwayTeam:     string(g.TeamAway),
		Result:       strings.TrimSpace(string(g.Result)),
		ResultDetail: string(g.ResultDetail),
		Location:     string(g.Location),
		City:         string(g.City),
		HomeTeamLogo: string(g.TeamHomeLogo),
		AwayTeamLogo: string(g.TeamAwayLogo),
	}
}
