package fixture

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

var clubType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Club",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name": &graphql.Field{Type: graphql.String},
	},
})

var teamType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Team",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name": &graphql.Field{Type: graphql.String},
		"liga": &graphql.Field{Type: graphql.String, Description: "League, not reported by every federation"},
	},
})

var gameType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Game",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"date":         &graphql.Field{Type: graphql.String, Description: "DD.MM.YYYY"},
		"time":         &graphql.Field{Type: graphql.String},
		"teamHome":     &graphql.Field{Type: graphql.String},
		"teamAway":     &graphql.Field{Type: graphql.String},
		"teamHomeLogo": &graphql.Field{Type: graphql.String},
		"teamAwayLogo": &graphql.Field{Type: graphql.String},
		"result":       &graphql.Field{Type: graphql.String, Description: "-:- until played"},
		"resultDetail": &graphql.Field{Type: graphql.String},
		"location":     &graphql.Field{Type: graphql.String},
		"city":         &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the query schema one federation endpoint exposes, backed by source.
func NewSchema(sport sports.Sport, source providers.DataProvider) (graphql.Schema, error) {
	gamesArgs := graphql.FieldConfigArgument{
		"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
	if sport.GamesNeedClub() {
		gamesArgs["clubId"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"clubs": &graphql.Field{
				Type: graphql.NewList(clubType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					list, err := source.FetchClubs(p.Context, sport)
					if err != nil {
						return nil, err
					}
					return clubRows(list), nil
				},
			},
			"teams": &graphql.Field{
				Type: graphql.NewList(teamType),
				Args: graphql.FieldConfigArgument{
					"clubId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					list, err := source.FetchTeams(p.Context, sport, stringArg(p, "clubId"))
					if err != nil {
						return nil, err
					}
					return teamRows(list), nil
				},
			},
			"games": &graphql.Field{
				Type: graphql.NewList(gameType),
				Args: gamesArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					list, err := source.FetchGames(p.Context, sport, stringArg(p, "teamId"), stringArg(p, "clubId"))
					if err != nil {
						return nil, err
					}
					return gameRows(list), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("fixture schema for %s: %w", sport, err)
	}
	return schema, nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func clubRows(list []clubs.Club) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(list))
	for _, c := range list {
		rows = append(rows, map[string]interface{}{"id": c.ID, "name": c.Name})
	}
	return rows
}

func teamRows(list []teams.Team) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(list))
	for _, t := range list {
		row := map[string]interface{}{"id": t.ID, "name": t.Name}
		if t.League != "" {
			row["liga"] = t.League
		}
		rows = append(rows, row)
	}
	return rows
}

func gameRows(list []games.Game) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(list))
	for _, g := range list {
		rows = append(rows, map[string]interface{}{
			"id":           g.ID,
			"date":         g.Date,
			"time":         g.Time,
			"teamHome":     g.HomeTeam,
			"teamAway":     g.AwayTeam,
			"teamHomeLogo": nullable(g.HomeTeamLogo),
			"teamAwayLogo": nullable(g.AwayTeamLogo),
			"result":       g.Result,
			"resultDetail": nullable(g.ResultDetail),
			"location":     nullable(g.Location),
			"city":         nullable(g.City),
		})
	}
	return rows
}

// nullable maps empty strings to GraphQL null, as the live endpoints do.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
