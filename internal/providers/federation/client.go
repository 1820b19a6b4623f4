// Package federation queries the sports federation endpoints: one GraphQL query per request,
// sent on the query string of a GET.
package federation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

// Config controls how the client reaches the federation endpoints.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches clubs, teams and games and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a federation client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchClubs lists every club of the sport's federation.
func (c *Client) FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error) {
	var raw []clubResponse
	if err := c.query(ctx, sport, sport.ClubsQuery(), &raw); err != nil {
		return nil, err
	}
	out := make([]clubs.Club, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapClub(r))
	}
	return out, nil
}

// FetchTeams lists the teams of one club.
func (c *Client) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error) {
	var raw []teamResponse
	if err := c.query(ctx, sport, sport.TeamsQuery(clubID), &raw); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapTeam(r))
	}
	return out, nil
}

// FetchGames lists the games of one team in upstream order.
func (c *Client) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]games.Game, error) {
	var raw []gameResponse
	if err := c.query(ctx, sport, sport.GamesQuery(teamID, clubID), &raw); err != nil {
		return nil, err
	}
	out := make([]games.Game, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapGame(r))
	}
	return out, nil
}

// query runs q and decodes data.<field> into dst. A missing or null field leaves dst empty.
func (c *Client) query(ctx context.Context, sport sports.Sport, q sports.Query, dst any) error {
	if !sport.Valid() {
		return fmt.Errorf("federation: %w: %q", sports.ErrUnknownSport, string(sport))
	}
	req, err := c.buildRequest(ctx, sport, q)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.NetworkError{Sport: sport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.NetworkError{
			Sport:  sport,
			Status: resp.StatusCode,
			Err:    errors.New(strings.TrimSpace(string(body))),
		}
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &providers.DataShapeError{Sport: sport, Err: err}
	}

	field, ok := payload.Data[q.Field]
	if !ok || len(field) == 0 || string(field) == "null" {
		return nil
	}
	if err := json.Unmarshal(field, dst); err != nil {
		return &providers.DataShapeError{Sport: sport, Field: q.Field, Err: err}
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, sport sports.Sport, q sports.Query) (*http.Request, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(sport.APIType())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	values := url.Values{}
	values.Set("query", q.String())
	req.URL.RawQuery = values.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}
