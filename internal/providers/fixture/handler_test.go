package fixture

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/providers/federation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	p, _ := fixedProvider(t)
	h, err := NewHandler(p, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandlerServesFederationWireFormat(t *testing.T) {
	srv := newTestServer(t)

	q := url.Values{"query": {sports.Handball.TeamsQuery("333").String()}}
	resp, err := http.Get(srv.URL + "/swisshandball?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Teams []map[string]string `json:"teams"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Teams, 2)
	assert.Equal(t, "3331", body.Data.Teams[0]["id"])
	assert.Equal(t, "QHL", body.Data.Teams[0]["liga"])
}

func TestHandlerRejectsUnknownEndpointAndMissingQuery(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/swisscurling?query=%7Bclubs%7Bid%7D%7D")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/swissunihockey")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/swissunihockey", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandlerReportsQueryErrorsInBody(t *testing.T) {
	srv := newTestServer(t)

	q := url.Values{"query": {"{ games { id } }"}}
	resp, err := http.Get(srv.URL + "/swissunihockey?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Errors []map[string]any `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Errors, "missing teamId argument should be rejected")
}

func TestFederationClientAgainstFixtureServer(t *testing.T) {
	srv := newTestServer(t)
	client := federation.NewClient(federation.Config{BaseURL: srv.URL})
	ctx := context.Background()

	for _, s := range sports.All() {
		clubList, err := client.FetchClubs(ctx, s)
		require.NoError(t, err, s)
		require.NotEmpty(t, clubList, s)

		club := clubList[0]
		teamList, err := client.FetchTeams(ctx, s, club.ID)
		require.NoError(t, err, s)
		require.NotEmpty(t, teamList, s)

		gameList, err := client.FetchGames(ctx, s, teamList[0].ID, club.ID)
		require.NoError(t, err, s)
		require.Len(t, gameList, len(schedule), s)
		assert.NotEmpty(t, gameList[0].Date)
		if s == sports.Volleyball {
			assert.NotEmpty(t, gameList[0].City)
		}
	}
}
