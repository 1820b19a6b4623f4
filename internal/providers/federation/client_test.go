package federation

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchGamesBuildsQueryAndMapsResponse(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"data": {
				"games": [
					{
						"id": 4411,
						"date": "14.09.2024",
						"time": "17:00",
						"teamHome": "HC Kriens-Luzern",
						"teamAway": "Pfadi Winterthur",
						"teamHomeLogo": "https://logos.example/kriens.png",
						"teamAwayLogo": null,
						"result": "31:28",
						"resultDetail": "(15:14)"
					}
				]
			}
		}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/api/",
		HTTPClient: &http.Client{Transport: rt},
	})

	got, err := client.FetchGames(context.Background(), sports.Handball, "t-9", "c-3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.Path != "/api/swisshandball" {
		t.Fatalf("expected handball endpoint, got %s", captured.URL.Path)
	}
	query := captured.URL.Query().Get("query")
	if !strings.Contains(query, `games(teamId: "t-9", clubId: "c-3")`) {
		t.Fatalf("expected team and club args in query, got %q", query)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 game, got %d", len(got))
	}
	g := got[0]
	if g.ID != "4411" || g.HomeTeam != "HC Kriens-Luzern" || g.AwayTeam != "Pfadi Winterthur" {
		t.Fatalf("unexpected game %+v", g)
	}
	if g.Result != "31:28" || g.ResultDetail != "(15:14)" || g.AwayTeamLogo != "" {
		t.Fatalf("unexpected result mapping %+v", g)
	}
}

func TestFetchGamesOmitsClubForUnihockey(t *testing.T) {
	var query string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		query = req.URL.Query().Get("query")
		return jsonResponse(http.StatusOK, `{"data":{"games":[]}}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchGames(context.Background(), sports.Unihockey, "t1", "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "clubId") {
		t.Fatalf("unihockey games query should not carry clubId: %q", query)
	}
}

func TestFetchTeamsMapsLiga(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/swissvolley" {
			t.Fatalf("expected volleyball path, got %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"data":{"teams":[{"id":"7","name":"Damen 1","liga":"NLA"}]}}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FetchTeams(context.Background(), sports.Volleyball, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].League != "NLA" || got[0].Name != "Damen 1" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestFetchClubsMissingFieldYieldsEmptyList(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":{}}`, `{"data":{"clubs":null}}`} {
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, body), nil
		})
		client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

		got, err := client.FetchClubs(context.Background(), sports.Unihockey)
		if err != nil {
			t.Fatalf("body %s: unexpected error %v", body, err)
		}
		if len(got) != 0 {
			t.Fatalf("body %s: expected empty list, got %v", body, got)
		}
	}
}

func TestFetchClubsHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream down"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchClubs(context.Background(), sports.Unihockey)
	netErr, ok := providers.AsNetworkError(err)
	if !ok {
		t.Fatalf("expected network error, got %v", err)
	}
	if netErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", netErr.Status)
	}
}

func TestFetchClubsHandlesTransportError(t *testing.T) {
	boom := errors.New("connection reset")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchClubs(context.Background(), sports.Unihockey)
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped")
	}
}

func TestFetchClubsHandlesDecodeError(t *testing.T) {
	cases := []string{
		"{bad json",
		`{"data":{"clubs":{"id":"1"}}}`,
		`{"data":{"clubs":[{"id":true}]}}`,
	}
	for _, body := range cases {
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, body), nil
		})
		client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

		_, err := client.FetchClubs(context.Background(), sports.Unihockey)
		if _, ok := providers.AsDataShapeError(err); !ok {
			t.Fatalf("body %s: expected data shape error, got %v", body, err)
		}
	}
}

func TestFetchRejectsUnknownSport(t *testing.T) {
	called := false
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchClubs(context.Background(), sports.Sport("curling"))
	if !errors.Is(err, sports.ErrUnknownSport) {
		t.Fatalf("expected unknown sport error, got %v", err)
	}
	if called {
		t.Fatalf("expected no request for unknown sport")
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
