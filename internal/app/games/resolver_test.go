package games

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

type stubProvider struct {
	list      []domaingames.Game
	err       error
	calls     int
	lastTeam  string
	lastClub  string
	lastSport sports.Sport
}

func (s *stubProvider) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]domaingames.Game, error) {
	s.calls++
	s.lastSport, s.lastTeam, s.lastClub = sport, teamID, clubID
	return s.list, s.err
}

func newTestResolver(t *testing.T, p providers.GameProvider, buf *bytes.Buffer) *Resolver {
	t.Helper()
	loc := zurich(t)
	var logger *slog.Logger
	if buf != nil {
		logger = slog.New(slog.NewTextHandler(buf, nil))
	}
	r := NewResolver(p, logger, loc)
	r.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return r
}

func TestListGamesOrdersAndGroups(t *testing.T) {
	p := &stubProvider{list: []domaingames.Game{
		{ID: "f", Date: "11.03.2024"},
		{ID: "p1", Date: "01.01.2024"},
		{ID: "t", Date: "10.03.2024"},
		{ID: "p3", Date: "03.01.2024"},
		{ID: "t2", Date: "10.03.2024"},
	}}
	r := newTestResolver(t, p, nil)

	listing, err := r.ListGames(context.Background(), Query{Sport: sports.Handball, TeamID: "t1", ClubID: "c1", IncludePast: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"p3", "p1", "t", "t2", "f"}, ids(listing.Games)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(listing.Groups) != 4 || !listing.Groups[2].MultiGame {
		t.Fatalf("unexpected groups %+v", listing.Groups)
	}
	if p.lastClub != "c1" || p.lastTeam != "t1" || p.lastSport != sports.Handball {
		t.Fatalf("query not forwarded: %+v", p)
	}

	listing, _ = r.ListGames(context.Background(), Query{Sport: sports.Handball, TeamID: "t1", ClubID: "c1"})
	if diff := cmp.Diff([]string{"t", "t2", "f"}, ids(listing.Games)); diff != "" {
		t.Fatalf("without past (-want +got):\n%s", diff)
	}
	if p.calls != 2 {
		t.Fatalf("expected a fresh fetch per call, got %d", p.calls)
	}
}

func TestListGamesFailureYieldsEmptyListing(t *testing.T) {
	var buf bytes.Buffer
	p := &stubProvider{err: &providers.NetworkError{Sport: sports.Unihockey, Err: errors.New("boom")}}
	r := newTestResolver(t, p, &buf)

	listing, err := r.ListGames(context.Background(), Query{Sport: sports.Unihockey, TeamID: "t"})
	if err != nil {
		t.Fatalf("expected error to be absorbed, got %v", err)
	}
	if len(listing.Games) != 0 || len(listing.Groups) != 0 {
		t.Fatalf("expected empty listing, got %+v", listing)
	}
	if !strings.Contains(buf.String(), "games unavailable") {
		t.Fatalf("expected diagnostic log, got %q", buf.String())
	}
}

func TestListGamesFailureWithoutLogger(t *testing.T) {
	r := newTestResolver(t, &stubProvider{err: errors.New("boom")}, nil)

	listing, err := r.ListGames(context.Background(), Query{Sport: sports.Volleyball, TeamID: "t"})
	if err != nil {
		t.Fatalf("expected error to be absorbed, got %v", err)
	}
	if len(listing.Games) != 0 {
		t.Fatalf("expected empty listing, got %+v", listing)
	}
}

func TestListGamesLogsSkippedDates(t *testing.T) {
	var buf bytes.Buffer
	p := &stubProvider{list: []domaingames.Game{{ID: "bad", Date: "soon"}, {ID: "ok", Date: "12.03.2024"}}}
	r := newTestResolver(t, p, &buf)

	listing, err := r.ListGames(context.Background(), Query{Sport: sports.Volleyball, TeamID: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.Skipped != 1 || len(listing.Games) != 1 {
		t.Fatalf("expected one skipped and one kept game, got %+v", listing)
	}
	if !strings.Contains(buf.String(), "unparseable date") {
		t.Fatalf("expected skip log, got %q", buf.String())
	}
}

func TestListGamesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newTestResolver(t, &stubProvider{err: context.Canceled}, nil)
	if _, err := r.ListGames(ctx, Query{Sport: sports.Unihockey}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
