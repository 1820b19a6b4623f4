package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	domainteams "github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

type stubProvider struct {
	list       []domainteams.Team
	err        error
	lastClubID string
}

func (s *stubProvider) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]domainteams.Team, error) {
	s.lastClubID = clubID
	return s.list, s.err
}

func TestListTeamsSortsAndForwardsClub(t *testing.T) {
	p := &stubProvider{list: []domainteams.Team{
		{ID: "3", Name: "U21 A"},
		{ID: "1", Name: "Damen", League: "NLA"},
		{ID: "2", Name: "Herren"},
	}}
	r := NewResolver(p, nil, "de-CH")

	got, err := r.ListTeams(context.Background(), sports.Volleyball, "7101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domainteams.Team{
		{ID: "1", Name: "Damen", League: "NLA"},
		{ID: "2", Name: "Herren"},
		{ID: "3", Name: "U21 A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected teams (-want +got):\n%s", diff)
	}
	if p.lastClubID != "7101" {
		t.Fatalf("expected club id forwarded, got %q", p.lastClubID)
	}
}

func TestListTeamsDataShapeErrorYieldsEmptyList(t *testing.T) {
	p := &stubProvider{err: &providers.DataShapeError{Sport: sports.Handball, Field: "teams"}}
	r := NewResolver(p, nil, "")

	got, err := r.ListTeams(context.Background(), sports.Handball, "330")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty list and nil error, got %v, %v", got, err)
	}
}

func TestListTeamsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewResolver(&stubProvider{err: errors.New("aborted")}, nil, "")
	if _, err := r.ListTeams(ctx, sports.Handball, "330"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
