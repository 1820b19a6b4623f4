package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("swissvolley", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("swissvolley", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("swissvolley"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("swissvolley"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("swissvolley"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("swissvolley")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksStaleResultsAndRenders(t *testing.T) {
	rec := NewRecorder()
	rec.RecordStaleResult("clubs")
	rec.RecordStaleResult("clubs")
	rec.RecordRender("result", time.Millisecond, nil)

	if got := rec.StaleResults("clubs"); got != 2 {
		t.Fatalf("expected 2 stale results, got %d", got)
	}
	if got := rec.Renders("result"); got != 1 {
		t.Fatalf("expected 1 render, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordStaleResult("games")
	rec.RecordRender("preview", 0, nil)
	rec.RecordHTTPRequest("GET", "/", 200, 0)
	if rec.ProviderCalls("x") != 0 || rec.StaleResults("games") != 0 || rec.Renders("preview") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
