package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/club-studio/internal/metrics"
	"github.com/preston-bernstein/club-studio/internal/testutil"
)

func TestAdminStatsRequiresAuth(t *testing.T) {
	h := NewAdminHandler(metrics.NewRecorder(), "secret", nil)

	for _, header := range []string{"", "Bearer wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := testutil.ServeRequest(http.HandlerFunc(h.Stats), req)
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
}

func TestAdminStatsDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(metrics.NewRecorder(), "", nil)
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer ")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Stats), req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminStatsReportsCounters(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.RecordProviderAttempt("swisshandball", 15*time.Millisecond, nil)
	rec.RecordProviderAttempt("swisshandball", 20*time.Millisecond, errors.New("boom"))
	rec.RecordStaleResult("club")
	rec.RecordRender("result", time.Second, nil)
	h := NewAdminHandler(rec, "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Stats), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp StatsResponse
	testutil.DecodeJSON(t, rr, &resp)
	hb := resp.Providers["swisshandball"]
	if hb.Calls != 2 || hb.Errors != 1 || hb.LastLatencyMS != 20 {
		t.Fatalf("unexpected provider stats %+v", hb)
	}
	if resp.StaleResults["club"] != 1 || resp.Renders["result"] != 1 {
		t.Fatalf("unexpected counters %+v", resp)
	}
}
