package server

import (
	"net/url"
	"strings"
)

// FixtureSource as the federation base URL selects the in-process seed provider.
const FixtureSource = "fixture"

// sourceName labels the configured data source in logs: "fixture" or the federation host.
func sourceName(baseURL string) string {
	raw := strings.TrimSpace(baseURL)
	if raw == "" || strings.EqualFold(raw, FixtureSource) {
		return FixtureSource
	}
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return strings.ToLower(u.Host)
	}
	return "federation"
}
