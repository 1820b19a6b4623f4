package config

import "time"

// FederationConfig controls how we talk to the sports federation endpoints.
type FederationConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadFederation() FederationConfig {
	return FederationConfig{
		BaseURL: envOrDefault(envFederationURL, defaultFederationURL),
		Timeout: durationEnvOrDefault(envFederationTO, defaultFederationTimeout),
	}
}

// StudioConfig holds the selection flow settings.
type StudioConfig struct {
	Timezone string
	Locale   string
	// MaxGames caps how many games may be combined in one template.
	MaxGames int
}

func loadStudio() StudioConfig {
	return StudioConfig{
		Timezone: envOrDefault(envTimezone, defaultTimezone),
		Locale:   envOrDefault(envLocale, defaultLocale),
		MaxGames: intEnvOrDefault(envMaxGames, defaultMaxGames),
	}
}
