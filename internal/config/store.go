package config

import "time"

// StoreConfig selects the profile database.
type StoreConfig struct {
	Driver string // sqlite or pgx
	DSN    string
}

func loadStore() StoreConfig {
	return StoreConfig{
		Driver: envOrDefault(envDBDriver, defaultDBDriver),
		DSN:    envOrDefault(envDBDSN, defaultDBDSN),
	}
}

// AuthConfig controls magic-link sign in.
type AuthConfig struct {
	RedirectURL string
	TokenTTL    time.Duration
	SessionTTL  time.Duration
}

func loadAuth() AuthConfig {
	return AuthConfig{
		RedirectURL: envOrDefault(envAuthRedirect, defaultAuthRedirect),
		TokenTTL:    durationEnvOrDefault(envAuthTokenTTL, defaultAuthTokenTTL),
		SessionTTL:  durationEnvOrDefault(envAuthSessionTTL, defaultAuthSessionTTL),
	}
}

// RenderConfig controls the headless preview renderer.
type RenderConfig struct {
	// Engine is "browser" (PNG via headless Chrome) or "html" (the hosting page only).
	Engine        string
	ComponentsURL string
	BrowserBin    string
	Headless      bool
	Timeout       time.Duration
}

func loadRender() RenderConfig {
	return RenderConfig{
		Engine:        envOrDefault(envRenderEngine, defaultRenderEngine),
		ComponentsURL: envOrDefault(envRenderComponents, defaultComponentsURL),
		BrowserBin:    envOrDefault(envRenderBrowser, ""),
		Headless:      boolEnvOrDefault(envRenderHeadless, true),
		Timeout:       durationEnvOrDefault(envRenderTimeout, defaultRenderTimeout),
	}
}

// LogConfig mirrors logging.Config so the config package stays dependency free.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
		File:   envOrDefault(envLogFile, ""),
	}
}
