package config

import "time"

const (
	envPort             = "PORT"
	envAdminToken       = "ADMIN_TOKEN"
	envFederationURL    = "FEDERATION_BASE_URL"
	envFederationTO     = "FEDERATION_TIMEOUT"
	envTimezone         = "STUDIO_TIMEZONE"
	envLocale           = "STUDIO_LOCALE"
	envMaxGames         = "STUDIO_MAX_GAMES"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envDBDriver         = "PROFILE_DB_DRIVER"
	envDBDSN            = "PROFILE_DB_DSN"
	envAuthRedirect     = "AUTH_REDIRECT_URL"
	envAuthTokenTTL     = "AUTH_TOKEN_TTL"
	envAuthSessionTTL   = "AUTH_SESSION_TTL"
	envRenderEngine     = "RENDER_ENGINE"
	envRenderComponents = "RENDER_COMPONENTS_URL"
	envRenderBrowser    = "RENDER_BROWSER_BIN"
	envRenderHeadless   = "RENDER_HEADLESS"
	envRenderTimeout    = "RENDER_TIMEOUT"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLogFile          = "LOG_FILE"

	defaultPort          = "4000"
	defaultFederationURL = "https://europe-west6-myclubmanagement.cloudfunctions.net/api"
	// Upstream cloud functions cold-start slowly; keep well above the p99 we have seen.
	defaultFederationTimeout = 15 * Duration(time.Second)
	defaultTimezone          = "Europe/Zurich"
	defaultLocale            = "de-CH"
	defaultMaxGames          = 3
	defaultMetricsPort       = "9090"
	defaultDBDriver          = "sqlite"
	defaultDBDSN             = "file:data/studio.db?_pragma=busy_timeout(5000)"
	defaultAuthRedirect      = "https://www.getkanva.io/auth/callback"
	defaultAuthTokenTTL      = Duration(time.Hour)
	defaultAuthSessionTTL    = 30 * 24 * Duration(time.Hour)
	defaultRenderEngine      = "browser"
	defaultComponentsURL     = "https://unpkg.com/kanva-web-components@latest/dist/kanva-web-components/kanva-web-components.esm.js"
	defaultRenderTimeout     = 30 * Duration(time.Second)
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)
