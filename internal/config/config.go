package config

// Config holds runtime configuration for every studio command.
type Config struct {
	Port string
	// AdminToken guards the operator endpoints; empty disables them.
	AdminToken string
	Federation FederationConfig
	Studio     StudioConfig
	Metrics    MetricsConfig
	Store      StoreConfig
	Auth       AuthConfig
	Render     RenderConfig
	Log        LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		AdminToken: envOrDefault(envAdminToken, ""),
		Federation: loadFederation(),
		Studio:     loadStudio(),
		Metrics:    loadMetrics(),
		Store:      loadStore(),
		Auth:       loadAuth(),
		Render:     loadRender(),
		Log:        loadLog(),
	}
}
