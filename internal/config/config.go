package config

// Config holds runtime settings for the EcoTracker CLI.
//
// Fields:
//   - DatabasePath: filesystem path (or sqlite DSN) of the local store.
//   - LogLevel: minimum log level emitted ("debug", "info", "warn", "error").
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "ecotracker.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
