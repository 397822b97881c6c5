package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Pocket client.
//
// Fields:
//   - DataDir: base directory for the vault; empty means the home directory.
//     The fixed ".pocket" subdirectory is always appended.
//   - RegistrationFile: path to the device registration JSON; empty means stdin.
//   - BusyTimeout: how long SQLite waits on a locked database file.
//   - LogLevel / LogFormat: logger level (debug, info, warn, error) and
//     backend (text, json, zap).
type Config struct {
	DataDir          string        `env:"POCKET_DATA_DIR"`
	RegistrationFile string        `env:"POCKET_REGISTRATION"`
	BusyTimeout      time.Duration `env:"POCKET_BUSY_TIMEOUT"`
	LogLevel         string        `env:"POCKET_LOG_LEVEL"`
	LogFormat        string        `env:"POCKET_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ""
	c.RegistrationFile = ""
	c.BusyTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, then overlays the optional
// JSON file, the environment (including a .env file in the working
// directory) and finally the command-line flags in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseEnv overlays values from POCKET_* environment variables. Unset
// variables leave the current value in place.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}
