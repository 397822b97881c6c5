package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pocket/internal/flagx"
	"github.com/dmitrijs2005/pocket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep their current Config values.
type JsonConfig struct {
	DataDir          *string         `json:"data_dir"`
	RegistrationFile *string         `json:"registration_file"`
	BusyTimeout      *timex.Duration `json:"busy_timeout"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.RegistrationFile != nil {
		cfg.RegistrationFile = *jc.RegistrationFile
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	return nil
}
