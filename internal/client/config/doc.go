// Package config loads runtime configuration for the Pocket client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. POCKET_* environment variables, optionally from a .env file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   base directory for the vault (".pocket" is appended)
//	-r string   registration payload file (default: stdin)
//	-t int      SQLite busy timeout (seconds)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//
// # JSON schema
//
// Durations accept strings like "5s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/pocket",
//	  "registration_file": "/etc/pocket/device.json",
//	  "busy_timeout": "5s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
package config
