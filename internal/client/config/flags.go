package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/pocket/internal/flagx"
)

// ValueFlags lists the flags that take a value. The CLI uses it to tell
// subcommands apart from flag values.
var ValueFlags = []string{"-c", "-config", "-d", "-r", "-t", "-l", "-f"}

// parseFlags populates Config fields from command-line flags.
//
//	-d string   base directory for the vault
//	-r string   registration payload file
//	-t int      busy timeout (seconds)
//	-l string   log level
//	-f string   log format
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// components (and subcommands) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-r", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("pocket", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "base directory for the vault")
	fs.StringVar(&cfg.RegistrationFile, "r", cfg.RegistrationFile, "registration payload file")
	busyTimeout := fs.Int("t", int(cfg.BusyTimeout.Seconds()), "busy timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Second
		}
	})
	return nil
}
