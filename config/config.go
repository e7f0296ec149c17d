// Package config loads process settings from a .env file, BLACKJACK_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "BLACKJACK_"

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

// Config holds the settings shared by the web and console commands.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:"localhost:8080"`
	TLS             bool          `env:"TLS" envDefault:"false"`
	FirstGameID     int64         `env:"FIRST_GAME_ID" envDefault:"0"`
	Seed            uint64        `env:"SEED" envDefault:"0"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadDotEnv exports the variables of the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseEnv fills a Config from the environment, applying defaults for
// unset variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds flags to cfg using its current values as defaults.
func RegisterFlags(flags *flag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flags.BoolVar(&cfg.TLS, "tls", cfg.TLS, "serve HTTPS with a self-signed certificate")
	flags.Int64Var(&cfg.FirstGameID, "first-game-id", cfg.FirstGameID, "identifier of the first game")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "deterministic shuffle seed, 0 for a random deck")
	flags.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
}

// Load reads the .env file, then the environment, then args.
func Load(flags *flag.FlagSet, args []string) (Config, error) {
	if flags == nil {
		return Config{}, errors.New("flag set is required")
	}
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	RegisterFlags(flags, &cfg)
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}
