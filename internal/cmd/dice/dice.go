// Package dice parses dice server flags and starts the gRPC service.
package dice

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	server "github.com/louisbranch/dicebot/internal/services/dice/app"
)

// Config holds dice command configuration.
type Config struct {
	Port   int    `env:"DICEBOT_DICE_PORT"    envDefault:"8090"`
	Addr   string `env:"DICEBOT_DICE_ADDR"`
	DBPath string `env:"DICEBOT_DICE_DB_PATH"`
	Limits config.Limits
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dice server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The dice server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for roll history (empty disables history)")
	cfg.Limits.RegisterFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr returns the address the server binds to.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the dice gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDice, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:   cfg.ListenAddr(),
			DBPath: cfg.DBPath,
			Limits: cfg.Limits.Dice(),
		})
	})
}
