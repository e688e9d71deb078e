// Package config loads command configuration from the environment.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/louisbranch/dicebot/internal/core/dice"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvMap loads configuration from the provided variables instead of the
// process environment.
func ParseEnvMap(target any, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Limits holds the dice bounds shared by every command that rolls.
type Limits struct {
	MaxCount uint `env:"DICEBOT_MAX_COUNT" envDefault:"100"`
	MaxDice  uint `env:"DICEBOT_MAX_DICE"  envDefault:"1000"`
	MaxSides uint `env:"DICEBOT_MAX_SIDES" envDefault:"1000000"`
}

// RegisterFlags binds the limits to fs, using the current values as defaults.
func (l *Limits) RegisterFlags(fs *flag.FlagSet) {
	fs.UintVar(&l.MaxCount, "max-count", l.MaxCount, "Maximum number of roll sets per expression")
	fs.UintVar(&l.MaxDice, "max-dice", l.MaxDice, "Maximum number of dice per set")
	fs.UintVar(&l.MaxSides, "max-sides", l.MaxSides, "Maximum number of sides per die")
}

// Dice converts the configured bounds for the dice engine.
func (l Limits) Dice() dice.Limits {
	return dice.Limits{MaxCount: l.MaxCount, MaxDice: l.MaxDice, MaxSides: l.MaxSides}
}
