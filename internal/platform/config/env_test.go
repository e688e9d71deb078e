package config

import (
	"flag"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"DICEBOT_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICEBOT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvMapIgnoresProcessEnv(t *testing.T) {
	t.Setenv("DICEBOT_TEST_PORT", "999")

	var cfg envTestConfig
	if err := ParseEnvMap(&cfg, nil); err != nil {
		t.Fatalf("parse env map: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}

	if err := ParseEnvMap(&cfg, map[string]string{"DICEBOT_TEST_PORT": "456"}); err != nil {
		t.Fatalf("parse env map: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("expected port 456, got %d", cfg.Port)
	}
}

func TestLimitsDefaultsAndFlags(t *testing.T) {
	var limits Limits
	if err := ParseEnvMap(&limits, map[string]string{"DICEBOT_MAX_DICE": "50"}); err != nil {
		t.Fatalf("parse env map: %v", err)
	}
	if limits.MaxCount != 100 || limits.MaxDice != 50 || limits.MaxSides != 1000000 {
		t.Fatalf("unexpected limits %+v", limits)
	}

	fs := flag.NewFlagSet("limits", flag.ContinueOnError)
	limits.RegisterFlags(fs)
	if err := fs.Parse([]string{"-max-sides", "100"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if limits.MaxSides != 100 || limits.MaxDice != 50 {
		t.Fatalf("unexpected limits after flags %+v", limits)
	}

	got := limits.Dice()
	if got.MaxCount != 100 || got.MaxDice != 50 || got.MaxSides != 100 {
		t.Fatalf("unexpected dice limits %+v", got)
	}
}
