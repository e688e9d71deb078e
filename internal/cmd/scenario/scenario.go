// Package scenario parses scenario command flags and runs Lua scripts.
package scenario

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	"github.com/louisbranch/dicebot/internal/services/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Dir     string `env:"DICEBOT_SCENARIO_DIR"`
	File    string `env:"DICEBOT_SCENARIO_FILE"`
	Verbose bool   `env:"DICEBOT_SCENARIO_VERBOSE"`
	Limits  config.Limits
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory of scenario lua files")
	fs.StringVar(&cfg.File, "file", cfg.File, "path to a single scenario lua file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "report passing scripts too")
	cfg.Limits.RegisterFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the configured scripts and writes a line per script to out.
// It fails when any script fails.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	dir := strings.TrimSpace(cfg.Dir)
	file := strings.TrimSpace(cfg.File)
	if dir == "" && file == "" {
		return errors.New("one of -dir or -file is required")
	}
	if dir != "" && file != "" {
		return errors.New("-dir and -file are mutually exclusive")
	}

	runner := scenario.NewRunner(scenario.WithLimits(cfg.Limits.Dice()))
	var results []scenario.Result
	if file != "" {
		results = []scenario.Result{runner.RunFile(ctx, file)}
	} else {
		var err error
		results, err = runner.RunDir(ctx, dir)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no scenario scripts in %s", dir)
		}
	}

	for _, result := range results {
		if result.Passed() {
			if cfg.Verbose {
				fmt.Fprintf(out, "PASS %s (%d rolls, %s)\n", result.Name, result.Rolls, result.Duration)
			}
			continue
		}
		fmt.Fprintf(errOut, "FAIL %s: %v\n", result.Name, result.Err)
	}

	failed := scenario.Failed(results)
	fmt.Fprintf(out, "%d scenarios, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
