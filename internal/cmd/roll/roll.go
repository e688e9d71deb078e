// Package roll parses roll command flags and rolls expressions locally.
package roll

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/dice"
	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	"github.com/louisbranch/dicebot/internal/random"
)

// Config holds roll command configuration.
type Config struct {
	Limits config.Limits
	// Seed replays a roll when HasSeed is set. Every expression uses it.
	Seed        int64
	HasSeed     bool
	Expressions []string
}

// ParseConfig parses environment and flags into a Config. Positional
// arguments are the expressions to roll.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed to replay a previous roll")
	cfg.Limits.RegisterFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})
	cfg.Expressions = fs.Args()
	return cfg, nil
}

type dieOutput struct {
	Value int  `json:"value"`
	Keep  bool `json:"keep"`
}

type setOutput struct {
	Dice  []dieOutput `json:"dice"`
	Total int         `json:"total"`
}

type rollOutput struct {
	Expression string      `json:"expression"`
	Seed       int64       `json:"seed"`
	Sets       []setOutput `json:"sets"`
	Total      int         `json:"total"`
}

// Run rolls every expression, writing one JSON object per line to out and
// one error line per failure to errOut. It fails when any expression fails.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if len(cfg.Expressions) == 0 {
		return errors.New("at least one expression is required")
	}

	var requested *int64
	if cfg.HasSeed {
		requested = &cfg.Seed
	}

	encoder := json.NewEncoder(out)
	failed := 0
	for _, expression := range cfg.Expressions {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		output, err := rollExpression(strings.TrimSpace(expression), requested, cfg.Limits.Dice())
		if err == nil {
			err = encoder.Encode(output)
		}
		if err != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %v\n", expression, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(cfg.Expressions))
	}
	return nil
}

func rollExpression(expression string, requested *int64, limits dice.Limits) (rollOutput, error) {
	seed, err := random.ResolveSeed(requested, nil)
	if err != nil {
		return rollOutput{}, err
	}
	result, err := dice.NewRoller(random.NewSource(seed), dice.WithLimits(limits)).Roll(expression)
	if err != nil {
		return rollOutput{}, err
	}

	output := rollOutput{
		Expression: expression,
		Seed:       seed,
		Sets:       make([]setOutput, 0, len(result.Sets)),
		Total:      result.Total(),
	}
	for _, set := range result.Sets {
		dieOutputs := make([]dieOutput, 0, len(set.Dice))
		for _, die := range set.Dice {
			dieOutputs = append(dieOutputs, dieOutput{Value: die.Value, Keep: die.Keep})
		}
		output.Sets = append(output.Sets, setOutput{Dice: dieOutputs, Total: set.Total})
	}
	return output, nil
}
