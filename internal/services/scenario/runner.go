package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/random"
)

const scriptExt = ".lua"

// Result reports the outcome of one script.
type Result struct {
	Path string
	Name string
	// Rolls counts successful dice.roll calls.
	Rolls    int
	Duration time.Duration
	Err      error
}

// Passed reports whether the script ran without raising an error.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes scenario scripts.
type Runner struct {
	limits   dice.Limits
	seedFunc func() (int64, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLimits bounds the expressions scripts may roll or parse.
func WithLimits(limits dice.Limits) Option {
	return func(r *Runner) {
		r.limits = limits
	}
}

// WithSeedFunc overrides the seed used when a script rolls without one.
func WithSeedFunc(seedFunc func() (int64, error)) Option {
	return func(r *Runner) {
		if seedFunc != nil {
			r.seedFunc = seedFunc
		}
	}
}

// NewRunner builds a Runner with default limits and crypto seeds.
func NewRunner(opts ...Option) *Runner {
	runner := &Runner{limits: dice.DefaultLimits, seedFunc: random.NewSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(runner)
		}
	}
	return runner
}

// RunFile executes a single script in a fresh Lua state.
func (r *Runner) RunFile(ctx context.Context, path string) (result Result) {
	result = Result{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	state := lua.NewState()
	lua.OpenLibraries(state)
	binding := &diceBinding{ctx: ctx, limits: r.limits, seedFunc: r.seedFunc}
	registerDiceLibrary(state, binding)

	if err := lua.LoadFile(state, path, ""); err != nil {
		result.Err = fmt.Errorf("load lua: %w", err)
		return result
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		result.Err = fmt.Errorf("run lua: %w", err)
	}
	result.Rolls = binding.rolls
	return result
}

// RunDir executes every .lua file directly inside dir in name order.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]Result, error) {
	paths, err := ScriptPaths(dir)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if ctx != nil && ctx.Err() != nil {
			return results, ctx.Err()
		}
		results = append(results, r.RunFile(ctx, path))
	}
	return results, nil
}

// ScriptPaths lists the .lua files directly inside dir, sorted by name.
func ScriptPaths(dir string) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("scenario directory is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario directory: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), scriptExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	failed := 0
	for _, result := range results {
		if !result.Passed() {
			failed++
		}
	}
	return failed
}
