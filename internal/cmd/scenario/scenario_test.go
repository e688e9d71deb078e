package scenario

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "" || cfg.File != "" {
		t.Fatalf("expected empty paths, got %+v", cfg)
	}
	if cfg.Limits.MaxCount != 100 {
		t.Fatalf("expected default max count, got %d", cfg.Limits.MaxCount)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("DICEBOT_SCENARIO_DIR", "env-dir")
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-file", "one.lua", "-verbose"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "env-dir" || cfg.File != "one.lua" || !cfg.Verbose {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestRunRequiresExactlyOneSource(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error without -dir or -file")
	}
	if err := Run(context.Background(), Config{Dir: "a", File: "b"}, nil, nil); err == nil {
		t.Fatal("expected error with both -dir and -file")
	}
}

func TestRunDirReportsResults(t *testing.T) {
	dir := t.TempDir()
	scripts := map[string]string{
		"pass.lua": `assert(#dice.roll("2d6", 1).sets[1].dice == 2)`,
		"fail.lua": `assert(dice.roll("1d6", 1).total == 99, "never")`,
	}
	for name, body := range scripts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var out, errOut bytes.Buffer
	err := Run(context.Background(), Config{Dir: dir, Verbose: true}, &out, &errOut)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(out.String(), "PASS pass") {
		t.Fatalf("stdout = %q", out.String())
	}
	if !strings.Contains(out.String(), "2 scenarios, 1 failed") {
		t.Fatalf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "FAIL fail") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestRunFilePasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.lua")
	if err := os.WriteFile(path, []byte(`dice.parse("4d6kh3")`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := Run(context.Background(), Config{File: path}, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "1 scenarios, 0 failed") {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunEmptyDir(t *testing.T) {
	if err := Run(context.Background(), Config{Dir: t.TempDir()}, nil, nil); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
