package roll

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "0", "-max-sides", "20", "2d6", "4d6kh3"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.HasSeed || cfg.Seed != 0 {
		t.Fatalf("expected explicit zero seed, got has=%v seed=%d", cfg.HasSeed, cfg.Seed)
	}
	if cfg.Limits.MaxSides != 20 {
		t.Fatalf("expected max sides 20, got %d", cfg.Limits.MaxSides)
	}
	if strings.Join(cfg.Expressions, ",") != "2d6,4d6kh3" {
		t.Fatalf("unexpected expressions %v", cfg.Expressions)
	}
}

func TestParseConfigWithoutSeed(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"1d20"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HasSeed {
		t.Fatal("expected no seed")
	}
}

func decodeLines(t *testing.T, out *bytes.Buffer) []rollOutput {
	t.Helper()
	var outputs []rollOutput
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var output rollOutput
		if err := json.Unmarshal(scanner.Bytes(), &output); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		outputs = append(outputs, output)
	}
	return outputs
}

func TestRunPrintsOneResultPerExpression(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Seed: 42, HasSeed: true, Expressions: []string{"2d6kh1", "3@1d20"}}

	if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr %q)", err, errOut.String())
	}
	outputs := decodeLines(t, &out)
	if len(outputs) != 2 {
		t.Fatalf("expected 2 results, got %d", len(outputs))
	}
	if outputs[0].Seed != 42 || len(outputs[0].Sets) != 1 || len(outputs[0].Sets[0].Dice) != 2 {
		t.Fatalf("unexpected first result %+v", outputs[0])
	}
	if outputs[0].Total != outputs[0].Sets[0].Total {
		t.Fatalf("total %d != set total %d", outputs[0].Total, outputs[0].Sets[0].Total)
	}
	if len(outputs[1].Sets) != 3 || outputs[1].Total != 0 {
		t.Fatalf("unexpected second result %+v", outputs[1])
	}
}

func TestRunSameSeedReplays(t *testing.T) {
	cfg := Config{Seed: 7, HasSeed: true, Expressions: []string{"10d6"}}
	var first, second bytes.Buffer
	if err := Run(context.Background(), cfg, &first, nil); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(context.Background(), cfg, &second, nil); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("replay mismatch:\n%s\n%s", first.String(), second.String())
	}
}

func TestRunReportsFailures(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Seed: 1, HasSeed: true, Expressions: []string{"1d6", "banana", "0d6"}}

	err := Run(context.Background(), cfg, &out, &errOut)
	if err == nil || err.Error() != "2 of 3 expressions failed" {
		t.Fatalf("expected 2 failures, got %v", err)
	}
	if len(decodeLines(t, &out)) != 1 {
		t.Fatal("expected the valid expression to be printed")
	}
	if !strings.Contains(errOut.String(), "banana: ") || !strings.Contains(errOut.String(), "0d6: ") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestRunRequiresExpressions(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error without expressions")
	}
}
