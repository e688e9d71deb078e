package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/dicebot/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("DICEBOT_OTEL_ENDPOINT", "")
	t.Setenv("DICEBOT_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("DICEBOT_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("DICEBOT_OTEL_ENABLED", "FALSE")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("DICEBOT_OTEL_SAMPLE_RATIO", "often")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected error for invalid sample ratio")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupWithConfig_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", SampleRatio: 0.5}

	shutdown, err := otel.SetupWithConfig(context.Background(), "test-service", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestTracerStartsSpansWithoutProvider(t *testing.T) {
	_, span := otel.Tracer("dicebot/test").Start(context.Background(), "noop")
	span.End()
}
