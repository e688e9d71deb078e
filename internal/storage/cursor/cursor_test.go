package cursor

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := NewNextPageCursor(42, true, `expression = "2d6"`)
	token, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Fatalf("decoded %+v, want %+v", got, want)
	}
	if got.Dir != DirectionBackward {
		t.Fatalf("descending listing should page backward, got %q", got.Dir)
	}
}

func TestDecodeRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "%%%"},
		{name: "not json", token: "bm90LWpzb24="},
		{name: "bad direction", token: mustEncode(t, Cursor{Seq: 1, Dir: "sideways"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.token); err == nil {
				t.Fatal("expected decode error")
			}
		})
	}
}

func TestHashFilter(t *testing.T) {
	if HashFilter("") != "" {
		t.Fatal("empty filter should hash to empty string")
	}
	first := HashFilter("total > 3")
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}
	if first != HashFilter("total > 3") {
		t.Fatal("hash should be stable")
	}
	if first == HashFilter("total > 4") {
		t.Fatal("different filters should hash differently")
	}
}

func TestDecodeForFilter(t *testing.T) {
	c, err := DecodeForFilter("", "anything")
	if err != nil || c != nil {
		t.Fatalf("empty token = (%v, %v), want (nil, nil)", c, err)
	}

	token := mustEncode(t, NewNextPageCursor(7, true, `source = "cli"`))
	c, err = DecodeForFilter(token, `source = "cli"`)
	if err != nil {
		t.Fatalf("decode for same filter: %v", err)
	}
	if c.Seq != 7 {
		t.Fatalf("seq = %d, want 7", c.Seq)
	}

	if _, err := DecodeForFilter(token, `source = "mcp"`); !errors.Is(err, ErrFilterChanged) {
		t.Fatalf("expected ErrFilterChanged, got %v", err)
	}
}

func mustEncode(t *testing.T, c Cursor) string {
	t.Helper()
	token, err := Encode(c)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return token
}
