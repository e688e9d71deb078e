package id

import (
	"encoding/base32"
	"strings"
	"testing"
)

func TestNewIDIsLowercaseBase32(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("len(%q) = %d, want 26", id, len(id))
	}
	if strings.ContainsAny(id, "=ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		t.Fatalf("id %q has padding or uppercase characters", id)
	}
	for _, r := range id {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz234567", r) {
			t.Fatalf("id %q has character %q outside the base32 alphabet", id, r)
		}
	}
}

func TestNewIDRoundTripsToUUIDv4(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode %q: %v", id, err)
	}
	if len(raw) != 16 {
		t.Fatalf("decoded %d bytes, want 16", len(raw))
	}
	if version := raw[6] >> 4; version != 4 {
		t.Fatalf("version = %d, want 4", version)
	}
	if variant := raw[8] & 0xC0; variant != 0x80 {
		t.Fatalf("variant = 0x%X, want 0x80", variant)
	}
}

// Roll IDs carry a UNIQUE constraint in the history table, so a collision
// surfaces as a failed insert.
func TestNewIDUniqueAcrossManyRolls(t *testing.T) {
	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := range n {
		id, err := NewID()
		if err != nil {
			t.Fatalf("new id %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = struct{}{}
	}
}
