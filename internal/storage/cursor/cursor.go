// Package cursor encodes opaque page tokens for roll history listings.
package cursor

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// Direction indicates which side of Seq the next page lies on.
type Direction string

const (
	// DirectionForward pages toward newer records (seq > cursor).
	DirectionForward Direction = "fwd"
	// DirectionBackward pages toward older records (seq < cursor).
	DirectionBackward Direction = "bwd"
)

// ErrFilterChanged is returned when a token is reused with another filter.
var ErrFilterChanged = errors.New("filter changed since cursor was created")

// Cursor is the decoded state of a page token.
type Cursor struct {
	Seq uint64    `json:"seq"`
	Dir Direction `json:"dir"`
	// FilterHash binds the token to the filter it was issued for.
	FilterHash string `json:"filter_hash,omitempty"`
}

// Encode encodes a cursor to an opaque URL-safe string.
func Encode(c Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode decodes a token produced by Encode.
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, errors.New("empty token")
	}
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("decode base64: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("unmarshal cursor: %w", err)
	}
	if c.Dir != DirectionForward && c.Dir != DirectionBackward {
		return Cursor{}, fmt.Errorf("invalid cursor direction: %q", c.Dir)
	}
	return c, nil
}

// HashFilter returns a short hash of filter, or "" for an empty filter.
func HashFilter(filter string) string {
	if filter == "" {
		return ""
	}
	h := sha256.Sum256([]byte(filter))
	return hex.EncodeToString(h[:8])
}

// ValidateFilter reports ErrFilterChanged when c was issued for another filter.
func ValidateFilter(c Cursor, filter string) error {
	if c.FilterHash != HashFilter(filter) {
		return ErrFilterChanged
	}
	return nil
}

// NewNextPageCursor creates the cursor that continues after lastSeq.
// Descending listings continue with older records.
func NewNextPageCursor(lastSeq uint64, descending bool, filter string) Cursor {
	dir := DirectionForward
	if descending {
		dir = DirectionBackward
	}
	return Cursor{Seq: lastSeq, Dir: dir, FilterHash: HashFilter(filter)}
}

// DecodeForFilter decodes token and checks it belongs to filter.
// An empty token yields a nil cursor.
func DecodeForFilter(token, filter string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	c, err := Decode(token)
	if err != nil {
		return nil, err
	}
	if err := ValidateFilter(c, filter); err != nil {
		return nil, err
	}
	return &c, nil
}
