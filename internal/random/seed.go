// Package random provides seed generation and seeded random sources for
// dice rolls.
//
// Seeds come from crypto/rand so requests cannot predict each other's
// sequences; a seed returned to a caller replays the exact same roll.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns the requested seed when present, otherwise a fresh one
// from seedFunc. A nil seedFunc uses NewSeed.
func ResolveSeed(requested *int64, seedFunc func() (int64, error)) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	if seedFunc == nil {
		seedFunc = NewSeed
	}
	seed, err := seedFunc()
	if err != nil {
		return 0, err
	}
	return seed, nil
}
