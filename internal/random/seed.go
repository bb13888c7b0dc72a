// Package random provides seed generation for reproducible worksheets.
//
// A sheet is generated from a math/rand source; the seed is drawn from
// crypto/rand when the caller does not supply one and is recorded in the
// answer key so the sheet can be regenerated.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Source returns a generator for seed, drawing a fresh seed when seed is 0.
// The seed actually used is returned.
func Source(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
