// Package random provides the tie-breaking source used by rider selection.
package random

import (
	"math/rand/v2"

	"nexus/internal/domain/service"
)

// NewSource returns a goroutine-safe source seeded from the runtime.
func NewSource() service.RandomSource {
	return globalSource{}
}

type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
