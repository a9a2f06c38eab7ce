// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"fmt"

	"pgregory.net/rand"
)

// Source is the randomness consumed by generators. Every random decision of
// a generator is a call to one of these methods, so a host runtime recording
// the calls is able to replay and shrink a generated value.
type Source interface {
	// IntRange returns a value in [min, max]. It panics if min > max.
	IntRange(min, max int) int
	// Float64Range returns a finite value in [min, max]. It panics if min > max.
	Float64Range(min, max float64) float64
	// Uint64 returns a uniformly distributed 64-bit value.
	Uint64() uint64
}

// NewRandSource creates a Source drawing from the given random generator.
// Two sources created from generators with the same seed produce the same
// sequence of values.
func NewRandSource(rnd *rand.Rand) Source {
	return randSource{rnd: rnd}
}

type randSource struct {
	rnd *rand.Rand
}

func (s randSource) IntRange(min, max int) int {
	res, err := NewRangeSolver(min, max).Generate(s.rnd)
	if err != nil {
		panic(fmt.Sprintf("invalid integer range [%d,%d]", min, max))
	}
	return res
}

func (s randSource) Float64Range(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("invalid float range [%v,%v]", min, max))
	}
	if min == max {
		return min
	}
	// Interpolating avoids overflowing max-min for the full float64 range.
	f := s.rnd.Float64()
	res := min*(1-f) + max*f
	if res < min {
		return min
	}
	if res > max {
		return max
	}
	return res
}

func (s randSource) Uint64() uint64 {
	return s.rnd.Uint64()
}

// Draw produces a single value of the given generator using rnd as the
// source of randomness.
func Draw[T any](g Generator[T], rnd *rand.Rand) (T, error) {
	return g.Generate(NewRandSource(rnd))
}
