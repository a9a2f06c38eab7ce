// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Fantom-foundation/Gufunc/go/gen"
)

// NewMathRandSource creates a source drawing from a math/rand generator.
func NewMathRandSource(rnd *rand.Rand) gen.Source {
	return mathRandSource{rnd: rnd}
}

type mathRandSource struct {
	rnd *rand.Rand
}

func (s mathRandSource) IntRange(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("invalid range [%d,%d]", min, max))
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int(s.rnd.Uint64())
	}
	return min + int(s.uint64n(span+1))
}

// uint64n draws uniformly from [0,n) by rejecting the values of the partial
// block at the bottom of the uint64 domain.
func (s mathRandSource) uint64n(n uint64) uint64 {
	threshold := -n % n
	for {
		if value := s.rnd.Uint64(); value >= threshold {
			return value % n
		}
	}
}

func (s mathRandSource) Float64Range(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("invalid range [%v,%v]", min, max))
	}
	f := s.rnd.Float64()
	res := min*(1-f) + max*f
	return math.Min(math.Max(res, min), max)
}

func (s mathRandSource) Uint64() uint64 {
	return s.rnd.Uint64()
}
