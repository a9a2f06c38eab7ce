// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package host connects generators to property testing runtimes. The runtime
// drives the test loop and, where supported, shrinks failing examples; the
// generators only describe what a valid example looks like.
package host

import (
	"github.com/Fantom-foundation/Gufunc/go/gen"
	"pgregory.net/rapid"
)

// Rapid exposes g as a rapid generator. Every random decision of g is drawn
// through rapid, so rapid can replay and shrink the produced values. A value
// that cannot be generated fails the current test case.
func Rapid[T any](g gen.Generator[T]) *rapid.Generator[T] {
	return rapid.Custom(func(t *rapid.T) T {
		src := &rapidSource{t: t}
		value, err := g.Generate(src)
		if err != nil {
			t.Fatalf("failed to generate value: %v", err)
		}
		// rapid rejects generators not consuming any data.
		if src.draws == 0 {
			rapid.IntRange(0, 0).Draw(t, "unit")
		}
		return value
	})
}

type rapidSource struct {
	t     *rapid.T
	draws int
}

func (s *rapidSource) IntRange(min, max int) int {
	s.draws++
	return rapid.IntRange(min, max).Draw(s.t, "int")
}

func (s *rapidSource) Float64Range(min, max float64) float64 {
	if min == max {
		return min
	}
	s.draws++
	return rapid.Float64Range(min, max).Draw(s.t, "float")
}

func (s *rapidSource) Uint64() uint64 {
	s.draws++
	return rapid.Uint64().Draw(s.t, "bits")
}
