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
	"math"

	"golang.org/x/exp/constraints"
	"pgregory.net/rand"
)

// RangeSolver solves constraints of the form min ≤ X ≤ max, narrowed by
// additional upper boundaries, where X is a size or value to be drawn.
type RangeSolver[T constraints.Integer] struct {
	min, max T // < inclusive boundaries
}

func NewRangeSolver[T constraints.Integer](min, max T) *RangeSolver[T] {
	return &RangeSolver[T]{min: min, max: max}
}

// AddUpperBoundary restricts the solutions to values not exceeding max.
// Weaker boundaries are ignored.
func (s *RangeSolver[T]) AddUpperBoundary(max T) {
	if max < s.max {
		s.max = max
	}
}

func (s *RangeSolver[T]) IsSatisfiable() bool {
	return !(s.min > s.max)
}

// Generate picks a uniformly distributed value satisfying the constraints.
func (s *RangeSolver[T]) Generate(rnd *rand.Rand) (T, error) {
	if !s.IsSatisfiable() {
		return 0, ErrUnsatisfiable
	}
	diff := s.max - s.min
	if uint64(diff) == math.MaxUint64 {
		return T(rnd.Uint64()), nil
	}
	return T(rnd.Uint64n(uint64(diff)+1)) + s.min, nil
}

// Sample draws a value satisfying the constraints from the given source.
// Boundaries must fit into an int.
func (s *RangeSolver[T]) Sample(src Source) (T, error) {
	if !s.IsSatisfiable() {
		return 0, fmt.Errorf("%w, %v", ErrUnsatisfiable, s)
	}
	return T(src.IntRange(int(s.min), int(s.max))), nil
}

func (s *RangeSolver[T]) String() string {
	if s.min == s.max {
		return fmt.Sprintf("X=%v", s.min)
	}
	if !s.IsSatisfiable() {
		return "unsatisfiable(X)"
	}
	return fmt.Sprintf("%v≤X≤%v", s.min, s.max)
}
