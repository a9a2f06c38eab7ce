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

import "fmt"

// Unbounded is the Max of a Bounds without upper limit.
const Unbounded = -1

// UnboundedSlack is the number of values above Min considered when drawing a
// size from unbounded Bounds.
const UnboundedSlack = 8

// Bounds is an inclusive interval of sizes, e.g. the admissible lengths of a
// list. A Max of Unbounded leaves the interval open to the top.
type Bounds struct {
	Min, Max int
}

func Between(min, max int) Bounds {
	return Bounds{Min: min, Max: max}
}

func AtLeast(min int) Bounds {
	return Bounds{Min: min, Max: Unbounded}
}

func Exactly(size int) Bounds {
	return Bounds{Min: size, Max: size}
}

func (b Bounds) IsBounded() bool {
	return b.Max != Unbounded
}

// Check verifies that floor ≤ Min ≤ Max, where an unbounded Max is always
// accepted. The name is used to describe the offending bounds in the error.
func (b Bounds) Check(name string, floor int) error {
	if b.Min < floor {
		return fmt.Errorf("%w, %s %v: minimum must be at least %d", ErrInvalid, name, b, floor)
	}
	if b.Max < Unbounded {
		return fmt.Errorf("%w, %s %v: maximum must be non-negative or unbounded", ErrInvalid, name, b)
	}
	if b.IsBounded() && b.Max < b.Min {
		return fmt.Errorf("%w, %s %v: maximum must be at least the minimum", ErrInvalid, name, b)
	}
	return nil
}

// Contains reports whether size is within the bounds.
func (b Bounds) Contains(size int) bool {
	return b.Min <= size && (!b.IsBounded() || size <= b.Max)
}

// Upper is the largest size drawn from the bounds, Max or, if unbounded,
// Min + UnboundedSlack.
func (b Bounds) Upper() int {
	if !b.IsBounded() {
		return b.Min + UnboundedSlack
	}
	return b.Max
}

// solver converts the bounds into a RangeSolver over the sizes to draw from.
func (b Bounds) solver() *RangeSolver[int] {
	return NewRangeSolver(b.Min, b.Upper())
}

// solverUpTo is like solver but excludes sizes above limit. The minimum is
// kept, so the result may be unsatisfiable.
func (b Bounds) solverUpTo(limit int) *RangeSolver[int] {
	res := b.solver()
	res.AddUpperBoundary(limit)
	return res
}

func (b Bounds) String() string {
	if !b.IsBounded() {
		return fmt.Sprintf("[%d,∞)", b.Min)
	}
	return fmt.Sprintf("[%d,%d]", b.Min, b.Max)
}

// Sizes produces sizes within the given bounds.
func Sizes(b Bounds) (Generator[int], error) {
	if err := b.Check("size", 0); err != nil {
		return nil, err
	}
	solver := b.solver()
	return GeneratorFunc[int](solver.Sample), nil
}
