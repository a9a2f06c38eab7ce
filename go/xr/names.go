// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package xr generates labeled arrays and labeled tables: arrays whose axes
// carry dimension names and coordinate labels, and ordered collections of
// such arrays sharing their coordinates.
//
// Generation proceeds in stages: names are drawn first, then the structure
// relating variables to dimensions, then coordinates, and finally the
// values. Each stage depends on the previous one, so every produced
// container is valid by construction.
package xr

import (
	"slices"

	"github.com/Fantom-foundation/Gufunc/go/common"
	"github.com/Fantom-foundation/Gufunc/go/gen"
	"golang.org/x/exp/maps"
)

const (
	// DefaultSide is the default maximum length of a coordinate.
	DefaultSide = 5
	// DefaultDims is the default maximum number of dimensions.
	DefaultDims = 5
	// DefaultVars is the default maximum number of variables of a dataset.
	DefaultVars = 5
)

const (
	nameAlphabet  = "abcdefghijklmnopqrstuvwxyz"
	maxNameLength = 5
)

// VarDims maps variable names to the dimensions of the variable, in the
// order the variables were drawn.
type VarDims = gen.OrderedMap[any, []string]

// DimNames produces dimension names: lowercase ASCII strings of up to five
// characters, including the empty string.
func DimNames() gen.Generator[string] {
	names, err := gen.Text(nameAlphabet, gen.Between(0, maxNameLength))
	return gen.OrFail(names, err)
}

// VarNames produces variable names: finite floats, integers or dimension
// like strings.
func VarNames() gen.Generator[any] {
	names, err := gen.OneOf(
		gen.Map(gen.Float64s(), toAny[float64]),
		gen.Map(gen.Ints[int64](), toAny[int64]),
		gen.Map(DimNames(), toAny[string]),
	)
	return gen.OrFail(names, err)
}

// DimLists produces duplicate-free lists of dimension names.
func DimLists(dims gen.Bounds) (gen.Generator[[]string], error) {
	if err := dims.Check("dimensions", 0); err != nil {
		return nil, err
	}
	return gen.Distinct(DimNames(), dims)
}

// VarLists produces duplicate-free lists of variable names.
func VarLists(vars gen.Bounds) (gen.Generator[[]any], error) {
	if err := vars.Check("variables", 0); err != nil {
		return nil, err
	}
	return gen.Distinct(VarNames(), vars)
}

// DisjointNames draws a list of variable names and a list of dimension names
// and retries until no name is used for both.
func DisjointNames(vars gen.Generator[[]any], dims gen.Generator[[]string]) gen.Generator[gen.Pair[[]any, []string]] {
	return gen.Filter(gen.Tuple(vars, dims), func(names gen.Pair[[]any, []string]) bool {
		return !common.Intersects(names.First, toAnySlice(names.Second))
	})
}

// VarsAndDims produces disjoint lists of variable and dimension names with
// sizes in the given bounds.
func VarsAndDims(vars, dims gen.Bounds) (gen.Generator[gen.Pair[[]any, []string]], error) {
	varLists, err := VarLists(vars)
	if err != nil {
		return nil, err
	}
	dimLists, err := DimLists(dims)
	if err != nil {
		return nil, err
	}
	return DisjointNames(varLists, dimLists), nil
}

// VarsToDims produces mappings of variable names to the dimensions of each
// variable. The dimensions of a variable are a subset, in random order, of a
// pool of dimension names disjoint from the variable names; the number of
// dimensions per variable is within dims.
func VarsToDims(vars, dims gen.Bounds) (gen.Generator[*VarDims], error) {
	names, err := VarsAndDims(vars, dims)
	if err != nil {
		return nil, err
	}
	return gen.FlatMap(names, func(pool gen.Pair[[]any, []string]) gen.Generator[*VarDims] {
		subsets, err := gen.Subset(pool.Second, dims)
		if err != nil {
			return gen.Fail[*VarDims](err)
		}
		return gen.FixedMap(pool.First, func(any) gen.Generator[[]string] {
			return subsets
		})
	}), nil
}

// AllDims returns the sorted union of the dimensions of all variables.
func AllDims(varsToDims *VarDims) []string {
	set := map[string]struct{}{}
	for _, dims := range varsToDims.Values() {
		for _, dim := range dims {
			set[dim] = struct{}{}
		}
	}
	res := maps.Keys(set)
	slices.Sort(res)
	return res
}

func toAny[T any](value T) any {
	return value
}

func toAnySlice[T any](values []T) []any {
	res := make([]any, 0, len(values))
	for _, value := range values {
		res = append(res, value)
	}
	return res
}
