// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package xr

import (
	"github.com/Fantom-foundation/Gufunc/go/gen"
)

// Coordinates maps dimension names to the labels along that dimension.
type Coordinates = gen.OrderedMap[string, []any]

// CoordElements is the default generator of coordinate labels, producing
// integers.
func CoordElements() gen.Generator[any] {
	return gen.Map(gen.Ints[int64](), toAny[int64])
}

// Coords produces coordinate label lists with a length within side. Labels
// are drawn from elements, or CoordElements() if it is nil. If unique is set,
// no label appears twice within a list. Labels must be comparable values.
func Coords(elements gen.Generator[any], side gen.Bounds, unique bool) (gen.Generator[[]any], error) {
	if err := side.Check("side", 0); err != nil {
		return nil, err
	}
	if elements == nil {
		elements = CoordElements()
	}
	if unique {
		return gen.Distinct(elements, side)
	}
	return gen.SliceOf(elements, side)
}

// SimpleCoords produces coordinates of the form 0, 1, ..., n-1 where n is
// within side.
func SimpleCoords(side gen.Bounds) (gen.Generator[[]any], error) {
	sizes, err := gen.Sizes(side)
	if err != nil {
		return nil, err
	}
	return gen.Map(sizes, func(n int) []any {
		res := make([]any, 0, n)
		for i := 0; i < n; i++ {
			res = append(res, int64(i))
		}
		return res
	}), nil
}

// CoordsDicts produces one coordinate per dimension, in the order of dims.
// Dimensions listed in overrides take their coordinates from the given
// generator, all others from Coords(elements, side, unique).
func CoordsDicts(dims []string, elements gen.Generator[any], side gen.Bounds, unique bool, overrides map[string]gen.Generator[[]any]) (gen.Generator[*Coordinates], error) {
	coords, err := Coords(elements, side, unique)
	if err != nil {
		return nil, err
	}
	return gen.FixedMap(dims, func(dim string) gen.Generator[[]any] {
		if override, found := overrides[dim]; found {
			return override
		}
		return coords
	}), nil
}
