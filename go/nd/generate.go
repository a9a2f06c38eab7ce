// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nd

import (
	"github.com/Fantom-foundation/Gufunc/go/gen"
)

// DefaultFloatMagnitude bounds the absolute value of floats drawn by the
// default element generator.
const DefaultFloatMagnitude = 1e6

// Elements returns the default element generator for T. Integers cover the
// full domain of T, floats are finite values within ±DefaultFloatMagnitude.
func Elements[T Number]() gen.Generator[T] {
	if DTypeOf[T]().IsFloat() {
		return gen.GeneratorFunc[T](func(src gen.Source) (T, error) {
			return T(src.Float64Range(-DefaultFloatMagnitude, DefaultFloatMagnitude)), nil
		})
	}
	return gen.GeneratorFunc[T](func(src gen.Source) (T, error) {
		return T(src.Uint64()), nil
	})
}

// Arrays produces arrays of the given shape filled element-wise from
// elements. If elements is nil, Elements[T]() is used. If unique is set, no
// two elements of a produced array are equal.
func Arrays[T Number](shape Shape, elements gen.Generator[T], unique bool) (gen.Generator[*Array[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if elements == nil {
		elements = Elements[T]()
	}
	shape = shape.Clone()

	var data gen.Generator[[]T]
	var err error
	if unique {
		data, err = gen.Distinct(elements, gen.Exactly(shape.Size()))
	} else {
		data, err = gen.SliceOf(elements, gen.Exactly(shape.Size()))
	}
	if err != nil {
		return nil, err
	}
	return gen.Map(data, func(values []T) *Array[T] {
		return newArray(shape, values)
	}), nil
}
