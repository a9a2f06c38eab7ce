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
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// SampledFrom picks uniformly one of the given values.
func SampledFrom[T any](values ...T) (Generator[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w, cannot sample from an empty set", ErrInvalid)
	}
	values = slices.Clone(values)
	return GeneratorFunc[T](func(src Source) (T, error) {
		return values[src.IntRange(0, len(values)-1)], nil
	}), nil
}

// IntRange produces integers in [min, max].
func IntRange(min, max int) (Generator[int], error) {
	if min > max {
		return nil, fmt.Errorf("%w, empty integer range [%d,%d]", ErrInvalid, min, max)
	}
	return GeneratorFunc[int](func(src Source) (int, error) {
		return src.IntRange(min, max), nil
	}), nil
}

// Ints produces integers covering the full domain of T.
func Ints[T constraints.Integer]() Generator[T] {
	return GeneratorFunc[T](func(src Source) (T, error) {
		return T(src.Uint64()), nil
	})
}

// Float64Range produces finite floats in [min, max].
func Float64Range(min, max float64) (Generator[float64], error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w, float range [%v,%v] must be finite", ErrInvalid, min, max)
	}
	if min > max {
		return nil, fmt.Errorf("%w, empty float range [%v,%v]", ErrInvalid, min, max)
	}
	return GeneratorFunc[float64](func(src Source) (float64, error) {
		return src.Float64Range(min, max), nil
	}), nil
}

// Float64s produces finite floats. NaN is excluded so produced values can be
// compared and used as map keys.
func Float64s() Generator[float64] {
	return GeneratorFunc[float64](func(src Source) (float64, error) {
		return src.Float64Range(-math.MaxFloat64, math.MaxFloat64), nil
	})
}

// Bools produces true and false.
func Bools() Generator[bool] {
	return GeneratorFunc[bool](func(src Source) (bool, error) {
		return src.IntRange(0, 1) == 1, nil
	})
}

// Text produces strings with a length within the given bounds composed of
// characters of the given alphabet.
func Text(alphabet string, length Bounds) (Generator[string], error) {
	if err := length.Check("text length", 0); err != nil {
		return nil, err
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		if length.Min > 0 {
			return nil, fmt.Errorf("%w, empty alphabet for text of length %v", ErrInvalid, length)
		}
		return Just(""), nil
	}
	sizes := length.solver()
	return GeneratorFunc[string](func(src Source) (string, error) {
		size, err := sizes.Sample(src)
		if err != nil {
			return "", err
		}
		var builder strings.Builder
		for i := 0; i < size; i++ {
			builder.WriteRune(runes[src.IntRange(0, len(runes)-1)])
		}
		return builder.String(), nil
	}), nil
}

// OneOf draws from one of the given generators, picked uniformly.
func OneOf[T any](gens ...Generator[T]) (Generator[T], error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("%w, no generator to choose from", ErrInvalid)
	}
	gens = slices.Clone(gens)
	return GeneratorFunc[T](func(src Source) (T, error) {
		return gens[src.IntRange(0, len(gens)-1)].Generate(src)
	}), nil
}
