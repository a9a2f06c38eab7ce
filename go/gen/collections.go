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

	"github.com/Fantom-foundation/Gufunc/go/common"
)

// MaxDistinctAttempts is the number of consecutive duplicates tolerated while
// filling a list with distinct elements before the list is considered full.
const MaxDistinctAttempts = 10

// SliceOf produces lists of values of elem with a length within the given
// bounds.
func SliceOf[T any](elem Generator[T], length Bounds) (Generator[[]T], error) {
	if err := length.Check("list size", 0); err != nil {
		return nil, err
	}
	sizes := length.solver()
	return GeneratorFunc[[]T](func(src Source) ([]T, error) {
		size, err := sizes.Sample(src)
		if err != nil {
			return nil, err
		}
		res := make([]T, 0, size)
		for i := 0; i < size; i++ {
			value, err := elem.Generate(src)
			if err != nil {
				return nil, err
			}
			res = append(res, value)
		}
		return res, nil
	}), nil
}

// SliceOfDistinct produces lists of values of elem with a length within the
// given bounds, where no two elements share the same key.
//
// The target length is drawn first. Candidates with a key already present
// are rejected; after MaxDistinctAttempts consecutive rejections the list is
// returned as is if it reached the minimum length, otherwise the draw fails
// with ErrUnsatisfiable. Element domains smaller than the minimum length can
// therefore never be satisfied.
func SliceOfDistinct[T any, K comparable](elem Generator[T], length Bounds, key func(T) K) (Generator[[]T], error) {
	if err := length.Check("list size", 0); err != nil {
		return nil, err
	}
	sizes := length.solver()
	return GeneratorFunc[[]T](func(src Source) ([]T, error) {
		size, err := sizes.Sample(src)
		if err != nil {
			return nil, err
		}
		res := make([]T, 0, size)
		seen := make(map[K]struct{}, size)
		for failures := 0; len(res) < size && failures < MaxDistinctAttempts; {
			value, err := elem.Generate(src)
			if err != nil {
				return nil, err
			}
			k := key(value)
			if _, found := seen[k]; found {
				failures++
				continue
			}
			failures = 0
			seen[k] = struct{}{}
			res = append(res, value)
		}
		if len(res) < length.Min {
			return nil, fmt.Errorf("%w, only %d distinct elements found, at least %d required", ErrUnsatisfiable, len(res), length.Min)
		}
		return res, nil
	}), nil
}

// Distinct produces duplicate-free lists of values of elem.
func Distinct[T comparable](elem Generator[T], length Bounds) (Generator[[]T], error) {
	return SliceOfDistinct(elem, length, func(value T) T { return value })
}

// Subset produces duplicate-free sub-selections of the given list with a
// size within the given bounds. The maximum size is clamped to the number of
// distinct elements of the list; the minimum must not exceed it. Subsets of
// an empty list are always empty.
func Subset[T comparable](list []T, size Bounds) (Generator[[]T], error) {
	if err := size.Check("subset list size", 0); err != nil {
		return nil, err
	}
	elements := common.Unique(list)
	sizes := size.solverUpTo(len(elements))
	if !sizes.IsSatisfiable() {
		return nil, fmt.Errorf("%w, input list size: subset of at least %d elements requested from %d distinct elements", ErrInvalid, size.Min, len(elements))
	}
	return GeneratorFunc[[]T](func(src Source) ([]T, error) {
		n, err := sizes.Sample(src)
		if err != nil {
			return nil, err
		}
		// Partial Fisher-Yates shuffle selecting the first n positions.
		pool := make([]T, len(elements))
		copy(pool, elements)
		for i := 0; i < n; i++ {
			j := src.IntRange(i, len(pool)-1)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return pool[:n], nil
	}), nil
}

// FixedMap produces maps with exactly the given keys, in the given order. The
// value of each key is drawn from the generator valueOf returns for it.
func FixedMap[K comparable, V any](keys []K, valueOf func(K) Generator[V]) Generator[*OrderedMap[K, V]] {
	keys = common.Unique(keys)
	gens := make([]Generator[V], 0, len(keys))
	for _, key := range keys {
		gens = append(gens, valueOf(key))
	}
	return GeneratorFunc[*OrderedMap[K, V]](func(src Source) (*OrderedMap[K, V], error) {
		res := NewOrderedMap[K, V]()
		for i, key := range keys {
			value, err := gens[i].Generate(src)
			if err != nil {
				return nil, err
			}
			res.set(key, value)
		}
		return res, nil
	})
}
