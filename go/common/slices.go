// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// LeftPadSlice returns a slice of the given size holding source at its end.
// Free leading positions are set to fill. If size is smaller than the length
// of source, source is truncated at the end.
func LeftPadSlice[T any](source []T, size int, fill T) []T {
	res := make([]T, size)
	if size < len(source) {
		copy(res, source)
		return res
	}
	offset := size - len(source)
	for i := 0; i < offset; i++ {
		res[i] = fill
	}
	copy(res[offset:], source)
	return res
}

// Unique returns the distinct elements of source in order of first occurrence.
func Unique[T comparable](source []T) []T {
	seen := make(map[T]struct{}, len(source))
	res := make([]T, 0, len(source))
	for _, cur := range source {
		if _, found := seen[cur]; found {
			continue
		}
		seen[cur] = struct{}{}
		res = append(res, cur)
	}
	return res
}

// HasDuplicates reports whether some element occurs more than once in source.
func HasDuplicates[T comparable](source []T) bool {
	return len(Unique(source)) != len(source)
}

// Intersects reports whether a and b share at least one element.
func Intersects[T comparable](a, b []T) bool {
	set := make(map[T]struct{}, len(a))
	for _, cur := range a {
		set[cur] = struct{}{}
	}
	for _, cur := range b {
		if _, found := set[cur]; found {
			return true
		}
	}
	return false
}
