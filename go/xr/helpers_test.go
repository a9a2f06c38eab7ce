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
	"github.com/Fantom-foundation/Gufunc/go/host"
	"pgregory.net/rapid"
)

// drawBounds draws size bounds within [0,5], open to the top if
// allowUnbounded is set and rapid decides so.
func drawBounds(t *rapid.T, label string, allowUnbounded bool) gen.Bounds {
	a := rapid.IntRange(0, 5).Draw(t, label+" min")
	b := rapid.IntRange(0, 5).Draw(t, label+" max")
	if allowUnbounded && rapid.Bool().Draw(t, label+" unbounded") {
		return gen.AtLeast(a)
	}
	return gen.Between(min(a, b), max(a, b))
}

func draw[T any](t *rapid.T, g gen.Generator[T], label string) T {
	return host.Rapid(g).Draw(t, label)
}

// labelOverrides labels every given dimension with copies of its own name.
func labelOverrides(t *rapid.T, dims []string, side gen.Bounds) map[string]gen.Generator[[]any] {
	res := map[string]gen.Generator[[]any]{}
	for _, dim := range dims {
		labels, err := gen.SliceOf(gen.Just[any](dim), side)
		if err != nil {
			t.Fatalf("failed to create override: %v", err)
		}
		res[dim] = labels
	}
	return res
}

func isInt(label any) bool {
	_, ok := label.(int64)
	return ok
}

func isDistinct(labels []any) bool {
	seen := map[any]struct{}{}
	for _, label := range labels {
		if _, found := seen[label]; found {
			return false
		}
		seen[label] = struct{}{}
	}
	return true
}

func isSimple(labels []any) bool {
	for i, label := range labels {
		if label != any(int64(i)) {
			return false
		}
	}
	return true
}
