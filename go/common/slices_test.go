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

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestSlices_LeftPadSlice(t *testing.T) {
	base := []int{1, 2, 3}
	tests := map[string]struct {
		length int
		want   []int
	}{
		"longer":  {length: 5, want: []int{7, 7, 1, 2, 3}},
		"shorter": {length: 1, want: base[:1]},
		"equal":   {length: len(base), want: base},
		"empty":   {length: 0, want: []int{}},
	}

	for name, test := range tests {
		if got := LeftPadSlice(base, test.length, 7); !slices.Equal(test.want, got) {
			t.Errorf("Left padding for %v failed, wanted %v, but got %v", name, test.want, got)
		}
	}
}

func TestSlices_UniqueKeepsFirstOccurrenceOrder(t *testing.T) {
	tests := map[string]struct {
		input []string
		want  []string
	}{
		"nil":        {input: nil, want: []string{}},
		"distinct":   {input: []string{"b", "a"}, want: []string{"b", "a"}},
		"duplicates": {input: []string{"b", "a", "b", "c", "a"}, want: []string{"b", "a", "c"}},
	}

	for name, test := range tests {
		if got := Unique(test.input); !slices.Equal(test.want, got) {
			t.Errorf("Unique for %v failed, wanted %v, but got %v", name, test.want, got)
		}
		if want, got := len(test.want) != len(test.input), HasDuplicates(test.input); want != got {
			t.Errorf("HasDuplicates for %v failed, wanted %v, but got %v", name, want, got)
		}
	}
}

func TestSlices_Intersects(t *testing.T) {
	if Intersects([]any{"a", 1.5}, []any{"b", 1}) {
		t.Errorf("values of different types must not intersect")
	}
	if !Intersects([]any{"a", "b"}, []any{"c", "a"}) {
		t.Errorf("shared element not detected")
	}
	if Intersects[int](nil, []int{1}) {
		t.Errorf("empty slice must not intersect")
	}
}

func TestConstErr_CanBeWrapped(t *testing.T) {
	const errTest = ConstErr("test error")
	err := fmt.Errorf("%w, with context", errTest)
	if !errors.Is(err, errTest) {
		t.Errorf("wrapped error not detected: %v", err)
	}
	if want, got := "test error, with context", err.Error(); want != got {
		t.Errorf("unexpected error text, wanted %q, got %q", want, got)
	}
}
