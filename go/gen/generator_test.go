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
	"errors"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rand"
)

func mustDraw[T any](t *testing.T, g Generator[T], rnd *rand.Rand) T {
	t.Helper()
	value, err := Draw(g, rnd)
	if err != nil {
		t.Fatalf("failed to draw value: %v", err)
	}
	return value
}

func TestGenerator_JustAndMap(t *testing.T) {
	rnd := rand.New(0)
	double := Map(Just(21), func(x int) int { return 2 * x })
	if want, got := 42, mustDraw(t, double, rnd); want != got {
		t.Errorf("unexpected mapped value, wanted %d, got %d", want, got)
	}
}

func TestGenerator_FailAndOrFailPropagateErrors(t *testing.T) {
	errTest := errors.New("test")
	rnd := rand.New(0)

	if _, err := Draw(Fail[int](errTest), rnd); !errors.Is(err, errTest) {
		t.Errorf("unexpected error, got %v", err)
	}
	if _, err := Draw(OrFail(Just(1), errTest), rnd); !errors.Is(err, errTest) {
		t.Errorf("unexpected error, got %v", err)
	}
	if got := mustDraw(t, OrFail(Just(1), nil), rnd); got != 1 {
		t.Errorf("unexpected value, got %d", got)
	}
	if _, err := Draw(Map(Fail[int](errTest), func(x int) int { return x }), rnd); !errors.Is(err, errTest) {
		t.Errorf("map should propagate errors, got %v", err)
	}
}

func TestGenerator_FlatMapDependsOnFirstDraw(t *testing.T) {
	sizes, err := IntRange(0, 6)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	lists := FlatMap(sizes, func(n int) Generator[[]int] {
		values, err := SliceOf(Just(n), Exactly(n))
		return OrFail(values, err)
	})

	rnd := rand.New(0)
	for i := 0; i < 50; i++ {
		list := mustDraw(t, lists, rnd)
		for _, value := range list {
			if value != len(list) {
				t.Fatalf("element %d does not match list length in %v", value, list)
			}
		}
	}
}

func TestGenerator_FilterRetainsOnlyAcceptedValues(t *testing.T) {
	values, err := IntRange(0, 9)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	even := Filter(values, func(x int) bool { return x%2 == 0 })
	rnd := rand.New(0)
	for i := 0; i < 50; i++ {
		if got := mustDraw(t, even, rnd); got%2 != 0 {
			t.Fatalf("filter produced rejected value %d", got)
		}
	}
}

func TestGenerator_FilterReportsExhaustion(t *testing.T) {
	never := Filter(Just("pool"), func(string) bool { return false })
	_, err := Draw(never, rand.New(0))
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("exhausted filter should fail with ErrUnsatisfiable, got %v", err)
	}
	if !strings.Contains(err.Error(), "pool") {
		t.Errorf("error should name the rejected candidate, got %v", err)
	}
}

func TestGenerator_TupleAndSequenceKeepOrder(t *testing.T) {
	rnd := rand.New(0)
	pair := mustDraw(t, Tuple(Just("a"), Just(1)), rnd)
	if pair.First != "a" || pair.Second != 1 {
		t.Errorf("unexpected pair %v", pair)
	}
	if want, got := "(a, 1)", pair.String(); want != got {
		t.Errorf("unexpected print, wanted %s, got %s", want, got)
	}

	seq := mustDraw(t, Sequence([]Generator[int]{Just(3), Just(1), Just(2)}), rnd)
	if want := []int{3, 1, 2}; !slices.Equal(want, seq) {
		t.Errorf("unexpected sequence, wanted %v, got %v", want, seq)
	}
}

func TestGenerator_SameSeedProducesSameValues(t *testing.T) {
	lists, err := SliceOf(Ints[int64](), Between(0, 10))
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	for seed := uint64(0); seed < 10; seed++ {
		a := mustDraw(t, lists, rand.New(seed))
		b := mustDraw(t, lists, rand.New(seed))
		if !slices.Equal(a, b) {
			t.Errorf("seed %d produced different values: %v vs %v", seed, a, b)
		}
	}
}
