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
)

// MaxFilterAttempts is the number of consecutive candidates a filter may
// reject before giving up with ErrUnsatisfiable.
const MaxFilterAttempts = 100

// Generator produces random values of type T. Generators are immutable; all
// randomness is taken from the Source passed to Generate, so a generator is a
// pure function of the values drawn from that source.
//
// Generators are composed through Map, FlatMap, Filter, Tuple and FixedMap.
// FlatMap is the central building block: it allows the domain of a later draw
// to depend on the value of an earlier one.
type Generator[T any] interface {
	Generate(src Source) (T, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[T any] func(src Source) (T, error)

func (f GeneratorFunc[T]) Generate(src Source) (T, error) {
	return f(src)
}

// Just produces always the given value.
func Just[T any](value T) Generator[T] {
	return GeneratorFunc[T](func(Source) (T, error) {
		return value, nil
	})
}

// Fail produces always the given error.
func Fail[T any](err error) Generator[T] {
	return GeneratorFunc[T](func(Source) (T, error) {
		var zero T
		return zero, err
	})
}

// OrFail returns g if err is nil and a generator failing with err otherwise.
// It allows constructors reporting errors to be used within FlatMap.
func OrFail[T any](g Generator[T], err error) Generator[T] {
	if err != nil {
		return Fail[T](err)
	}
	return g
}

// Map produces the values of g transformed by f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return GeneratorFunc[B](func(src Source) (B, error) {
		value, err := g.Generate(src)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(value), nil
	})
}

// FlatMap first draws a value from g and then draws the result from the
// generator f derives from that value.
func FlatMap[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return GeneratorFunc[B](func(src Source) (B, error) {
		value, err := g.Generate(src)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(value).Generate(src)
	})
}

// Filter produces the values of g satisfying pred. After MaxFilterAttempts
// consecutive rejections ErrUnsatisfiable is returned, naming the last
// rejected candidate.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return GeneratorFunc[T](func(src Source) (T, error) {
		var last T
		for i := 0; i < MaxFilterAttempts; i++ {
			value, err := g.Generate(src)
			if err != nil {
				return value, err
			}
			if pred(value) {
				return value, nil
			}
			last = value
		}
		var zero T
		return zero, fmt.Errorf("%w, %d consecutive candidates rejected, last %v", ErrUnsatisfiable, MaxFilterAttempts, last)
	})
}

// Pair is the result of a Tuple generator.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Tuple draws from a and then from b.
func Tuple[A, B any](a Generator[A], b Generator[B]) Generator[Pair[A, B]] {
	return GeneratorFunc[Pair[A, B]](func(src Source) (Pair[A, B], error) {
		first, err := a.Generate(src)
		if err != nil {
			return Pair[A, B]{}, err
		}
		second, err := b.Generate(src)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: first, Second: second}, nil
	})
}

// Sequence draws one value from each of the given generators, in order.
func Sequence[T any](gens []Generator[T]) Generator[[]T] {
	return GeneratorFunc[[]T](func(src Source) ([]T, error) {
		res := make([]T, 0, len(gens))
		for _, g := range gens {
			value, err := g.Generate(src)
			if err != nil {
				return nil, err
			}
			res = append(res, value)
		}
		return res, nil
	})
}
