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
	"fmt"
	"slices"
)

// Array is an immutable dense array storing its elements in row-major order.
type Array[T Number] struct {
	shape Shape
	data  []T
}

// NewArray creates an array of the given shape holding a copy of data.
func NewArray[T Number](shape Shape, data []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("%w, %d elements do not fill shape %v", ErrShape, len(data), shape)
	}
	return newArray(shape.Clone(), slices.Clone(data)), nil
}

func newArray[T Number](shape Shape, data []T) *Array[T] {
	return &Array[T]{shape: shape, data: data}
}

func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

func (a *Array[T]) Rank() int {
	return a.shape.Rank()
}

func (a *Array[T]) Size() int {
	return len(a.data)
}

func (a *Array[T]) DType() DType {
	return DTypeOf[T]()
}

// SizeOf returns the extent of the given axis.
func (a *Array[T]) SizeOf(axis int) int {
	return a.shape[axis]
}

// Data returns a copy of the elements in row-major order.
func (a *Array[T]) Data() []T {
	return slices.Clone(a.data)
}

// At returns the element at the given index. It panics if the index does not
// address an element of the array.
func (a *Array[T]) At(index ...int) T {
	if len(index) != a.Rank() {
		panic(fmt.Sprintf("index %v does not match rank %d", index, a.Rank()))
	}
	offset := 0
	for axis, i := range index {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("index %v out of range for shape %v", index, a.shape))
		}
		offset = offset*a.shape[axis] + i
	}
	return a.data[offset]
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("%v%v%v", a.DType(), a.shape, a.data)
}
