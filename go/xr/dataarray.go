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
	"fmt"
	"slices"

	"github.com/Fantom-foundation/Gufunc/go/common"
	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

// ErrAssembly is returned by the container constructors for inconsistent
// parts.
const ErrAssembly = common.ConstErr("inconsistent labeled container")

// ErrInternal is returned by generators if a drawn container could not be
// assembled. Drawn parts are consistent by construction, so this indicates
// a broken generator or a faulty Assembler.
const ErrInternal = common.ConstErr("internal generator error")

// DataArray is an array with named dimensions, each labeled by a coordinate.
// DataArrays are immutable.
type DataArray[T nd.Number] struct {
	values *nd.Array[T]
	dims   []string
	coords *Coordinates
}

// NewDataArray creates a labeled array. There must be one distinct dimension
// name per axis of values and a coordinate for each dimension, matching the
// length of its axis. Coordinates of other dimensions are dropped.
func NewDataArray[T nd.Number](values *nd.Array[T], dims []string, coords *Coordinates) (*DataArray[T], error) {
	if values == nil {
		return nil, fmt.Errorf("%w, missing values", ErrAssembly)
	}
	if want, got := values.Rank(), len(dims); want != got {
		return nil, fmt.Errorf("%w, %d dimensions %v given for array of shape %v", ErrAssembly, got, dims, values.Shape())
	}
	if common.HasDuplicates(dims) {
		return nil, fmt.Errorf("%w, duplicate dimensions in %v", ErrAssembly, dims)
	}
	own := make([]gen.Entry[string, []any], 0, len(dims))
	for axis, dim := range dims {
		coord, found := coords.Get(dim)
		if !found {
			return nil, fmt.Errorf("%w, no coordinate for dimension %q", ErrAssembly, dim)
		}
		if want, got := values.SizeOf(axis), len(coord); want != got {
			return nil, fmt.Errorf("%w, coordinate of dimension %q has %d labels, axis has length %d", ErrAssembly, dim, got, want)
		}
		own = append(own, gen.Entry[string, []any]{Key: dim, Value: slices.Clone(coord)})
	}
	return &DataArray[T]{
		values: values,
		dims:   slices.Clone(dims),
		coords: gen.NewOrderedMap(own...),
	}, nil
}

func (a *DataArray[T]) Values() *nd.Array[T] {
	return a.values
}

func (a *DataArray[T]) Dims() []string {
	return slices.Clone(a.dims)
}

// Coords returns the coordinates of the array, in the order of its dims.
func (a *DataArray[T]) Coords() *Coordinates {
	return a.coords
}

// Coord returns the labels along the given dimension.
func (a *DataArray[T]) Coord(dim string) ([]any, bool) {
	coord, found := a.coords.Get(dim)
	return slices.Clone(coord), found
}

func (a *DataArray[T]) Shape() nd.Shape {
	return a.values.Shape()
}

// SizeOf returns the length of the given dimension, or -1 if the array has
// no such dimension.
func (a *DataArray[T]) SizeOf(dim string) int {
	axis := slices.Index(a.dims, dim)
	if axis < 0 {
		return -1
	}
	return a.values.SizeOf(axis)
}

func (a *DataArray[T]) String() string {
	return fmt.Sprintf("DataArray%v%v coords=%v values=%v", a.dims, a.Shape(), a.coords, a.values.Data())
}
