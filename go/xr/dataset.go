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

	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

// Dataset is an ordered collection of labeled arrays, the variables, sharing
// the labels of their common dimensions. Datasets are immutable.
type Dataset[T nd.Number] struct {
	vars   *gen.OrderedMap[any, *DataArray[T]]
	coords *Coordinates
}

// NewDataset creates a labeled table. Variable names must differ from all
// dimension names and every variable must use the coordinates of the
// dataset for all of its dimensions.
func NewDataset[T nd.Number](vars *gen.OrderedMap[any, *DataArray[T]], coords *Coordinates) (*Dataset[T], error) {
	dims := coords.Keys()
	for _, entry := range vars.Entries() {
		if entry.Value == nil {
			return nil, fmt.Errorf("%w, variable %v has no values", ErrAssembly, entry.Key)
		}
		dims = append(dims, entry.Value.dims...)
	}
	for _, entry := range vars.Entries() {
		if name, isString := entry.Key.(string); isString && slices.Contains(dims, name) {
			return nil, fmt.Errorf("%w, %q is used as variable and dimension name", ErrAssembly, name)
		}
		for _, dim := range entry.Value.dims {
			want, found := coords.Get(dim)
			if !found {
				return nil, fmt.Errorf("%w, no coordinate for dimension %q of variable %v", ErrAssembly, dim, entry.Key)
			}
			if got, _ := entry.Value.coords.Get(dim); !slices.Equal(want, got) {
				return nil, fmt.Errorf("%w, variable %v labels dimension %q with %v instead of %v", ErrAssembly, entry.Key, dim, got, want)
			}
		}
	}
	return &Dataset[T]{vars: vars, coords: coords}, nil
}

// Names returns the variable names in insertion order.
func (d *Dataset[T]) Names() []any {
	return d.vars.Keys()
}

func (d *Dataset[T]) Var(name any) (*DataArray[T], bool) {
	return d.vars.Get(name)
}

func (d *Dataset[T]) Vars() *gen.OrderedMap[any, *DataArray[T]] {
	return d.vars
}

func (d *Dataset[T]) Len() int {
	return d.vars.Len()
}

func (d *Dataset[T]) Coords() *Coordinates {
	return d.coords
}

// Dims returns the sorted names of all dimensions of the dataset.
func (d *Dataset[T]) Dims() []string {
	res := d.coords.Keys()
	for _, array := range d.vars.Values() {
		res = append(res, array.dims...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// SizeOf returns the length of the given dimension, or -1 if the dataset has
// no such dimension.
func (d *Dataset[T]) SizeOf(dim string) int {
	coord, found := d.coords.Get(dim)
	if !found {
		return -1
	}
	return len(coord)
}

func (d *Dataset[T]) String() string {
	return fmt.Sprintf("Dataset vars=%v coords=%v", d.vars, d.coords)
}
