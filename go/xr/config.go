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

	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

// Config controls the labeled containers produced by the generators of this
// package. All variables of a dataset share the element type T.
type Config[T nd.Number] struct {
	// Elements fills the values; nil selects nd.Elements[T]().
	Elements gen.Generator[T]
	// CoordElements fills the coordinates; nil selects CoordElements().
	CoordElements gen.Generator[any]
	// Side bounds the length of every dimension.
	Side gen.Bounds
	// Dims bounds the number of dimensions of an array.
	Dims gen.Bounds
	// Vars bounds the number of variables of a dataset.
	Vars gen.Bounds
	// UniqueCoords requires the labels of each coordinate to be distinct.
	UniqueCoords bool
	// CoordOverrides replaces the coordinate generator of individual
	// dimensions.
	CoordOverrides map[string]gen.Generator[[]any]
	// Assembler builds the containers; nil selects DefaultAssembler[T]().
	Assembler Assembler[T]
}

func DefaultConfig[T nd.Number]() Config[T] {
	return Config[T]{
		Side:         gen.Between(0, DefaultSide),
		Dims:         gen.Between(0, DefaultDims),
		Vars:         gen.Between(0, DefaultVars),
		UniqueCoords: true,
	}
}

func (c Config[T]) assembler() Assembler[T] {
	if c.Assembler == nil {
		return DefaultAssembler[T]()
	}
	return c.Assembler
}

// withSimpleCoords returns a copy of c labeling each of the given dimensions
// with SimpleCoords.
func (c Config[T]) withSimpleCoords(dims []string) (Config[T], error) {
	coords, err := SimpleCoords(c.Side)
	if err != nil {
		return c, err
	}
	c.CoordOverrides = make(map[string]gen.Generator[[]any], len(dims))
	for _, dim := range dims {
		c.CoordOverrides[dim] = coords
	}
	return c, nil
}

func assemblyFailure(what string, err error) error {
	return fmt.Errorf("%w, failed to assemble %s: %w", ErrInternal, what, err)
}
