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

// FixedCoordsDataArrays produces labeled arrays with the given dimensions and
// coordinates; only the values are drawn. Each dimension needs a coordinate
// in coords, which fixes its length.
func FixedCoordsDataArrays[T nd.Number](dims []string, coords *Coordinates, cfg Config[T]) (gen.Generator[*DataArray[T]], error) {
	if err := checkDims(dims); err != nil {
		return nil, err
	}
	shape := make(nd.Shape, 0, len(dims))
	for _, dim := range dims {
		coord, found := coords.Get(dim)
		if !found {
			return nil, fmt.Errorf("%w, no coordinate given for dimension %q", gen.ErrInvalid, dim)
		}
		shape = append(shape, len(coord))
	}
	values, err := nd.Arrays(shape, cfg.Elements, false)
	if err != nil {
		return nil, err
	}

	dims = slices.Clone(dims)
	coords = coords.Restrict(dims)
	assembler := cfg.assembler()
	return gen.GeneratorFunc[*DataArray[T]](func(src gen.Source) (*DataArray[T], error) {
		data, err := values.Generate(src)
		if err != nil {
			return nil, err
		}
		res, err := assembler.DataArray(data, dims, coords)
		if err != nil {
			return nil, assemblyFailure("data array", err)
		}
		return res, nil
	}), nil
}

// FixedDataArrays produces labeled arrays with the given dimensions. The
// coordinates are drawn by CoordsDicts using the coordinate settings of cfg,
// then the values.
func FixedDataArrays[T nd.Number](dims []string, cfg Config[T]) (gen.Generator[*DataArray[T]], error) {
	if err := checkDims(dims); err != nil {
		return nil, err
	}
	coords, err := CoordsDicts(dims, cfg.CoordElements, cfg.Side, cfg.UniqueCoords, cfg.CoordOverrides)
	if err != nil {
		return nil, err
	}
	dims = slices.Clone(dims)
	return gen.FlatMap(coords, func(coords *Coordinates) gen.Generator[*DataArray[T]] {
		arrays, err := FixedCoordsDataArrays(dims, coords, cfg)
		return gen.OrFail(arrays, err)
	}), nil
}

// SimpleDataArrays produces labeled arrays with the given dimensions, each
// labeled 0, 1, ..., n-1.
func SimpleDataArrays[T nd.Number](dims []string, cfg Config[T]) (gen.Generator[*DataArray[T]], error) {
	cfg, err := cfg.withSimpleCoords(dims)
	if err != nil {
		return nil, err
	}
	return FixedDataArrays(dims, cfg)
}

// DataArrays produces labeled arrays with nothing fixed in advance: a list
// of dimension names within cfg.Dims is drawn first, then coordinates and
// values as for FixedDataArrays.
func DataArrays[T nd.Number](cfg Config[T]) (gen.Generator[*DataArray[T]], error) {
	if err := cfg.Side.Check("side", 0); err != nil {
		return nil, err
	}
	dimLists, err := DimLists(cfg.Dims)
	if err != nil {
		return nil, err
	}
	return gen.FlatMap(dimLists, func(dims []string) gen.Generator[*DataArray[T]] {
		arrays, err := FixedDataArrays(dims, cfg)
		return gen.OrFail(arrays, err)
	}), nil
}

func checkDims(dims []string) error {
	if common.HasDuplicates(dims) {
		return fmt.Errorf("%w, duplicate dimensions in %v", gen.ErrInvalid, dims)
	}
	return nil
}
