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

// FixedCoordsDatasets produces datasets with the given variables, dimensions
// and coordinates; only the values are drawn. Each dimension of each
// variable needs a coordinate in coords.
func FixedCoordsDatasets[T nd.Number](varsToDims *VarDims, coords *Coordinates, cfg Config[T]) (gen.Generator[*Dataset[T]], error) {
	if err := checkVarNames(varsToDims, coords.Keys()); err != nil {
		return nil, err
	}
	arrays := make(map[any]gen.Generator[*DataArray[T]], varsToDims.Len())
	for _, entry := range varsToDims.Entries() {
		array, err := FixedCoordsDataArrays(entry.Value, coords, cfg)
		if err != nil {
			return nil, fmt.Errorf("variable %v: %w", entry.Key, err)
		}
		arrays[entry.Key] = array
	}
	vars := gen.FixedMap(varsToDims.Keys(), func(name any) gen.Generator[*DataArray[T]] {
		return arrays[name]
	})

	assembler := cfg.assembler()
	return gen.GeneratorFunc[*Dataset[T]](func(src gen.Source) (*Dataset[T], error) {
		data, err := vars.Generate(src)
		if err != nil {
			return nil, err
		}
		res, err := assembler.Dataset(data, coords)
		if err != nil {
			return nil, assemblyFailure("dataset", err)
		}
		return res, nil
	}), nil
}

// FixedDatasets produces datasets with the given variables and dimensions.
// Coordinates for the union of all dimensions are drawn by CoordsDicts
// using the coordinate settings of cfg, then the values.
func FixedDatasets[T nd.Number](varsToDims *VarDims, cfg Config[T]) (gen.Generator[*Dataset[T]], error) {
	if err := checkVarNames(varsToDims, nil); err != nil {
		return nil, err
	}
	coords, err := CoordsDicts(AllDims(varsToDims), cfg.CoordElements, cfg.Side, cfg.UniqueCoords, cfg.CoordOverrides)
	if err != nil {
		return nil, err
	}
	return gen.FlatMap(coords, func(coords *Coordinates) gen.Generator[*Dataset[T]] {
		datasets, err := FixedCoordsDatasets(varsToDims, coords, cfg)
		return gen.OrFail(datasets, err)
	}), nil
}

// SimpleDatasets produces datasets with the given variables and dimensions,
// each dimension labeled 0, 1, ..., n-1.
func SimpleDatasets[T nd.Number](varsToDims *VarDims, cfg Config[T]) (gen.Generator[*Dataset[T]], error) {
	cfg, err := cfg.withSimpleCoords(AllDims(varsToDims))
	if err != nil {
		return nil, err
	}
	return FixedDatasets(varsToDims, cfg)
}

// Datasets produces datasets with nothing fixed in advance: the mapping of
// variables to dimensions is drawn by VarsToDims(cfg.Vars, cfg.Dims) first,
// then coordinates and values as for FixedDatasets.
func Datasets[T nd.Number](cfg Config[T]) (gen.Generator[*Dataset[T]], error) {
	if err := cfg.Side.Check("side", 0); err != nil {
		return nil, err
	}
	structures, err := VarsToDims(cfg.Vars, cfg.Dims)
	if err != nil {
		return nil, err
	}
	return gen.FlatMap(structures, func(varsToDims *VarDims) gen.Generator[*Dataset[T]] {
		datasets, err := FixedDatasets(varsToDims, cfg)
		return gen.OrFail(datasets, err)
	}), nil
}

// checkVarNames verifies that no variable is named like one of its own
// dimensions or one of the given extra dimensions.
func checkVarNames(varsToDims *VarDims, extra []string) error {
	dims := append(AllDims(varsToDims), extra...)
	for _, name := range varsToDims.Keys() {
		if name, isString := name.(string); isString && slices.Contains(dims, name) {
			return fmt.Errorf("%w, %q is used as variable and dimension name", gen.ErrInvalid, name)
		}
	}
	return nil
}
