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
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

//go:generate mockgen -source assembler.go -destination assembler_mock.go -package xr

// Assembler builds labeled containers from drawn parts. Generators hand every
// drawn set of values, dimensions and coordinates to an Assembler; the
// default one uses NewDataArray and NewDataset.
type Assembler[T nd.Number] interface {
	DataArray(values *nd.Array[T], dims []string, coords *Coordinates) (*DataArray[T], error)
	Dataset(vars *gen.OrderedMap[any, *DataArray[T]], coords *Coordinates) (*Dataset[T], error)
}

func DefaultAssembler[T nd.Number]() Assembler[T] {
	return constructors[T]{}
}

type constructors[T nd.Number] struct{}

func (constructors[T]) DataArray(values *nd.Array[T], dims []string, coords *Coordinates) (*DataArray[T], error) {
	return NewDataArray(values, dims, coords)
}

func (constructors[T]) Dataset(vars *gen.OrderedMap[any, *DataArray[T]], coords *Coordinates) (*Dataset[T], error) {
	return NewDataset(vars, coords)
}
