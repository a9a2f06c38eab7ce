// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gufunc

import (
	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

// Arrays produces one array per input argument of the signature, in declared
// order, with shapes drawn by Shapes(sig, cfg). Elements are drawn from
// elements, or nd.Elements[T]() if it is nil. If unique is set, no array
// contains an element twice.
func Arrays[T nd.Number](sig *Signature, elements gen.Generator[T], cfg ShapeConfig, unique bool) (gen.Generator[[]*nd.Array[T]], error) {
	shapes, err := Shapes(sig, cfg)
	if err != nil {
		return nil, err
	}
	return gen.FlatMap(shapes, func(res *Resolution) gen.Generator[[]*nd.Array[T]] {
		arrays := make([]gen.Generator[*nd.Array[T]], 0, len(res.Args))
		for _, shape := range res.Args {
			array, err := nd.Arrays(shape, elements, unique)
			if err != nil {
				return gen.Fail[[]*nd.Array[T]](err)
			}
			arrays = append(arrays, array)
		}
		return gen.Sequence(arrays)
	}), nil
}

// Args parses the signature and produces argument arrays for it.
func Args[T nd.Number](signature string, elements gen.Generator[T], cfg ShapeConfig, unique bool) (gen.Generator[[]*nd.Array[T]], error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return Arrays(sig, elements, cfg, unique)
}
