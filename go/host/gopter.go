// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import (
	"reflect"

	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/leanovate/gopter"
)

// Gopter exposes g as a gopter generator drawing from the random number
// generator of the gopter parameters. Produced values are not shrunk; failed
// draws yield an empty result.
func Gopter[T any](g gen.Generator[T]) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		value, err := g.Generate(NewMathRandSource(params.Rng))
		if err != nil {
			return gopter.NewEmptyResult(reflect.TypeOf((*T)(nil)).Elem())
		}
		return gopter.NewGenResult(value, gopter.NoShrinker)
	}
}
