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
	"strings"

	"github.com/Fantom-foundation/Gufunc/go/common"
)

// ErrShape is returned for shapes with negative extents and for data not
// matching the size of a shape.
const ErrShape = common.ConstErr("invalid shape")

// Shape lists the extent of each axis of an array. The empty shape is the
// shape of a scalar.
type Shape []int

func (s Shape) Rank() int {
	return len(s)
}

// Size is the number of elements of an array of this shape.
func (s Shape) Size() int {
	size := 1
	for _, extent := range s {
		size *= extent
	}
	return size
}

func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

func (s Shape) Validate() error {
	for axis, extent := range s {
		if extent < 0 {
			return fmt.Errorf("%w, extent %d of axis %d in %v is negative", ErrShape, extent, axis, s)
		}
	}
	return nil
}

func (s Shape) String() string {
	parts := make([]string, 0, len(s))
	for _, extent := range s {
		parts = append(parts, fmt.Sprint(extent))
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// BroadcastShapes computes the shape resulting from broadcasting the given
// shapes following NumPy's rules: shapes are aligned at their trailing axes,
// and extents of an axis must either be equal or 1.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, shape := range shapes {
		rank = max(rank, shape.Rank())
	}
	res := make(Shape, rank)
	for i := range res {
		res[i] = 1
	}
	for _, shape := range shapes {
		padded := common.LeftPadSlice(shape, rank, 1)
		for axis, extent := range padded {
			switch {
			case extent == res[axis]:
			case extent == 1:
			case res[axis] == 1:
				res[axis] = extent
			default:
				return nil, fmt.Errorf("%w, shapes %v cannot be broadcast, conflict at axis %d", ErrShape, shapes, axis)
			}
		}
	}
	return res, nil
}
