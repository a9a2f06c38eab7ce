// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package nd provides dense n-dimensional arrays and the generators drawing
// them from a shape and an element generator.
package nd

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types supported by arrays.
type Number interface {
	constraints.Integer | constraints.Float
}

// DType identifies the element type of an array.
type DType uint8

const (
	Invalid DType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

// DefaultDType is the element type used where none is requested explicitly.
const DefaultDType = Int64

var kinds = map[reflect.Kind]DType{
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Int:     Int,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uint:    Uint,
	reflect.Uintptr: Uintptr,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
}

// DTypeOf returns the DType of element type T. Named types map to the DType
// of their underlying type.
func DTypeOf[T Number]() DType {
	var zero T
	return kinds[reflect.TypeOf(zero).Kind()]
}

func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

func (d DType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "invalid"
}
