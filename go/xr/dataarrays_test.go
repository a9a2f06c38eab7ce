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
	"errors"
	"slices"
	"testing"

	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rand"
	"pgregory.net/rapid"
)

func TestFixedCoordsDataArrays_KeepGivenDimsAndCoords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lists, err := DimLists(gen.Between(0, DefaultDims))
		require.NoError(t, err)
		dims := draw(t, lists, "dims")
		dicts, err := CoordsDicts(dims, nil, gen.Between(0, DefaultSide), true, nil)
		require.NoError(t, err)
		coords := draw(t, dicts, "coords")

		arrays, err := FixedCoordsDataArrays(dims, coords, DefaultConfig[int32]())
		require.NoError(t, err)
		array := draw(t, arrays, "array")

		require.True(t, slices.Equal(dims, array.Dims()), "dims %v differ from %v", array.Dims(), dims)
		require.Equal(t, nd.Int32, array.Values().DType())
		for _, dim := range dims {
			want, _ := coords.Get(dim)
			got, found := array.Coord(dim)
			require.True(t, found)
			require.True(t, slices.Equal(want, got), "labels %v of %q differ from %v", got, dim, want)
		}
	})
}

func TestFixedDataArrays_RespectSideAndOverrides(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lists, err := DimLists(gen.Between(0, 3))
		require.NoError(t, err)
		dims := draw(t, lists, "dims")
		subsets, err := gen.Subset(dims, gen.AtLeast(0))
		require.NoError(t, err)
		special := draw(t, subsets, "special dims")

		cfg := DefaultConfig[float32]()
		cfg.Side = drawBounds(t, "side", true)
		cfg.CoordOverrides = labelOverrides(t, special, cfg.Side)
		arrays, err := FixedDataArrays(dims, cfg)
		require.NoError(t, err)
		array := draw(t, arrays, "array")

		require.True(t, slices.Equal(dims, array.Dims()), "dims %v differ from %v", array.Dims(), dims)
		require.Equal(t, nd.Float32, array.Values().DType())
		for _, dim := range dims {
			require.True(t, cfg.Side.Contains(array.SizeOf(dim)))
			labels, _ := array.Coord(dim)
			if slices.Contains(special, dim) {
				for _, label := range labels {
					require.Equal(t, any(dim), label)
				}
				continue
			}
			for _, label := range labels {
				require.True(t, isInt(label))
			}
			require.True(t, isDistinct(labels))
		}
	})
}

func TestSimpleDataArrays_UseSimpleCoords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lists, err := DimLists(gen.Between(0, DefaultDims))
		require.NoError(t, err)
		dims := draw(t, lists, "dims")

		cfg := DefaultConfig[uint8]()
		cfg.Side = drawBounds(t, "side", false)
		arrays, err := SimpleDataArrays(dims, cfg)
		require.NoError(t, err)
		array := draw(t, arrays, "array")

		require.True(t, slices.Equal(dims, array.Dims()), "dims %v differ from %v", array.Dims(), dims)
		for _, dim := range dims {
			require.True(t, cfg.Side.Contains(array.SizeOf(dim)))
			labels, _ := array.Coord(dim)
			require.True(t, isSimple(labels), "labels %v of %q are not simple", labels, dim)
		}
	})
}

func TestDataArrays_RespectAllBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultConfig[int64]()
		cfg.Dims = drawBounds(t, "dims", false)
		cfg.Side = drawBounds(t, "side", false)
		arrays, err := DataArrays(cfg)
		require.NoError(t, err)
		array := draw(t, arrays, "array")

		require.True(t, cfg.Dims.Contains(len(array.Dims())))
		require.Equal(t, nd.Int64, array.Values().DType())
		for _, dim := range array.Dims() {
			require.True(t, cfg.Side.Contains(array.SizeOf(dim)))
			labels, _ := array.Coord(dim)
			for _, label := range labels {
				require.True(t, isInt(label))
			}
			require.True(t, isDistinct(labels))
		}
	})
}

func TestDataArrays_UseGivenElements(t *testing.T) {
	elements, err := gen.SampledFrom[int16](-1, 1)
	if err != nil {
		t.Fatalf("failed to create elements: %v", err)
	}
	cfg := DefaultConfig[int16]()
	cfg.Elements = elements
	arrays, err := DataArrays(cfg)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	rnd := rand.New(0)
	for i := 0; i < 100; i++ {
		array, err := gen.Draw(arrays, rnd)
		if err != nil {
			t.Fatalf("failed to draw array: %v", err)
		}
		for _, value := range array.Values().Data() {
			if value != -1 && value != 1 {
				t.Fatalf("unexpected element %d", value)
			}
		}
	}
}

func TestDataArrays_RejectInvalidConfigurations(t *testing.T) {
	tests := map[string]func() error{
		"negative side": func() error {
			cfg := DefaultConfig[int64]()
			cfg.Side = gen.Between(-1, 2)
			_, err := DataArrays(cfg)
			return err
		},
		"inverted dims": func() error {
			cfg := DefaultConfig[int64]()
			cfg.Dims = gen.Between(3, 2)
			_, err := DataArrays(cfg)
			return err
		},
		"inverted side of simple coords": func() error {
			cfg := DefaultConfig[int64]()
			cfg.Side = gen.Between(3, 2)
			_, err := SimpleDataArrays([]string{"x"}, cfg)
			return err
		},
		"duplicate dims": func() error {
			_, err := FixedDataArrays([]string{"x", "x"}, DefaultConfig[int64]())
			return err
		},
		"missing coordinate": func() error {
			coords := newCoords(coord("x", 1))
			_, err := FixedCoordsDataArrays([]string{"x", "y"}, coords, DefaultConfig[int64]())
			return err
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if err := test(); !errors.Is(err, gen.ErrInvalid) {
				t.Errorf("expected invalid configuration, got %v", err)
			}
		})
	}
}

func TestFixedCoordsDataArrays_PassPartsToAssembler(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler := NewMockAssembler[float64](ctrl)
	coords := newCoords(coord("x", 1, 2), coord("y", 3))
	result := &DataArray[float64]{}

	assembler.EXPECT().
		DataArray(gomock.Any(), []string{"x"}, gomock.Any()).
		DoAndReturn(func(values *nd.Array[float64], dims []string, coords *Coordinates) (*DataArray[float64], error) {
			if want, got := (nd.Shape{2}), values.Shape(); !want.Equal(got) {
				t.Errorf("unexpected shape, wanted %v, got %v", want, got)
			}
			if want, got := []string{"x"}, coords.Keys(); !slices.Equal(want, got) {
				t.Errorf("coordinates not restricted to dims, got %v", got)
			}
			return result, nil
		})

	cfg := DefaultConfig[float64]()
	cfg.Assembler = assembler
	arrays, err := FixedCoordsDataArrays([]string{"x"}, coords, cfg)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	array, err := gen.Draw(arrays, rand.New(0))
	if err != nil {
		t.Fatalf("failed to draw array: %v", err)
	}
	if array != result {
		t.Errorf("generator did not return the assembled array")
	}
}

func TestFixedCoordsDataArrays_AssemblyFailuresAreInternalErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler := NewMockAssembler[float64](ctrl)
	assembler.EXPECT().DataArray(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrAssembly)

	cfg := DefaultConfig[float64]()
	cfg.Assembler = assembler
	arrays, err := FixedCoordsDataArrays([]string{"x"}, newCoords(coord("x", 1)), cfg)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	_, err = gen.Draw(arrays, rand.New(0))
	if !errors.Is(err, ErrInternal) || !errors.Is(err, ErrAssembly) {
		t.Errorf("expected internal error wrapping the assembly failure, got %v", err)
	}
}
