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
	"fmt"
	"slices"

	"github.com/Fantom-foundation/Gufunc/go/gen"
	"github.com/Fantom-foundation/Gufunc/go/nd"
)

// ShapeConfig controls the shapes drawn for the arguments of a signature.
type ShapeConfig struct {
	// Side bounds the length of every drawn axis.
	Side gen.Bounds
	// SymbolSides overrides Side for individual core dimension symbols.
	SymbolSides map[string]gen.Bounds
	// ExtraDims bounds the number of loop dimensions prepended to the core
	// dimensions of each argument.
	ExtraDims gen.Bounds
	// Excluded lists argument positions which never get extra dimensions.
	Excluded []int
	// Broadcast makes the extra dimensions of all arguments broadcast
	// compatible with each other.
	Broadcast bool
}

func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Side:      gen.Between(0, 5),
		ExtraDims: gen.Between(0, 2),
	}
}

func (c ShapeConfig) validate(sig *Signature) error {
	if err := c.Side.Check("side", 0); err != nil {
		return err
	}
	if err := c.ExtraDims.Check("extra dims", 0); err != nil {
		return err
	}
	symbols := sig.Symbols()
	for symbol, bounds := range c.SymbolSides {
		if _, isConstant := constantSize(symbol); isConstant || !slices.Contains(symbols, symbol) {
			return fmt.Errorf("%w, side given for unknown dimension %q of %v", gen.ErrInvalid, symbol, sig)
		}
		if err := bounds.Check(fmt.Sprintf("side of %q", symbol), 0); err != nil {
			return err
		}
	}
	for _, arg := range c.Excluded {
		if arg < 0 || arg >= sig.NumArgs() {
			return fmt.Errorf("%w, excluded argument %d out of range for %v", gen.ErrInvalid, arg, sig)
		}
	}
	return nil
}

func (c ShapeConfig) sideOf(symbol string) gen.Bounds {
	if bounds, found := c.SymbolSides[symbol]; found {
		return bounds
	}
	return c.Side
}

// Resolution is one concrete assignment of shapes to the arguments of a
// signature.
type Resolution struct {
	// Binding maps every input symbol to its length, in order of appearance.
	Binding *gen.OrderedMap[string, int]
	// Args holds the shape of each input argument, extra dims first.
	Args []nd.Shape

	signature *Signature
	loop      nd.Shape
}

// Signature returns the signature the shapes were resolved for.
func (r *Resolution) Signature() *Signature {
	return r.signature
}

// OutputShape is the shape of the gufunc result: the core output dimensions,
// prefixed by the broadcast loop dimensions when broadcasting was requested.
func (r *Resolution) OutputShape() nd.Shape {
	res := r.loop.Clone()
	for _, symbol := range r.signature.output {
		res = append(res, r.sizeOf(symbol))
	}
	return res
}

func (r *Resolution) sizeOf(symbol string) int {
	if size, isConstant := constantSize(symbol); isConstant {
		return size
	}
	size, _ := r.Binding.Get(symbol)
	return size
}

func (r *Resolution) String() string {
	return fmt.Sprintf("%v: %v -> %v", r.signature, r.Args, r.OutputShape())
}

// Shapes produces shape resolutions for the given signature. Every distinct
// symbol is bound to one length, constant symbols to their value. Each
// argument not listed in cfg.Excluded is prefixed by a number of extra
// dimensions within cfg.ExtraDims.
//
// Without cfg.Broadcast the extra dimensions of the arguments are drawn
// independently. With it, a loop shape of cfg.ExtraDims.Upper() lengths is
// drawn once; every argument uses a suffix of it with some lengths replaced
// by 1, so the argument shapes broadcast against each other.
func Shapes(sig *Signature, cfg ShapeConfig) (gen.Generator[*Resolution], error) {
	if err := cfg.validate(sig); err != nil {
		return nil, err
	}

	symbols := sig.Symbols()
	sizeOf := make(map[string]gen.Generator[int], len(symbols))
	for _, symbol := range symbols {
		if size, isConstant := constantSize(symbol); isConstant {
			sizeOf[symbol] = gen.Just(size)
			continue
		}
		sizes, err := gen.Sizes(cfg.sideOf(symbol))
		if err != nil {
			return nil, err
		}
		sizeOf[symbol] = sizes
	}
	binding := gen.FixedMap(symbols, func(symbol string) gen.Generator[int] {
		return sizeOf[symbol]
	})

	sides, err := gen.Sizes(cfg.Side)
	if err != nil {
		return nil, err
	}
	counts, err := gen.Sizes(cfg.ExtraDims)
	if err != nil {
		return nil, err
	}
	resolver := &resolver{
		sig:      sig,
		cfg:      cfg,
		binding:  binding,
		sides:    sides,
		counts:   counts,
		stretch:  gen.Bools(),
		excluded: cfg.Excluded,
	}
	return gen.GeneratorFunc[*Resolution](resolver.resolve), nil
}

type resolver struct {
	sig      *Signature
	cfg      ShapeConfig
	binding  gen.Generator[*gen.OrderedMap[string, int]]
	sides    gen.Generator[int]
	counts   gen.Generator[int]
	stretch  gen.Generator[bool]
	excluded []int
}

func (r *resolver) resolve(src gen.Source) (*Resolution, error) {
	binding, err := r.binding.Generate(src)
	if err != nil {
		return nil, err
	}
	res := &Resolution{
		Binding:   binding,
		Args:      make([]nd.Shape, r.sig.NumArgs()),
		signature: r.sig,
	}

	var loop nd.Shape
	if r.cfg.Broadcast {
		if loop, err = r.drawSides(src, r.cfg.ExtraDims.Upper()); err != nil {
			return nil, err
		}
	}

	extras := make([]nd.Shape, 0, len(res.Args))
	for i := range res.Args {
		extra, err := r.drawExtra(src, i, loop)
		if err != nil {
			return nil, err
		}
		extras = append(extras, extra)
		shape := extra
		for _, symbol := range r.sig.inputs[i] {
			shape = append(shape, res.sizeOf(symbol))
		}
		res.Args[i] = shape
	}

	if r.cfg.Broadcast {
		if res.loop, err = nd.BroadcastShapes(extras...); err != nil {
			return nil, fmt.Errorf("broadcast loop %v produced incompatible shapes: %w", loop, err)
		}
	}
	return res, nil
}

func (r *resolver) drawExtra(src gen.Source, arg int, loop nd.Shape) (nd.Shape, error) {
	if slices.Contains(r.excluded, arg) {
		return nd.Shape{}, nil
	}
	count, err := r.counts.Generate(src)
	if err != nil {
		return nil, err
	}
	if !r.cfg.Broadcast {
		return r.drawSides(src, count)
	}
	res := loop[len(loop)-count:].Clone()
	for i := range res {
		stretch, err := r.stretch.Generate(src)
		if err != nil {
			return nil, err
		}
		if stretch {
			res[i] = 1
		}
	}
	return res, nil
}

func (r *resolver) drawSides(src gen.Source, count int) (nd.Shape, error) {
	res := make(nd.Shape, 0, count)
	for i := 0; i < count; i++ {
		side, err := r.sides.Generate(src)
		if err != nil {
			return nil, err
		}
		res = append(res, side)
	}
	return res, nil
}

// ArgShapes parses the signature and produces shape resolutions for it.
func ArgShapes(signature string, cfg ShapeConfig) (gen.Generator[*Resolution], error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return Shapes(sig, cfg)
}
