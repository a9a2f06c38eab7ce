// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package gufunc generates the arguments of generalized universal functions:
// tuples of arrays whose core dimensions follow a shape signature such as
// "(m,n),(n,p)->(m,p)", optionally prefixed by extra loop dimensions.
package gufunc

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/Fantom-foundation/Gufunc/go/common"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrParse is returned for signatures not following the gufunc grammar.
const ErrParse = common.ConstErr("malformed gufunc signature")

// ErrFreeOutputDimension is returned for signatures with an output dimension
// not defined by any input argument.
const ErrFreeOutputDimension = common.ConstErr("free output dimension")

const signatureCacheSize = 1024

const argumentPattern = `\(\s*(?:\w+\s*(?:,\s*\w+\s*)*)?\)`

var (
	signatureRegexp = regexp.MustCompile(`^\s*` + argumentPattern + `(?:\s*,\s*` + argumentPattern + `)*\s*->\s*` + argumentPattern + `\s*$`)
	argumentRegexp  = regexp.MustCompile(`\(([^()]*)\)`)
)

var signatureCache = mustNewCache(signatureCacheSize)

func mustNewCache(size int) *lru.Cache[string, *Signature] {
	cache, err := lru.New[string, *Signature](size)
	if err != nil {
		panic(fmt.Sprintf("failed to create signature cache: %v", err))
	}
	return cache
}

// Signature is the parsed form of a gufunc shape signature. It lists the core
// dimensions of each input argument and of the output. Equal symbols denote
// axes of equal length; symbols consisting of digits only denote axes of that
// constant length. Signatures are immutable and may be shared.
type Signature struct {
	inputs [][]string
	output []string
}

// ParseSignature parses a signature of the form "(m,n),(n,p)->(m,p)". White
// space may surround the parentheses, commas and the arrow but not split a
// symbol. "()" denotes an argument without core dimensions.
// Every output dimension has to be defined by some input.
func ParseSignature(signature string) (*Signature, error) {
	if res, found := signatureCache.Get(signature); found {
		return res, nil
	}
	res, err := parseSignature(signature)
	if err != nil {
		return nil, err
	}
	signatureCache.Add(signature, res)
	return res, nil
}

// MustParseSignature is like ParseSignature but panics on errors.
func MustParseSignature(signature string) *Signature {
	res, err := ParseSignature(signature)
	if err != nil {
		panic(err)
	}
	return res
}

func parseSignature(signature string) (*Signature, error) {
	if !signatureRegexp.MatchString(signature) {
		return nil, fmt.Errorf("%w, %q", ErrParse, signature)
	}
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, signature)

	arrow := strings.Index(compact, "->")
	res := &Signature{
		inputs: parseArguments(compact[:arrow]),
		output: parseArguments(compact[arrow+2:])[0],
	}

	defined := res.Symbols()
	for _, symbol := range slices.Concat(defined, res.output) {
		if _, isConstant := constantSize(symbol); isNumeral(symbol) && !isConstant {
			return nil, fmt.Errorf("%w, constant dimension %s out of range in %q", ErrParse, symbol, signature)
		}
	}
	for _, symbol := range res.output {
		if _, isConstant := constantSize(symbol); isConstant {
			continue
		}
		if !slices.Contains(defined, symbol) {
			return nil, fmt.Errorf("%w, %q in %q", ErrFreeOutputDimension, symbol, signature)
		}
	}
	return res, nil
}

func parseArguments(text string) [][]string {
	res := [][]string{}
	for _, match := range argumentRegexp.FindAllStringSubmatch(text, -1) {
		dims := []string{}
		if match[1] != "" {
			dims = strings.Split(match[1], ",")
		}
		res = append(res, dims)
	}
	return res
}

// constantSize reports whether symbol denotes an axis of fixed length.
func constantSize(symbol string) (int, bool) {
	if !isNumeral(symbol) {
		return 0, false
	}
	size, err := strconv.Atoi(symbol)
	return size, err == nil
}

func isNumeral(symbol string) bool {
	for _, r := range symbol {
		if r < '0' || r > '9' {
			return false
		}
	}
	return symbol != ""
}

// NumArgs is the number of input arguments.
func (s *Signature) NumArgs() int {
	return len(s.inputs)
}

// Input returns the core dimensions of the i-th input argument.
func (s *Signature) Input(i int) []string {
	return slices.Clone(s.inputs[i])
}

func (s *Signature) Output() []string {
	return slices.Clone(s.output)
}

// Symbols returns the distinct symbols of the input arguments in order of
// their first occurrence.
func (s *Signature) Symbols() []string {
	all := []string{}
	for _, dims := range s.inputs {
		all = append(all, dims...)
	}
	return common.Unique(all)
}

func (s *Signature) String() string {
	args := make([]string, 0, len(s.inputs))
	for _, dims := range s.inputs {
		args = append(args, formatArgument(dims))
	}
	return strings.Join(args, ",") + "->" + formatArgument(s.output)
}

func formatArgument(dims []string) string {
	return "(" + strings.Join(dims, ",") + ")"
}
