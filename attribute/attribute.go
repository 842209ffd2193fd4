// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package attribute implements edge attributes,
// real vectors attached to the edges of a tree
// (e.g., branch lengths).
//
// An attribute can be absent
// (i.e., the edge has no recorded value).
// The absent attribute is the zero value of the type.
package attribute

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute tolerance
// used to compare attribute values.
const Tolerance = 1e-8

// ErrDimensionMismatch is returned
// when two attributes of different length
// are combined.
var ErrDimensionMismatch = errors.New("attribute dimension mismatch")

// ErrInvalidParameter is returned
// (or logged)
// when an operation receives an invalid parameter.
var ErrInvalidParameter = errors.New("invalid parameter")

// An Attribute is a vector of real values.
type Attribute struct {
	v []float64
}

// New returns an attribute with the given values.
// If no values are given,
// it returns the absent attribute.
func New(v ...float64) Attribute {
	if len(v) == 0 {
		return Attribute{}
	}
	c := make([]float64, len(v))
	copy(c, v)
	return Attribute{v: c}
}

// Zero returns an attribute of the given size
// with all values set to zero.
func Zero(size int) (Attribute, error) {
	if size < 1 {
		return Attribute{}, fmt.Errorf("%w: attribute size %d", ErrInvalidParameter, size)
	}
	return Attribute{v: make([]float64, size)}, nil
}

// Parse reads an attribute
// from a list of comma separated values.
// An empty string,
// or a dash,
// is read as the absent attribute.
func Parse(s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Attribute{}, nil
	}
	fs := strings.Split(s, ",")
	v := make([]float64, 0, len(fs))
	for _, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Attribute{}, fmt.Errorf("attribute %q: %v", s, err)
		}
		v = append(v, x)
	}
	return Attribute{v: v}, nil
}

// IsAbsent returns true if the attribute has no values.
func (a Attribute) IsAbsent() bool {
	return len(a.v) == 0
}

// Len returns the number of values of the attribute.
func (a Attribute) Len() int {
	return len(a.v)
}

// Values returns a copy of the attribute values.
func (a Attribute) Values() []float64 {
	if a.IsAbsent() {
		return nil
	}
	v := make([]float64, len(a.v))
	copy(v, a.v)
	return v
}

// Clone returns an independent copy of the attribute.
func (a Attribute) Clone() Attribute {
	return Attribute{v: a.Values()}
}

// Norm returns the Euclidean norm of the attribute.
// The norm of the absent attribute is 0.
func (a Attribute) Norm() float64 {
	if a.IsAbsent() {
		return 0
	}
	return floats.Norm(a.v, 2)
}

// Sum returns the sum of the attribute values.
func (a Attribute) Sum() float64 {
	if a.IsAbsent() {
		return 0
	}
	return floats.Sum(a.v)
}

func checkDims(a, b Attribute) error {
	if a.IsAbsent() || b.IsAbsent() {
		return nil
	}
	if len(a.v) != len(b.v) {
		return fmt.Errorf("%w: %d and %d values", ErrDimensionMismatch, len(a.v), len(b.v))
	}
	return nil
}

// Add adds the values of o to a.
// If o is absent,
// a is not modified.
// If a is absent,
// it takes the values of o.
func (a *Attribute) Add(o Attribute) error {
	if o.IsAbsent() {
		return nil
	}
	if a.IsAbsent() {
		a.v = o.Values()
		return nil
	}
	if err := checkDims(*a, o); err != nil {
		return err
	}
	floats.Add(a.v, o.v)
	return nil
}

// ScaleBy multiplies all the values of the attribute
// by the given factor.
func (a *Attribute) ScaleBy(factor float64) {
	if a.IsAbsent() {
		return
	}
	floats.Scale(factor, a.v)
}

// Difference returns a - b.
// If one of the operands is absent,
// it returns a copy of the other one.
func Difference(a, b Attribute) (Attribute, error) {
	if a.IsAbsent() {
		return b.Clone(), nil
	}
	if b.IsAbsent() {
		return a.Clone(), nil
	}
	if err := checkDims(a, b); err != nil {
		return Attribute{}, err
	}
	v := make([]float64, len(a.v))
	floats.SubTo(v, a.v, b.v)
	return Attribute{v: v}, nil
}

// Product returns the elementwise product of a and b.
// If any of the operands is absent,
// it returns the absent attribute.
func Product(a, b Attribute) (Attribute, error) {
	if a.IsAbsent() || b.IsAbsent() {
		return Attribute{}, nil
	}
	if err := checkDims(a, b); err != nil {
		return Attribute{}, err
	}
	v := make([]float64, len(a.v))
	floats.MulTo(v, a.v, b.v)
	return Attribute{v: v}, nil
}

// WeightedPairAverage returns the attribute
// at the given position of the segment
// between start and target,
// i.e., (1-pos)*start + pos*target.
//
// An absent endpoint is treated as a zero vector
// of the size of the other endpoint.
// If both are absent,
// the absent attribute is returned.
// A position outside [0, 1] is logged as a warning,
// but the value is still computed.
func WeightedPairAverage(start, target Attribute, pos float64) (Attribute, error) {
	if pos < 0 || pos > 1 {
		slog.Warn("weighted pair average", "err", fmt.Errorf("%w: position %g outside [0, 1]", ErrInvalidParameter, pos))
	}
	if start.IsAbsent() && target.IsAbsent() {
		slog.Warn("weighted pair average", "err", "both attributes are absent")
		return Attribute{}, nil
	}
	if err := checkDims(start, target); err != nil {
		return Attribute{}, err
	}

	switch pos {
	case 0:
		if start.IsAbsent() {
			return Zero(target.Len())
		}
		return start.Clone(), nil
	case 1:
		if target.IsAbsent() {
			return Zero(start.Len())
		}
		return target.Clone(), nil
	}

	if start.IsAbsent() {
		start, _ = Zero(target.Len())
	}
	if target.IsAbsent() {
		target, _ = Zero(start.Len())
	}
	v := make([]float64, len(start.v))
	floats.AddScaledTo(v, v, 1-pos, start.v)
	floats.AddScaled(v, pos, target.v)
	return Attribute{v: v}, nil
}

// Equal returns true if both attributes
// have the same values,
// within the tolerance.
// Two absent attributes are equal.
func (a Attribute) Equal(o Attribute) bool {
	if a.IsAbsent() || o.IsAbsent() {
		return a.IsAbsent() && o.IsAbsent()
	}
	if len(a.v) != len(o.v) {
		return false
	}
	return floats.EqualFunc(a.v, o.v, func(x, y float64) bool {
		return scalar.EqualWithinAbs(x, y, Tolerance)
	})
}

// String returns the attribute values
// as comma separated values.
// The absent attribute is returned as a dash.
func (a Attribute) String() string {
	if a.IsAbsent() {
		return "-"
	}
	s := make([]string, len(a.v))
	for i, x := range a.v {
		s[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(s, ",")
}
