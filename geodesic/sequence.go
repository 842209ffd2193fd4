// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geodesic

import (
	"math"
	"strings"

	"github.com/js-arias/treedist/edge"
)

// A Common is a pair of edges
// with the same split
// in the start and target trees.
type Common struct {
	Start  *edge.Edge
	Target *edge.Edge

	// Diff is the norm of the difference
	// between the attributes of both edges.
	Diff float64
}

// A Sequence is an ordered sequence of ratios
// that defines a path between two trees.
type Sequence struct {
	ratios []*Ratio

	// cumulative sums of squared leg lengths,
	// so Remove restores the previous value exactly.
	sumSq []float64

	common   []Common
	commonSq float64
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds a ratio at the end of the sequence.
func (s *Sequence) Append(r *Ratio) {
	prev := 0.0
	if len(s.sumSq) > 0 {
		prev = s.sumSq[len(s.sumSq)-1]
	}
	l := r.LegLength()
	s.ratios = append(s.ratios, r)
	s.sumSq = append(s.sumSq, prev+l*l)
}

// Remove removes the last ratio of the sequence
// and returns it.
// It returns nil if the sequence is empty.
func (s *Sequence) Remove() *Ratio {
	if len(s.ratios) == 0 {
		return nil
	}
	last := len(s.ratios) - 1
	r := s.ratios[last]
	s.ratios[last] = nil
	s.ratios = s.ratios[:last]
	s.sumSq = s.sumSq[:last]
	return r
}

// AddCommon adds a common edge to the sequence.
func (s *Sequence) AddCommon(c Common) {
	s.common = append(s.common, c)
	s.commonSq += c.Diff * c.Diff
}

// Len returns the number of ratios in the sequence.
func (s *Sequence) Len() int {
	return len(s.ratios)
}

// At returns the ratio at the given position.
func (s *Sequence) At(i int) *Ratio {
	return s.ratios[i]
}

// Ratios returns the ratios of the sequence.
func (s *Sequence) Ratios() []*Ratio {
	return append([]*Ratio(nil), s.ratios...)
}

// Common returns the common edges of the sequence.
func (s *Sequence) Common() []Common {
	return append([]Common(nil), s.common...)
}

// CommonLength returns the contribution
// of the common edges to the distance.
func (s *Sequence) CommonLength() float64 {
	return math.Sqrt(s.commonSq)
}

// IsNonDescending returns true if the ratio values
// do not decrease along the sequence.
func (s *Sequence) IsNonDescending() bool {
	for i := 1; i < len(s.ratios); i++ {
		if s.ratios[i-1].Value() > s.ratios[i].Value() {
			return false
		}
	}
	return true
}

// Distance returns the length of the sequence,
// the square root of the sum of the squared leg lengths
// and the squared contribution of the common edges.
func (s *Sequence) Distance() float64 {
	var sum float64
	if len(s.sumSq) > 0 {
		sum = s.sumSq[len(s.sumSq)-1]
	}
	return math.Sqrt(sum + s.commonSq)
}

// PathLength returns the length of the path
// that moves each leg through its cone point,
// combined with the contribution of the common edges.
// For a normalized sequence
// it is the length of the path in tree space
// described by the sequence.
func (s *Sequence) PathLength() float64 {
	sum := s.commonSq
	for _, r := range s.ratios {
		l := r.coneLength()
		sum += l * l
	}
	return math.Sqrt(sum)
}

// Clone returns a copy of the sequence.
// Ratios are shared.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		ratios:   append([]*Ratio(nil), s.ratios...),
		sumSq:    append([]float64(nil), s.sumSq...),
		common:   append([]Common(nil), s.common...),
		commonSq: s.commonSq,
	}
}

// Normalize returns a new sequence
// in which the ratio values are non-descending.
// Adjacent ratios in the wrong order are merged
// until no violation remains
// (i.e., the pool adjacent violators procedure).
func (s *Sequence) Normalize() *Sequence {
	ns := &Sequence{
		common:   append([]Common(nil), s.common...),
		commonSq: s.commonSq,
	}

	pool := make([]*Ratio, 0, len(s.ratios))
	for _, r := range s.ratios {
		cur := r
		for len(pool) > 0 && pool[len(pool)-1].Value() > cur.Value() {
			cur = Merge(pool[len(pool)-1], cur)
			pool = pool[:len(pool)-1]
		}
		pool = append(pool, cur)
	}
	for _, r := range pool {
		ns.Append(r)
	}
	return ns
}

// String returns the ratios of the sequence,
// one per line.
func (s *Sequence) String() string {
	var b strings.Builder
	for _, r := range s.ratios {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
