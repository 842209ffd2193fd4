// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geodesic

import (
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/treedist/edge"
)

// A Ratio is a leg of a geodesic path:
// a set of edges removed from the start tree
// that are replaced by a set of edges
// added from the target tree.
//
// A ratio is not modified after creation.
type Ratio struct {
	removed []*edge.Edge
	added   []*edge.Edge

	rNorm float64
	aNorm float64
}

// NewRatio creates a new ratio
// from the removed and added edges.
func NewRatio(removed, added []*edge.Edge) *Ratio {
	r := &Ratio{
		removed: append([]*edge.Edge(nil), removed...),
		added:   append([]*edge.Edge(nil), added...),
	}
	r.rNorm = edge.Norm(r.removed)
	r.aNorm = edge.Norm(r.added)
	return r
}

// Merge returns a new ratio
// with the edges of a and b.
func Merge(a, b *Ratio) *Ratio {
	r := &Ratio{
		removed: make([]*edge.Edge, 0, len(a.removed)+len(b.removed)),
		added:   make([]*edge.Edge, 0, len(a.added)+len(b.added)),
	}
	r.removed = append(r.removed, a.removed...)
	r.removed = append(r.removed, b.removed...)
	r.added = append(r.added, a.added...)
	r.added = append(r.added, b.added...)
	r.rNorm = math.Hypot(a.rNorm, b.rNorm)
	r.aNorm = math.Hypot(a.aNorm, b.aNorm)
	return r
}

// Removed returns the edges removed
// from the start tree.
func (r *Ratio) Removed() []*edge.Edge {
	return append([]*edge.Edge(nil), r.removed...)
}

// Added returns the edges added
// from the target tree.
func (r *Ratio) Added() []*edge.Edge {
	return append([]*edge.Edge(nil), r.added...)
}

// RemovedNorm returns the norm of the removed edges.
func (r *Ratio) RemovedNorm() float64 {
	return r.rNorm
}

// AddedNorm returns the norm of the added edges.
func (r *Ratio) AddedNorm() float64 {
	return r.aNorm
}

// Value returns the ratio value,
// the norm of the removed edges
// divided by the norm of the added edges.
// If the added edges have norm zero,
// the value is +Inf
// (or 0 if the removed edges have also norm zero).
func (r *Ratio) Value() float64 {
	if r.aNorm == 0 {
		if r.rNorm == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return r.rNorm / r.aNorm
}

// LegLength returns the length of the leg.
func (r *Ratio) LegLength() float64 {
	return math.Hypot(r.rNorm, r.aNorm)
}

// coneLength is the length of the path
// that goes through the cone point of the leg.
func (r *Ratio) coneLength() float64 {
	return r.rNorm + r.aNorm
}

// String returns the ratio
// in the form [removed edges] -> [added edges].
func (r *Ratio) String() string {
	var b strings.Builder
	writeEdges(&b, r.removed)
	b.WriteString(" -> ")
	writeEdges(&b, r.added)
	b.WriteString(" (")
	b.WriteString(strconv.FormatFloat(r.Value(), 'g', 6, 64))
	b.WriteString(")")
	return b.String()
}

func writeEdges(b *strings.Builder, edges []*edge.Edge) {
	b.WriteByte('[')
	for i, e := range edges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
}
