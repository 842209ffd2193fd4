// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package edge implements tree edges:
// a split with an attribute
// (e.g., a branch length)
// and the provenance of the edge.
package edge

import (
	"fmt"
	"math"

	"github.com/js-arias/treedist/attribute"
	"github.com/js-arias/treedist/split"
)

// An Edge is an internal branch of a tree.
type Edge struct {
	s    split.Split
	attr attribute.Attribute

	// Original is the split of the edge
	// in the source tree
	// (before any relabeling).
	Original split.Split

	// OriginalID is the ID of the edge
	// in the source tree.
	// It is -1 if not assigned.
	OriginalID int
}

// New creates a new edge
// from a split and an attribute.
// The original split is set to a copy of the split.
func New(s split.Split, a attribute.Attribute) *Edge {
	return &Edge{
		s:          s.Clone(),
		attr:       a.Clone(),
		Original:   s.Clone(),
		OriginalID: -1,
	}
}

// Split returns the split of the edge.
func (e *Edge) Split() split.Split {
	return e.s
}

// AsSplit returns a detached copy of the split.
func (e *Edge) AsSplit() split.Split {
	return e.s.Clone()
}

// Attribute returns the attribute of the edge.
func (e *Edge) Attribute() attribute.Attribute {
	return e.attr
}

// SetAttribute sets the attribute of the edge.
func (e *Edge) SetAttribute(a attribute.Attribute) {
	e.attr = a.Clone()
}

// SetSplit changes the split of the edge,
// keeping its provenance.
func (e *Edge) SetSplit(s split.Split) {
	e.s = s.Clone()
}

// Norm returns the norm of the edge attribute.
func (e *Edge) Norm() float64 {
	return e.attr.Norm()
}

// IsZero returns true if the norm of the edge
// is exactly zero.
func (e *Edge) IsZero() bool {
	return e.Norm() == 0
}

// SameBipartition returns true if both edges
// have the same split.
func (e *Edge) SameBipartition(o *Edge) bool {
	return e.s.Equal(o.s)
}

// Equal returns true if both edges
// have the same split
// and the same attribute.
func (e *Edge) Equal(o *Edge) bool {
	return e.s.Equal(o.s) && e.attr.Equal(o.attr)
}

// Contains returns true if the split of e
// contains the split of o.
func (e *Edge) Contains(o *Edge) bool {
	return e.s.Contains(o.s)
}

// Crosses returns true if the split of e
// crosses the split of o.
func (e *Edge) Crosses(o *Edge) bool {
	return e.s.Crosses(o.s)
}

// DisjointFrom returns true if the split of e
// is disjoint from the split of o.
func (e *Edge) DisjointFrom(o *Edge) bool {
	return e.s.DisjointFrom(o.s)
}

// Clone returns a deep copy of the edge.
func (e *Edge) Clone() *Edge {
	return &Edge{
		s:          e.s.Clone(),
		attr:       e.attr.Clone(),
		Original:   e.Original.Clone(),
		OriginalID: e.OriginalID,
	}
}

// String returns the edge
// in the form {0,1}:2.5.
func (e *Edge) String() string {
	return fmt.Sprintf("%v:%v", e.s, e.attr)
}

// Norm returns the norm of a set of edges,
// i.e., the square root of the sum
// of the squared norms of each edge.
func Norm(edges []*Edge) float64 {
	var sum float64
	for _, e := range edges {
		n := e.Norm()
		sum += n * n
	}
	return math.Sqrt(sum)
}

// CloneAll returns a deep copy
// of a list of edges.
func CloneAll(edges []*Edge) []*Edge {
	c := make([]*Edge, len(edges))
	for i, e := range edges {
		c[i] = e.Clone()
	}
	return c
}

// Compatible returns true if no pair of edges
// in the list crosses.
// If there are crossing edges,
// it returns the first crossing pair found.
func Compatible(edges []*Edge) (ok bool, a, b *Edge) {
	for i, e := range edges {
		for _, o := range edges[i+1:] {
			if e.Crosses(o) {
				return false, e, o
			}
		}
	}
	return true, nil, nil
}
