// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package edge_test

import (
	"math"
	"testing"

	"github.com/js-arias/treedist/attribute"
	"github.com/js-arias/treedist/edge"
	"github.com/js-arias/treedist/split"
)

func TestEdge(t *testing.T) {
	e := edge.New(split.FromIndices(0, 1), attribute.New(3, 4))
	if e.OriginalID != -1 {
		t.Errorf("original ID: got %d, want %d", e.OriginalID, -1)
	}
	if got := e.Norm(); math.Abs(got-5) > attribute.Tolerance {
		t.Errorf("norm: got %g, want %g", got, 5.0)
	}
	if e.IsZero() {
		t.Errorf("edge %v: should not be zero", e)
	}
	if got := e.String(); got != "{0,1}:3,4" {
		t.Errorf("string: got %q, want %q", got, "{0,1}:3,4")
	}

	z := edge.New(split.FromIndices(0, 1), attribute.New(0))
	if !z.IsZero() {
		t.Errorf("edge %v: should be zero", z)
	}
	if !z.SameBipartition(e) {
		t.Errorf("edges %v %v: should have the same bipartition", z, e)
	}
	if z.Equal(e) {
		t.Errorf("edges %v %v: should be different", z, e)
	}

	s := e.AsSplit()
	s.AddOne(5)
	if e.Split().Has(5) {
		t.Errorf("as split: modification changed the edge")
	}
}

func TestClone(t *testing.T) {
	e := edge.New(split.FromIndices(0, 1), attribute.New(2))
	e.OriginalID = 7

	c := e.Clone()
	if !c.Equal(e) || c.OriginalID != 7 || !c.Original.Equal(e.Original) {
		t.Fatalf("clone: got %v, want %v", c, e)
	}

	s := c.Split()
	s.AddOne(3)
	a := c.Attribute()
	a.ScaleBy(10)
	c.Original.AddOne(9)

	if e.Split().Has(3) {
		t.Errorf("clone: split is shared")
	}
	if e.Original.Has(9) {
		t.Errorf("clone: original split is shared")
	}
	if want := attribute.New(2); !e.Attribute().Equal(want) {
		t.Errorf("clone: attribute is shared: got %v, want %v", e.Attribute(), want)
	}
}

func TestNormAndCompatible(t *testing.T) {
	edges := []*edge.Edge{
		edge.New(split.FromIndices(0, 1), attribute.New(3)),
		edge.New(split.FromIndices(0, 1, 2), attribute.New(4)),
	}
	if got := edge.Norm(edges); math.Abs(got-5) > attribute.Tolerance {
		t.Errorf("norm: got %g, want %g", got, 5.0)
	}
	if ok, _, _ := edge.Compatible(edges); !ok {
		t.Errorf("compatible: edges should be compatible")
	}

	edges = append(edges, edge.New(split.FromIndices(1, 3), attribute.New(1)))
	ok, a, b := edge.Compatible(edges)
	if ok {
		t.Fatalf("compatible: edges should be incompatible")
	}
	if !a.Crosses(b) {
		t.Errorf("compatible: got non crossing pair %v %v", a, b)
	}
}
