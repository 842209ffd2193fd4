// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geodesic_test

import (
	"math"
	"testing"

	"github.com/js-arias/treedist/edge"
	"github.com/js-arias/treedist/geodesic"
)

func TestRatioValue(t *testing.T) {
	tests := map[string]struct {
		r     *geodesic.Ratio
		value float64
		leg   float64
	}{
		"both": {
			r:     geodesic.NewRatio([]*edge.Edge{newEdge(3, 0, 1)}, []*edge.Edge{newEdge(4, 0, 2)}),
			value: 0.75,
			leg:   5,
		},
		"no added": {
			r:     geodesic.NewRatio([]*edge.Edge{newEdge(3, 0, 1)}, nil),
			value: math.Inf(1),
			leg:   3,
		},
		"no removed": {
			r:     geodesic.NewRatio(nil, []*edge.Edge{newEdge(4, 0, 2)}),
			value: 0,
			leg:   4,
		},
		"sets": {
			r:     geodesic.NewRatio([]*edge.Edge{newEdge(3, 0, 1), newEdge(4, 0, 1, 2)}, []*edge.Edge{newEdge(1, 1, 3)}),
			value: 5,
			leg:   math.Sqrt(26),
		},
	}

	for name, test := range tests {
		if got := test.r.Value(); got != test.value && math.Abs(got-test.value) > tol {
			t.Errorf("%s: value: got %g, want %g", name, got, test.value)
		}
		if got := test.r.LegLength(); math.Abs(got-test.leg) > tol {
			t.Errorf("%s: leg length: got %g, want %g", name, got, test.leg)
		}
	}
}

func TestAppendRemove(t *testing.T) {
	s := geodesic.NewSequence()
	r1 := geodesic.NewRatio([]*edge.Edge{newEdge(3, 0, 1)}, []*edge.Edge{newEdge(4, 0, 2)})
	r2 := geodesic.NewRatio([]*edge.Edge{newEdge(0.1, 3, 4)}, []*edge.Edge{newEdge(0.7, 4, 5)})

	s.Append(r1)
	d := s.Distance()
	s.Append(r2)
	if s.Len() != 2 {
		t.Fatalf("append: got %d ratios, want %d", s.Len(), 2)
	}
	if got := s.Remove(); got != r2 {
		t.Errorf("remove: got %v, want %v", got, r2)
	}
	if got := s.Distance(); got != d {
		t.Errorf("remove: got distance %g, want %g", got, d)
	}
	s.Remove()
	if got := s.Remove(); got != nil {
		t.Errorf("remove on empty: got %v, want nil", got)
	}
	if s.Distance() != 0 {
		t.Errorf("empty sequence: got distance %g, want 0", s.Distance())
	}
}

func TestNormalize(t *testing.T) {
	s := geodesic.NewSequence()
	values := []float64{1, 3, 2, 0.5, 4}
	for i, v := range values {
		s.Append(geodesic.NewRatio([]*edge.Edge{newEdge(v, i, 10)}, []*edge.Edge{newEdge(1, i, 11)}))
	}
	s.AddCommon(geodesic.Common{Diff: 2})
	if s.IsNonDescending() {
		t.Fatalf("sequence %v: should be descending", s)
	}

	n := s.Normalize()
	if !n.IsNonDescending() {
		t.Errorf("normalize: got descending sequence\n%v", n)
	}

	// 3, 2, and 0.5 are pooled together.
	if n.Len() != 3 {
		t.Fatalf("normalize: got %d ratios, want %d\n%v", n.Len(), 3, n)
	}
	if got := len(n.At(1).Removed()); got != 3 {
		t.Errorf("normalize: got %d edges in second ratio, want %d", got, 3)
	}
	if math.Abs(n.Distance()-s.Distance()) > tol {
		t.Errorf("normalize: got distance %g, want %g", n.Distance(), s.Distance())
	}
	if n.PathLength() < s.PathLength()-tol {
		t.Errorf("normalize: path length %g shorter than %g", n.PathLength(), s.PathLength())
	}
	if got := n.CommonLength(); got != 2 {
		t.Errorf("normalize: got common length %g, want %g", got, 2.0)
	}

	// the original is not modified
	if s.Len() != len(values) {
		t.Errorf("normalize: original sequence modified")
	}
}
