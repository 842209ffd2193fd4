// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package split_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/treedist/split"
)

func TestSetOperations(t *testing.T) {
	s := split.New(10)
	if !s.IsEmpty() {
		t.Errorf("new split: got %v, want empty", s)
	}

	s.AddOne(0)
	s.AddOne(1)
	s.AddOne(70)
	if s.IsEmpty() {
		t.Errorf("split: got empty, want %v", s)
	}
	if got := s.Indices(); !reflect.DeepEqual(got, []int{0, 1, 70}) {
		t.Errorf("indices: got %v, want %v", got, []int{0, 1, 70})
	}
	if got := s.Len(); got != 3 {
		t.Errorf("len: got %d, want %d", got, 3)
	}
	if got := s.Max(); got != 70 {
		t.Errorf("max: got %d, want %d", got, 70)
	}

	s.RemoveOne(70)
	if s.Has(70) {
		t.Errorf("split %v: has 70 after removal", s)
	}
	if got := s.String(); got != "{0,1}" {
		t.Errorf("string: got %q, want %q", got, "{0,1}")
	}

	// trailing empty words are ignored
	if !s.Equal(split.FromIndices(1, 0)) {
		t.Errorf("equal: %v and %v should be equal", s, split.FromIndices(0, 1))
	}
	if s.Key() != split.FromIndices(0, 1).Key() {
		t.Errorf("key: got %q, want %q", s.Key(), split.FromIndices(0, 1).Key())
	}
}

func TestRelations(t *testing.T) {
	tests := map[string]struct {
		a, b      split.Split
		contains  bool
		proper    bool
		disjoint  bool
		crosses   bool
		contained bool
	}{
		"crossing": {
			a:       split.FromIndices(0, 1),
			b:       split.FromIndices(0, 2),
			crosses: true,
		},
		"nested": {
			a:        split.FromIndices(0, 1, 2),
			b:        split.FromIndices(0, 1),
			contains: true,
			proper:   true,
		},
		"nested inverse": {
			a:         split.FromIndices(0, 1),
			b:         split.FromIndices(0, 1, 2),
			contained: true,
		},
		"disjoint": {
			a:        split.FromIndices(0, 1),
			b:        split.FromIndices(2, 3),
			disjoint: true,
		},
		"equal": {
			a:         split.FromIndices(3, 4),
			b:         split.FromIndices(3, 4),
			contains:  true,
			contained: true,
		},
		"different words": {
			a:       split.FromIndices(1, 100),
			b:       split.FromIndices(100, 120),
			crosses: true,
		},
	}

	for name, test := range tests {
		if got := test.a.Contains(test.b); got != test.contains {
			t.Errorf("%s: contains: got %v, want %v", name, got, test.contains)
		}
		if got := test.b.Contains(test.a); got != test.contained {
			t.Errorf("%s: contained by: got %v, want %v", name, got, test.contained)
		}
		if got := test.a.ProperlyContains(test.b); got != test.proper {
			t.Errorf("%s: properly contains: got %v, want %v", name, got, test.proper)
		}
		if got := test.a.DisjointFrom(test.b); got != test.disjoint {
			t.Errorf("%s: disjoint: got %v, want %v", name, got, test.disjoint)
		}
		if got := test.a.Crosses(test.b); got != test.crosses {
			t.Errorf("%s: crosses: got %v, want %v", name, got, test.crosses)
		}
		if test.a.Crosses(test.b) != test.b.Crosses(test.a) {
			t.Errorf("%s: crosses is not symmetric", name)
		}
	}
}

// allSplits returns all the subsets of n leaves.
func allSplits(n int) []split.Split {
	var ls []split.Split
	for m := 0; m < 1<<n; m++ {
		s := split.New(n)
		for i := 0; i < n; i++ {
			if m&(1<<i) != 0 {
				s.AddOne(i)
			}
		}
		ls = append(ls, s)
	}
	return ls
}

func TestRelationExclusion(t *testing.T) {
	ls := allSplits(5)
	for _, a := range ls {
		for _, b := range ls {
			if a.Equal(b) {
				if a.Crosses(b) {
					t.Errorf("split %v crosses itself", a)
				}
				continue
			}
			if a.Crosses(b) != b.Crosses(a) {
				t.Errorf("crosses %v %v: not symmetric", a, b)
			}

			// empty split is disjoint from and contained by any split
			if a.IsEmpty() || b.IsEmpty() {
				continue
			}
			n := 0
			for _, ok := range []bool{a.DisjointFrom(b), a.Contains(b), b.Contains(a), a.Crosses(b)} {
				if ok {
					n++
				}
			}
			if n != 1 {
				t.Errorf("splits %v %v: got %d relations, want 1", a, b, n)
			}
		}
	}
}

func TestComplement(t *testing.T) {
	for _, n := range []int{5, 64, 65, 130} {
		s := split.FromIndices(0, 2, 4)
		orig := s.Clone()

		s.Complement(n)
		if s.Len() != n-orig.Len() {
			t.Errorf("complement %d: got %d leaves, want %d", n, s.Len(), n-orig.Len())
		}
		if !s.DisjointFrom(orig) {
			t.Errorf("complement %d: %v shares leaves with %v", n, s, orig)
		}
		if s.Has(n) {
			t.Errorf("complement %d: leaf %d outside universe", n, n)
		}

		s.Complement(n)
		if !s.Equal(orig) {
			t.Errorf("complement %d: got %v, want %v", n, s, orig)
		}
	}
}

func TestIsCompatibleWith(t *testing.T) {
	tree := []split.Split{
		split.FromIndices(0, 1),
		split.FromIndices(0, 1, 2),
		split.FromIndices(3, 4),
	}

	if !split.FromIndices(0, 1).IsCompatibleWith(tree) {
		t.Errorf("split %v: should be compatible with a member", split.FromIndices(0, 1))
	}
	if !split.FromIndices(5, 6).IsCompatibleWith(tree) {
		t.Errorf("split %v: should be compatible", split.FromIndices(5, 6))
	}
	if split.FromIndices(2, 3).IsCompatibleWith(tree) {
		t.Errorf("split %v: should be incompatible", split.FromIndices(2, 3))
	}
}

func TestCloneIndependence(t *testing.T) {
	s := split.FromIndices(1, 2)
	c := s.Clone()
	c.AddOne(3)
	if s.Has(3) {
		t.Errorf("clone: modification of clone changed the original")
	}

	u := s.Union(split.FromIndices(200))
	if !u.Has(200) || !u.Has(1) {
		t.Errorf("union: got %v", u)
	}
	if got := u.Intersect(split.FromIndices(2, 200, 7)); !got.Equal(split.FromIndices(2, 200)) {
		t.Errorf("intersect: got %v, want %v", got, split.FromIndices(2, 200))
	}
}
