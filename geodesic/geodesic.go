// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package geodesic implements the geodesic distance
// between two phylogenetic trees
// in the Billera-Holmes-Vogtmann tree space,
// and the combinatorial type of the geodesic
// (i.e., its sequence of ratios).
//
// A tree is given as a list of edges
// over a shared leaf universe.
// Edges with the same split in both trees
// are common edges,
// and contribute the norm of their attribute difference.
// The remaining edges are grouped in components
// connected by crossing splits,
// and the legs of each component are found
// by refining a single leg
// with minimum weight vertex covers
// of its crossing edges
// (Owen and Provan 2011, IEEE/ACM TCBB 8:2-13).
package geodesic

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/js-arias/treedist/attribute"
	"github.com/js-arias/treedist/edge"
)

// ErrLeafSetMismatch is returned
// when the trees compared
// do not share the same leaf universe.
var ErrLeafSetMismatch = errors.New("leaf set mismatch")

// ErrIncompatible is returned
// when the edges of a tree cross each other.
var ErrIncompatible = errors.New("incompatible edges in tree")

// ErrNoMinimal is returned
// when the legs of a component
// can not be placed in non-descending order,
// i.e., the crossing relation has no valid minimal leg.
var ErrNoMinimal = errors.New("crossing poset without minimal element")

// A Solver computes geodesics.
// The zero value is ready to use.
type Solver struct {
	// Leaves is the number of leaves
	// of the leaf universe.
	// If it is greater than zero,
	// edges with leaves outside the universe
	// are rejected.
	// The solver never compares the leaf sets
	// of both trees:
	// two trees with different leaves
	// inside the universe are not detected.
	Leaves int

	// Limit is the maximum number of leg splits
	// for each component.
	// If zero,
	// legs are split until the geodesic is found.
	Limit int

	// Logger used for warnings and debug messages.
	// If nil,
	// the default logger is used.
	Logger *slog.Logger
}

// Distance returns the geodesic distance
// between two trees.
//
// It uses a zero Solver,
// which does not know the size of the leaf universe,
// so the caller must check
// that both trees have the same leaves.
func Distance(start, target []*edge.Edge) (float64, error) {
	var s Solver
	return s.Distance(start, target)
}

// Geodesic returns the sequence of ratios
// of the geodesic between two trees.
//
// As with Distance,
// the leaves of the trees are not checked.
func Geodesic(start, target []*edge.Edge) (*Sequence, error) {
	var s Solver
	return s.Geodesic(start, target)
}

// Distance returns the geodesic distance
// between two trees.
func (sv Solver) Distance(start, target []*edge.Edge) (float64, error) {
	seq, err := sv.Geodesic(start, target)
	if err != nil {
		return 0, err
	}
	return seq.Distance(), nil
}

// Geodesic returns the sequence of ratios
// of the geodesic between two trees.
// The returned sequence is normalized
// and it is built with copies of the input edges.
func (sv Solver) Geodesic(start, target []*edge.Edge) (*Sequence, error) {
	logger := sv.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a := edge.CloneAll(start)
	b := edge.CloneAll(target)
	if err := sv.check("start", a); err != nil {
		return nil, err
	}
	if err := sv.check("target", b); err != nil {
		return nil, err
	}

	seq := NewSequence()
	a, b, err := commonEdges(seq, a, b)
	if err != nil {
		return nil, err
	}

	var ratios []*Ratio
	comps := components(a, b)
	splits := 0
	for _, c := range comps {
		if len(c.removed) == 0 || len(c.added) == 0 {
			for _, e := range c.removed {
				ratios = append(ratios, NewRatio([]*edge.Edge{e}, nil))
			}
			for _, e := range c.added {
				ratios = append(ratios, NewRatio(nil, []*edge.Edge{e}))
			}
			continue
		}

		rf := newRefiner(c, sv.Limit, logger)
		legs, err := rf.run()
		if err != nil {
			return nil, fmt.Errorf("component with %d start edges and %d target edges: %w", len(c.removed), len(c.added), err)
		}
		splits += rf.splits
		ratios = append(ratios, legs.ratios...)
	}

	// legs of different components are compatible
	// so they can be ordered freely.
	slices.SortStableFunc(ratios, func(x, y *Ratio) int {
		return cmp.Compare(x.Value(), y.Value())
	})
	for _, r := range ratios {
		seq.Append(r)
	}
	seq = seq.Normalize()

	logger.Debug("geodesic",
		"common", len(seq.common),
		"components", len(comps),
		"splits", splits,
		"legs", seq.Len(),
		"distance", seq.Distance(),
	)
	return seq, nil
}

// check validates the edges of a tree.
func (sv Solver) check(name string, edges []*edge.Edge) error {
	if sv.Leaves > 0 {
		for _, e := range edges {
			if m := e.Split().Max(); m >= sv.Leaves {
				return fmt.Errorf("%s tree: edge %v: leaf %d outside universe of %d leaves: %w", name, e, m, sv.Leaves, ErrLeafSetMismatch)
			}
		}
	}
	if ok, x, y := edge.Compatible(edges); !ok {
		return fmt.Errorf("%s tree: edges %v and %v: %w", name, x, y, ErrIncompatible)
	}
	return nil
}

// commonEdges adds the common edges of a and b
// to the sequence,
// and returns the edges that are not shared.
func commonEdges(seq *Sequence, a, b []*edge.Edge) (ra, rb []*edge.Edge, err error) {
	pos := make(map[string][]int, len(b))
	for j, e := range b {
		k := e.Split().Key()
		pos[k] = append(pos[k], j)
	}

	used := make([]bool, len(b))
	for _, e := range a {
		k := e.Split().Key()
		ls := pos[k]
		if len(ls) == 0 {
			ra = append(ra, e)
			continue
		}
		j := ls[0]
		pos[k] = ls[1:]
		used[j] = true

		d, err := attribute.Difference(e.Attribute(), b[j].Attribute())
		if err != nil {
			return nil, nil, fmt.Errorf("common edge %v: %w", e.Split(), err)
		}
		seq.AddCommon(Common{
			Start:  e,
			Target: b[j],
			Diff:   d.Norm(),
		})
	}
	for j, e := range b {
		if !used[j] {
			rb = append(rb, e)
		}
	}
	return ra, rb, nil
}
