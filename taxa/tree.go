// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxa

import (
	"fmt"

	"github.com/js-arias/timetree"
	"github.com/js-arias/treedist/attribute"
	"github.com/js-arias/treedist/edge"
	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/split"
)

// MillionYears is the unit of the branch lengths
// of the tree edges.
const MillionYears = 1_000_000

// A Tree is a tree
// represented as a set of edges
// over the leaf universe of an index.
type Tree struct {
	Name string

	// Leaves is the set of terminals of the tree.
	Leaves split.Split

	// Edges is the list of edges of the tree.
	Edges []*edge.Edge

	// Terminals is true if the edges
	// include terminal branches.
	Terminals bool
}

// FromTimeTree returns the edges
// of a time calibrated tree.
// Branch lengths are stored in million years.
//
// Each non-root node defines a cluster,
// the set of terminals descendant of the node.
// If terms is true,
// the branches of terminal nodes are also included.
// Clusters with all the terminals of the tree
// are ignored.
func FromTimeTree(t *timetree.Tree, ix *Index, terms bool) (*Tree, error) {
	nt := &Tree{
		Name:      t.Name(),
		Leaves:    split.New(ix.Len()),
		Terminals: terms,
	}
	for _, tax := range t.Terms() {
		i, ok := ix.Pos(tax)
		if !ok {
			return nil, fmt.Errorf("tree %q: taxon %q: %w", t.Name(), tax, geodesic.ErrLeafSetMismatch)
		}
		nt.Leaves.AddOne(i)
	}

	clusters := make(map[string]*edge.Edge)
	var visitErr error
	var visit func(id int) split.Split
	visit = func(id int) split.Split {
		s := split.New(ix.Len())
		if t.IsTerm(id) {
			i, _ := ix.Pos(t.Taxon(id))
			s.AddOne(i)
		}
		for _, c := range t.Children(id) {
			cs := visit(c)
			for _, i := range cs.Indices() {
				s.AddOne(i)
			}
		}
		if t.IsRoot(id) {
			return s
		}
		if t.IsTerm(id) && !terms {
			return s
		}
		if s.Len() == nt.Leaves.Len() {
			return s
		}

		brLen := float64(t.Age(t.Parent(id))-t.Age(id)) / MillionYears
		if e, ok := clusters[s.Key()]; ok {
			// a node with a single descendant
			// shares the cluster with its child.
			a := e.Attribute().Clone()
			if err := a.Add(attribute.New(brLen)); err != nil && visitErr == nil {
				visitErr = fmt.Errorf("tree %q: node %d: %w", t.Name(), id, err)
			}
			e.SetAttribute(a)
			return s
		}
		e := edge.New(s, attribute.New(brLen))
		e.OriginalID = id
		clusters[s.Key()] = e
		nt.Edges = append(nt.Edges, e)
		return s
	}
	visit(t.Root())
	if visitErr != nil {
		return nil, visitErr
	}

	return nt, nil
}

// Restrict returns a new tree
// with the leaves restricted to the given set.
//
// Edges that collapse into the same cluster
// are merged by adding their attributes.
// Clusters that become empty,
// or include all the kept leaves,
// are removed,
// as well as single leaf clusters
// if the tree does not include terminal branches.
// Merging edges with attributes of different length
// is an error.
func (t *Tree) Restrict(keep split.Split) (*Tree, error) {
	leaves := t.Leaves.Intersect(keep)
	nt := &Tree{
		Name:      t.Name,
		Leaves:    leaves,
		Terminals: t.Terminals,
	}

	clusters := make(map[string]*edge.Edge)
	for _, e := range t.Edges {
		s := e.Split().Intersect(keep)
		n := s.Len()
		if n == 0 || n == leaves.Len() {
			continue
		}
		if n == 1 && !t.Terminals {
			continue
		}

		if o, ok := clusters[s.Key()]; ok {
			a := o.Attribute().Clone()
			if err := a.Add(e.Attribute()); err != nil {
				return nil, fmt.Errorf("tree %q: edges %v and %v: %w", t.Name, o.Original, e.Original, err)
			}
			o.SetAttribute(a)
			continue
		}
		ne := e.Clone()
		ne.SetSplit(s)
		clusters[s.Key()] = ne
		nt.Edges = append(nt.Edges, ne)
	}
	return nt, nil
}

// Geodesic returns the geodesic between two trees.
// The trees must have the same leaves,
// or ErrLeafSetMismatch is returned.
// If restrict is true,
// the trees are restricted to their shared leaves
// before computing the geodesic.
func Geodesic(sv geodesic.Solver, a, b *Tree, restrict bool) (*geodesic.Sequence, error) {
	if !a.Leaves.Equal(b.Leaves) {
		if !restrict {
			return nil, fmt.Errorf("trees %q and %q: %w", a.Name, b.Name, geodesic.ErrLeafSetMismatch)
		}
		keep := a.Leaves.Intersect(b.Leaves)
		if keep.IsEmpty() {
			return nil, fmt.Errorf("trees %q and %q: no shared leaves: %w", a.Name, b.Name, geodesic.ErrLeafSetMismatch)
		}
		var err error
		if a, err = a.Restrict(keep); err != nil {
			return nil, err
		}
		if b, err = b.Restrict(keep); err != nil {
			return nil, err
		}
	}

	seq, err := sv.Geodesic(a.Edges, b.Edges)
	if err != nil {
		return nil, fmt.Errorf("trees %q and %q: %w", a.Name, b.Name, err)
	}
	return seq, nil
}
