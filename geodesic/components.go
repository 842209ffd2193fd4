// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geodesic

import "github.com/js-arias/treedist/edge"

// unionFind is a disjoint-set structure
// with path compression
// and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = -1
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
}

// A component is a set of edges
// from the start and target trees
// connected by crossing relations.
type component struct {
	removed []*edge.Edge
	added   []*edge.Edge

	// cross[i][j] is true
	// if removed[i] crosses added[j].
	cross [][]bool
}

// components splits the edges
// into sets connected by crossing pairs.
// Components are returned in order
// of their first start edge
// (or target edge, if they have no start edges).
func components(a, b []*edge.Edge) []*component {
	cross := make([][]bool, len(a))
	uf := newUnionFind(len(a) + len(b))
	for i, ea := range a {
		cross[i] = make([]bool, len(b))
		for j, eb := range b {
			if ea.Crosses(eb) {
				cross[i][j] = true
				uf.union(i, len(a)+j)
			}
		}
	}

	pos := make(map[int]int)
	var comps []*component
	ia := make(map[int][]int)
	ib := make(map[int][]int)
	for x := 0; x < len(a)+len(b); x++ {
		root := uf.find(x)
		if _, ok := pos[root]; !ok {
			pos[root] = len(comps)
			comps = append(comps, &component{})
		}
		if x < len(a) {
			ia[root] = append(ia[root], x)
		} else {
			ib[root] = append(ib[root], x-len(a))
		}
	}

	for root, p := range pos {
		c := comps[p]
		for _, i := range ia[root] {
			c.removed = append(c.removed, a[i])
		}
		for _, j := range ib[root] {
			c.added = append(c.added, b[j])
		}
		c.cross = make([][]bool, len(ia[root]))
		for k, i := range ia[root] {
			c.cross[k] = make([]bool, len(ib[root]))
			for l, j := range ib[root] {
				c.cross[k][l] = cross[i][j]
			}
		}
	}
	return comps
}
