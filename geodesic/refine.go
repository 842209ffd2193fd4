// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geodesic

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/js-arias/treedist/edge"
)

// relative tolerance used to accept a split of a leg
// and to check the order of the legs.
const coverTolerance = 1e-10

// A refiner builds the legs of a component
// by splitting a leg into two shorter legs
// while a split is possible
// (i.e., the Owen-Provan refinement).
//
// A leg (A, B) is split
// when the bipartite graph of crossing edges
// has a vertex cover C1 ∪ C2
// (C1 from A, C2 from B)
// with ‖C1‖²/‖A‖² + ‖C2‖²/‖B‖² < 1.
// The new legs are (C1, B\C2) and (A\C1, C2),
// in that order.
type refiner struct {
	c *component

	// squared norms of the component edges
	sqA, sqB []float64

	splits int
	limit  int
	logger *slog.Logger
}

// A part is a leg under refinement,
// as indices of the component edges.
type part struct {
	a, b []int
}

func newRefiner(c *component, limit int, logger *slog.Logger) *refiner {
	rf := &refiner{
		c:      c,
		sqA:    make([]float64, len(c.removed)),
		sqB:    make([]float64, len(c.added)),
		limit:  limit,
		logger: logger,
	}
	for i, e := range c.removed {
		n := e.Norm()
		rf.sqA[i] = n * n
	}
	for j, e := range c.added {
		n := e.Norm()
		rf.sqB[j] = n * n
	}
	return rf
}

// run refines the component,
// starting from a single leg with all the edges.
// Legs are kept in a stack,
// so the first part of a split leg
// is resolved before the second one.
func (rf *refiner) run() (*Sequence, error) {
	all := part{
		a: make([]int, len(rf.c.removed)),
		b: make([]int, len(rf.c.added)),
	}
	for i := range all.a {
		all.a[i] = i
	}
	for j := range all.b {
		all.b[j] = j
	}

	st := arraystack.New()
	st.Push(all)

	seq := NewSequence()
	stop := false
	for !st.Empty() {
		v, _ := st.Pop()
		p := v.(part)

		if !stop {
			if first, second, ok := rf.split(p); ok {
				st.Push(second)
				st.Push(first)

				rf.splits++
				if rf.limit > 0 && rf.splits >= rf.limit {
					rf.logger.Warn("geodesic refinement limit reached",
						"limit", rf.limit,
						"removed", len(rf.c.removed),
						"added", len(rf.c.added),
					)
					stop = true
				}
				continue
			}
		}
		seq.Append(rf.ratio(p))
	}

	for i := 1; i < seq.Len(); i++ {
		prev, v := seq.At(i-1).Value(), seq.At(i).Value()
		if prev > v && prev-v > coverTolerance*math.Max(1, v) {
			return nil, fmt.Errorf("leg %d: ratio %g after %g: %w", i, v, prev, ErrNoMinimal)
		}
	}
	return seq, nil
}

func (rf *refiner) ratio(p part) *Ratio {
	removed := make([]*edge.Edge, 0, len(p.a))
	for _, i := range p.a {
		removed = append(removed, rf.c.removed[i])
	}
	added := make([]*edge.Edge, 0, len(p.b))
	for _, j := range p.b {
		added = append(added, rf.c.added[j])
	}
	return NewRatio(removed, added)
}

// split returns the two legs
// that replace a leg,
// or false if the leg can not be split.
func (rf *refiner) split(p part) (first, second part, ok bool) {
	if len(p.a) == 0 || len(p.b) == 0 {
		return part{}, part{}, false
	}

	var na, nb float64
	for _, i := range p.a {
		na += rf.sqA[i]
	}
	for _, j := range p.b {
		nb += rf.sqB[j]
	}
	total := na * nb
	if total == 0 {
		return part{}, part{}, false
	}

	inA, inB, w := rf.cover(p, na, nb)
	if w >= total*(1-coverTolerance) {
		return part{}, part{}, false
	}

	for k, i := range p.a {
		if inA[k] {
			first.a = append(first.a, i)
		} else {
			second.a = append(second.a, i)
		}
	}
	for l, j := range p.b {
		if inB[l] {
			second.b = append(second.b, j)
		} else {
			first.b = append(first.b, j)
		}
	}
	return first, second, true
}

// cover returns the minimum weight vertex cover
// of the crossing graph of a leg,
// and its weight.
// The weight of a start edge is its squared norm
// scaled by nb,
// and the weight of a target edge is its squared norm
// scaled by na,
// so the cover is compared against na*nb.
//
// The cover is the minimum cut of a flow network
// source -> start edges -> target edges -> sink,
// found by shortest augmenting paths.
func (rf *refiner) cover(p part, na, nb float64) (inA, inB []bool, weight float64) {
	m, n := len(p.a), len(p.b)
	src, sink := m+n, m+n+1
	size := m + n + 2

	res := make([][]float64, size)
	for u := range res {
		res[u] = make([]float64, size)
	}
	for k, i := range p.a {
		res[src][k] = rf.sqA[i] * nb
		for l, j := range p.b {
			if rf.c.cross[i][j] {
				res[k][m+l] = math.Inf(1)
			}
		}
	}
	for l, j := range p.b {
		res[m+l][sink] = rf.sqB[j] * na
	}

	prev := make([]int, size)
	queue := make([]int, 0, size)
	for {
		for u := range prev {
			prev[u] = -1
		}
		prev[src] = src
		queue = append(queue[:0], src)
		for len(queue) > 0 && prev[sink] < 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range size {
				if prev[v] < 0 && res[u][v] > 0 {
					prev[v] = u
					queue = append(queue, v)
				}
			}
		}
		if prev[sink] < 0 {
			break
		}

		f := math.Inf(1)
		for v := sink; v != src; v = prev[v] {
			f = math.Min(f, res[prev[v]][v])
		}
		for v := sink; v != src; v = prev[v] {
			u := prev[v]
			res[u][v] -= f
			res[v][u] += f
		}
		weight += f
	}

	// prev marks the nodes reachable from the source
	inA = make([]bool, m)
	for k := range inA {
		inA[k] = prev[k] < 0
	}
	inB = make([]bool, n)
	for l := range inB {
		inB[l] = prev[m+l] >= 0
	}
	return inA, inB, weight
}
