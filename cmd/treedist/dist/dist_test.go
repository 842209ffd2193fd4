// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dist

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/js-arias/treedist/attribute"
	"github.com/js-arias/treedist/edge"
	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/split"
	"github.com/js-arias/treedist/taxa"
)

func newTree(name string, leaves split.Split, edges ...*edge.Edge) *taxa.Tree {
	return &taxa.Tree{
		Name:   name,
		Leaves: leaves,
		Edges:  edges,
	}
}

func TestDistances(t *testing.T) {
	leaves := split.FromIndices(0, 1, 2, 3)
	trees := []*taxa.Tree{
		newTree("one", leaves, edge.New(split.FromIndices(0, 1), attribute.New(3))),
		newTree("two", leaves, edge.New(split.FromIndices(1, 2), attribute.New(4))),
		newTree("three", leaves, edge.New(split.FromIndices(0, 1), attribute.New(1))),
		newTree("other", split.FromIndices(0, 1, 2), edge.New(split.FromIndices(0, 1), attribute.New(1))),
	}

	numCPU = 2
	commonFlag = false
	pairs := distances(geodesic.Solver{Leaves: 4}, trees)
	if len(pairs) != 6 {
		t.Fatalf("pairs: got %d, want %d", len(pairs), 6)
	}

	want := map[string]float64{
		"one two":   5,
		"one three": 2,
		"two three": math.Sqrt(17),
	}
	for _, pr := range pairs {
		k := pr.a.Name + " " + pr.b.Name
		if pr.b.Name == "other" {
			if !errors.Is(pr.err, geodesic.ErrLeafSetMismatch) {
				t.Errorf("%s: got error %v, want %v", k, pr.err, geodesic.ErrLeafSetMismatch)
			}
			continue
		}
		if pr.err != nil {
			t.Errorf("%s: unexpected error: %v", k, pr.err)
			continue
		}
		if math.Abs(pr.dist-want[k]) > 1e-6 {
			t.Errorf("%s: got distance %g, want %g", k, pr.dist, want[k])
		}
	}

	var buf bytes.Buffer
	if err := writePairs(&buf, "project.tab", pairs); err != nil {
		t.Fatalf("write: unexpected error: %v", err)
	}
	if got := strings.Count(buf.String(), "\tNA\tNA\tNA\t"); got != 3 {
		t.Errorf("write: got %d rows with errors, want %d:\n%s", got, 3, buf.String())
	}
}
