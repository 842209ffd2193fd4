// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxa_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/split"
	"github.com/js-arias/treedist/taxa"
)

var acer = []string{
	"Acer campbellii",
	"Acer erythranthum",
	"Acer platanoides",
	"Acer saccharinum",
}

func TestIndex(t *testing.T) {
	ix, err := taxa.New(acer)
	if err != nil {
		t.Fatalf("new index: unexpected error: %v", err)
	}
	testIndex(t, "new", ix, acer)

	s, err := ix.Split([]string{"Acer platanoides", "Acer  campbellii"})
	if err != nil {
		t.Fatalf("split: unexpected error: %v", err)
	}
	if want := split.FromIndices(0, 2); !s.Equal(want) {
		t.Errorf("split: got %v, want %v", s, want)
	}
	if got := ix.SplitNames(s); !reflect.DeepEqual(got, []string{acer[0], acer[2]}) {
		t.Errorf("split names: got %v, want %v", got, []string{acer[0], acer[2]})
	}

	if _, err := ix.Split([]string{"Quercus robur"}); !errors.Is(err, geodesic.ErrLeafSetMismatch) {
		t.Errorf("split: got error %v, want %v", err, geodesic.ErrLeafSetMismatch)
	}

	if _, err := taxa.New([]string{"Acer campbellii", "Acer campbellii"}); err == nil {
		t.Errorf("new index: expecting error on repeated names")
	}
}

func TestSorted(t *testing.T) {
	ix, err := taxa.Sorted([]string{acer[3], acer[1], acer[0], acer[2], acer[1]})
	if err != nil {
		t.Fatalf("sorted index: unexpected error: %v", err)
	}
	testIndex(t, "sorted", ix, acer)
}

func TestReadWrite(t *testing.T) {
	ix, _ := taxa.New(acer)

	var buf bytes.Buffer
	if err := ix.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	r, err := taxa.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}
	testIndex(t, "read", r, acer)
}

func TestMatch(t *testing.T) {
	a, _ := taxa.New(acer)
	b, _ := taxa.New(acer)
	if err := taxa.Match(a, b); err != nil {
		t.Errorf("match: unexpected error: %v", err)
	}

	c, _ := taxa.New(acer[:3])
	if err := taxa.Match(a, c); !errors.Is(err, taxa.ErrLeafSetMismatch) {
		t.Errorf("match: got error %v, want %v", err, taxa.ErrLeafSetMismatch)
	}

	d, _ := taxa.New([]string{acer[1], acer[0], acer[2], acer[3]})
	if err := taxa.Match(a, d); !errors.Is(err, geodesic.ErrLeafSetMismatch) {
		t.Errorf("match: got error %v, want %v", err, geodesic.ErrLeafSetMismatch)
	}
}

func testIndex(t testing.TB, name string, ix *taxa.Index, want []string) {
	t.Helper()

	if ix.Len() != len(want) {
		t.Errorf("%s: got %d taxa, want %d", name, ix.Len(), len(want))
	}
	if got := ix.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
	for i, n := range want {
		p, ok := ix.Pos(n)
		if !ok || p != i {
			t.Errorf("%s: taxon %q: got position %d, want %d", name, n, p, i)
		}
	}
}
