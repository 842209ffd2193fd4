// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements an ordered list of taxon names
// that defines the leaf universe of a set of trees,
// and the extraction of tree edges
// from time calibrated trees.
package taxa

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/split"
)

// ErrLeafSetMismatch is returned
// when the taxa of two trees are different.
// It is the same error value used by the geodesic package.
var ErrLeafSetMismatch = geodesic.ErrLeafSetMismatch

// An Index is an ordered list of taxon names.
// The position of a name in the list
// is its leaf index.
type Index struct {
	names []string
	pos   map[string]int
}

// New creates a new index
// with the given names,
// in the given order.
// Repeated or empty names are an error.
func New(names []string) (*Index, error) {
	ix := &Index{
		names: make([]string, 0, len(names)),
		pos:   make(map[string]int, len(names)),
	}
	for _, n := range names {
		n = canon(n)
		if n == "" {
			return nil, errors.New("empty taxon name")
		}
		if _, dup := ix.pos[n]; dup {
			return nil, fmt.Errorf("repeated taxon name %q", n)
		}
		ix.pos[n] = len(ix.names)
		ix.names = append(ix.names, n)
	}
	return ix, nil
}

// Sorted creates a new index
// with the given names
// sorted alphabetically.
// Repeated names are ignored.
func Sorted(names []string) (*Index, error) {
	set := make(map[string]bool, len(names))
	ls := make([]string, 0, len(names))
	for _, n := range names {
		n = canon(n)
		if n == "" || set[n] {
			continue
		}
		set[n] = true
		ls = append(ls, n)
	}
	slices.Sort(ls)
	return New(ls)
}

// Len returns the number of taxa in the index.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Names returns the taxon names
// in index order.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Name returns the name of the taxon
// with the given index.
func (ix *Index) Name(i int) string {
	if i < 0 || i >= len(ix.names) {
		return ""
	}
	return ix.names[i]
}

// Pos returns the index of a taxon.
func (ix *Index) Pos(name string) (int, bool) {
	i, ok := ix.pos[canon(name)]
	return i, ok
}

// Split returns a split
// with the indices of the given taxa.
// Unknown taxa are an error.
func (ix *Index) Split(names []string) (split.Split, error) {
	s := split.New(ix.Len())
	for _, n := range names {
		i, ok := ix.Pos(n)
		if !ok {
			return split.Split{}, fmt.Errorf("taxon %q: %w", n, geodesic.ErrLeafSetMismatch)
		}
		s.AddOne(i)
	}
	return s, nil
}

// SplitNames returns the taxon names of a split.
func (ix *Index) SplitNames(s split.Split) []string {
	idx := s.Indices()
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		names = append(names, ix.Name(i))
	}
	return names
}

// Equal returns true if both indices
// have the same names
// in the same order.
func (ix *Index) Equal(o *Index) bool {
	return slices.Equal(ix.names, o.names)
}

// Match returns an error
// if both indices are not equal.
func Match(a, b *Index) error {
	if a.Equal(b) {
		return nil
	}
	for _, n := range a.names {
		if _, ok := b.pos[n]; !ok {
			return fmt.Errorf("taxon %q not in both trees: %w", n, geodesic.ErrLeafSetMismatch)
		}
	}
	for _, n := range b.names {
		if _, ok := a.pos[n]; !ok {
			return fmt.Errorf("taxon %q not in both trees: %w", n, geodesic.ErrLeafSetMismatch)
		}
	}
	return fmt.Errorf("taxa in different order: %w", geodesic.ErrLeafSetMismatch)
}

// Read reads an index from a TSV file.
//
// The TSV must be without header
// and the first column should contain the taxon names.
// Any other columns will be ignored.
//
// Here is an example file
//
//	# taxa
//	Acer campbellii
//	Acer erythranthum
//	Acer platanoides
//	Acer saccharinum
func Read(r io.Reader) (*Index, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	var names []string
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}

		n := canon(row[0])
		if n == "" {
			continue
		}
		names = append(names, n)
	}

	ix, err := New(names)
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// Write writes an index into a TSV file.
func (ix *Index) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxa\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	for _, n := range ix.names {
		if err := tsv.Write([]string{n}); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// Canon returns a taxon name
// in its canonical form.
func canon(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
