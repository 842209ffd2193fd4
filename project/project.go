// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of treedist project files.
//
// A treedist project is a tab-delimited file (TSV)
// with the paths of the data files
// used by treedist commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the taxon list
	// that defines the leaf universe
	// of the trees.
	Terms Dataset = "terms"

	// File for phylogenetic trees.
	Trees Dataset = "trees"
)

var datasets = map[Dataset]bool{
	Terms: true,
	Trees: true,
}

// A Project is a set of dataset files.
type Project struct {
	name  string
	files map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{files: make(map[Dataset]string)}
}

// Read reads a project file.
//
// The file is a TSV with the fields
// "dataset" (the kind of file)
// and "path" (the path of the file).
// Valid datasets are "terms" and "trees".
// Here is an example file:
//
//	# treedist project files
//	dataset	path
//	terms	terms.tab
//	trees	trees.tab
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	setCol, pathCol := -1, -1
	for i, h := range head {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "dataset":
			setCol = i
		case "path":
			pathCol = i
		}
	}
	if setCol < 0 {
		return nil, errors.New(`expecting field "dataset"`)
	}
	if pathCol < 0 {
		return nil, errors.New(`expecting field "path"`)
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		set := Dataset(strings.ToLower(strings.TrimSpace(row[setCol])))
		if !datasets[set] {
			return nil, fmt.Errorf("on row %d: unknown dataset %q", ln, set)
		}
		p.files[set] = strings.TrimSpace(row[pathCol])
	}
	return p, nil
}

// Add sets the path of a dataset
// and returns the previous path.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.files[set]
	if path == "" {
		delete(p.files, set)
	} else {
		p.files[set] = path
	}
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.files[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	sets := make([]Dataset, 0, len(p.files))
	for s := range p.files {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project
// into its project file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# treedist project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	tsv.Write([]string{"dataset", "path"})
	for _, s := range p.Sets() {
		tsv.Write([]string{string(s), p.files[s]})
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return bw.Flush()
}
