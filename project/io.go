// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/timetree"
	"github.com/js-arias/treedist/taxa"
)

// Terms reads the taxon list
// as defined in a project.
// If no taxon list is defined,
// it returns a sorted list
// with the terminals of the given trees.
func (p *Project) Terms(tc *timetree.Collection) (*taxa.Index, error) {
	name := p.Path(Terms)
	if name == "" {
		if tc == nil {
			return nil, fmt.Errorf("terms not defined in project %q", p.name)
		}
		var names []string
		for _, tn := range tc.Names() {
			names = append(names, tc.Tree(tn).Terms()...)
		}
		return taxa.Sorted(names)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ix, err := taxa.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ix, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
