// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the trees of a treedist project.
package terms

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treedist/project"
	"github.com/js-arias/treedist/taxa"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tree <tree-name>] [--save <file>] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the trees from a TreeDist project and print the name of
the terminals in the standard output.

The argument of the command is the name of the project file.

By default all terminals will be printed. If the flag --tree is set, only the
terminals of the indicated tree will be printed.

If the flag --save is defined, the list of terminals will be saved in the
indicated file, and used as the taxon list of the project. The order of the
list defines the index of each taxon.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var saveFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&saveFile, "save", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := makeTermList(tc)
	if saveFile != "" {
		if err := writeTerms(ls); err != nil {
			return err
		}
		p.Add(project.Terms, saveFile)
		if err := p.Write(); err != nil {
			return err
		}
	}

	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

func makeTermList(c *timetree.Collection) []string {
	var ls []string
	if treeName != "" {
		ls = append(ls, treeName)
	} else {
		ls = c.Names()
	}

	terms := make(map[string]bool)
	for _, tn := range ls {
		t := c.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	return termList
}

func writeTerms(ls []string) (err error) {
	ix, err := taxa.New(ls)
	if err != nil {
		return err
	}

	f, err := os.Create(saveFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := ix.Write(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", saveFile, err)
	}
	return nil
}
