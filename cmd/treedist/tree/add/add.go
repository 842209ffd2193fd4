// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a treedist project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treedist/project"
	"github.com/js-arias/treedist/taxa"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>] [--newick <name>]
	<project-file> [<tree-file>...]`,
	Short: "add phylogenetic trees to a TreeDist project",
	Long: `
Command add reads time calibrated trees from one or more files and adds them
to a TreeDist project. If the project file does not exist, it will be created.

If no tree file is given, the trees are read from the standard input. Tree
files are expected to be tab-delimited tree files (see 'treedist help
tree-files'). Use the flag --newick to read newick trees with branch lengths
in million years; the flag value is the name of the trees (a suffix with the
file number is added after the first file).

If the project has a taxon list, every terminal of the added trees must be in
that list.

The trees are stored in the tree file of the project, or in 'trees.tab' if the
project has no tree file. Use the flag --file, or -f, to store all the trees
of the project in a different file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var newickName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&newickName, "newick", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if errors.Is(err, os.ErrNotExist) {
		p = project.New()
		p.SetName(args[0])
	} else if err != nil {
		return err
	}

	tc := timetree.NewCollection()
	if p.Path(project.Trees) != "" {
		if tc, err = p.Trees(); err != nil {
			return err
		}
	}

	var ix *taxa.Index
	if p.Path(project.Terms) != "" {
		if ix, err = p.Terms(nil); err != nil {
			return err
		}
	}

	files := args[1:]
	if len(files) == 0 {
		files = []string{""}
	}
	for i, fn := range files {
		nc, err := readTrees(c.Stdin(), fn, i)
		if err != nil {
			return err
		}
		for _, tn := range nc.Names() {
			t := nc.Tree(tn)
			if ix != nil {
				if _, err := taxa.FromTimeTree(t, ix, false); err != nil {
					return err
				}
			}
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("tree %q: %v", tn, err)
			}
		}
	}

	if treeFile == "" {
		treeFile = p.Path(project.Trees)
	}
	if treeFile == "" {
		treeFile = "trees.tab"
	}
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()
	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}

	p.Add(project.Trees, treeFile)
	return p.Write()
}

// readTrees reads the trees of a file,
// or the standard input if name is empty.
// The number of the file is used
// to name newick trees.
func readTrees(r io.Reader, name string, num int) (*timetree.Collection, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	var c *timetree.Collection
	var err error
	if newickName != "" {
		tn := newickName
		if num > 0 {
			tn = fmt.Sprintf("%s.%d", newickName, num)
		}
		c, err = timetree.Newick(r, tn, 0)
	} else {
		c, err = timetree.ReadTSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}
