// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a treedist project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treedist/project"
	"github.com/js-arias/treedist/taxa"
)

var Command = &command.Command{
	Usage: "list [--edges] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a TreeDist project and print the tree names
in the standard output.

The argument of the command is the name of the project file.

If the flag --edges is defined, the number of terminals and the number of
internal edges of each tree will be printed after the tree name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var edgesFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&edgesFlag, "edges", false, "")
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

	var ix *taxa.Index
	if edgesFlag {
		ix, err = p.Terms(tc)
		if err != nil {
			return err
		}
	}

	ls := tc.Names()
	for _, tn := range ls {
		if !edgesFlag {
			fmt.Fprintf(c.Stdout(), "%s\n", tn)
			continue
		}
		t, err := taxa.FromTimeTree(tc.Tree(tn), ix, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", tn, t.Leaves.Len(), len(t.Edges))
	}
	return nil
}
