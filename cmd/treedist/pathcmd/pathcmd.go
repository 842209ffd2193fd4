// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathcmd implements a command to print
// the ratio sequence of the geodesic
// between two trees.
package pathcmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/treedist/edge"
	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/project"
	"github.com/js-arias/treedist/taxa"
)

var Command = &command.Command{
	Usage: `path [--terms] [--common] [--limit <number>] [--v]
	<project-file> <tree> <tree>`,
	Short: "print the geodesic path between two trees",
	Long: `
Command path reads two trees from a TreeDist project and prints the sequence
of legs (ratios) of the geodesic between them.

The first argument of the command is the name of the project file. The second
and third arguments are the names of the start and target trees.

For each leg, the output prints its order, the value of the ratio, its length,
and the clusters of the edges removed from the start tree and added from the
target tree. A cluster is printed as the list of its terminals, and clusters
are separated by a semicolon. The edges shared by both trees (common edges)
are printed after the legs, with the difference of their lengths.

By default, only internal edges are used. Use the flag --terms to include the
branches of the terminals. If the flag --common is defined, the trees will be
restricted to their shared terminals. The flag --limit sets the maximum
number of times the legs of each set of crossing edges are split. By default,
legs are split until the geodesic is found.

The flag --v prints debug messages of the geodesic calculation in the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var termsFlag bool
var commonFlag bool
var verbose bool
var limit int

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&termsFlag, "terms", false, "")
	c.Flags().BoolVar(&commonFlag, "common", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().IntVar(&limit, "limit", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 3 {
		return c.UsageError("expecting two tree names")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}
	ix, err := p.Terms(tc)
	if err != nil {
		return err
	}

	var trees [2]*taxa.Tree
	for i, tn := range args[1:3] {
		tt := tc.Tree(tn)
		if tt == nil {
			return fmt.Errorf("tree %q not found in project %q", tn, args[0])
		}
		t, err := taxa.FromTimeTree(tt, ix, termsFlag)
		if err != nil {
			return err
		}
		trees[i] = t
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	sv := geodesic.Solver{
		Leaves: ix.Len(),
		Limit:  limit,
		Logger: slog.New(slog.NewTextHandler(c.Stderr(), &slog.HandlerOptions{Level: level})),
	}

	seq, err := taxa.Geodesic(sv, trees[0], trees[1], commonFlag)
	if err != nil {
		return err
	}

	return writeSequence(c.Stdout(), ix, trees[0].Name, trees[1].Name, seq)
}

func writeSequence(w io.Writer, ix *taxa.Index, start, target string, seq *geodesic.Sequence) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# geodesic from %q to %q\n", start, target)
	fmt.Fprintf(bw, "# distance: %.6f\n", seq.Distance())
	fmt.Fprintf(bw, "# path length: %.6f\n", seq.PathLength())
	fmt.Fprintf(bw, "leg\tvalue\tlength\tremoved\tadded\n")
	for i, r := range seq.Ratios() {
		fmt.Fprintf(bw, "%d\t%.6f\t%.6f\t%s\t%s\n", i+1, r.Value(), r.LegLength(), clusters(ix, r.Removed()), clusters(ix, r.Added()))
	}

	if cm := seq.Common(); len(cm) > 0 {
		fmt.Fprintf(bw, "\n# common edges: %d\n", len(cm))
		fmt.Fprintf(bw, "# common length: %.6f\n", seq.CommonLength())
		fmt.Fprintf(bw, "cluster\tdiff\n")
		for _, e := range cm {
			fmt.Fprintf(bw, "%s\t%.6f\n", clusters(ix, []*edge.Edge{e.Start}), e.Diff)
		}
	}
	return bw.Flush()
}

func clusters(ix *taxa.Index, edges []*edge.Edge) string {
	if len(edges) == 0 {
		return "-"
	}
	ls := make([]string, 0, len(edges))
	for _, e := range edges {
		ls = append(ls, strings.Join(ix.SplitNames(e.Split()), ","))
	}
	return strings.Join(ls, "; ")
}
