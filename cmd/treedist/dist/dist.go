// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to calculate
// the geodesic distance between all pairs of trees
// in a treedist project.
package dist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/treedist/geodesic"
	"github.com/js-arias/treedist/project"
	"github.com/js-arias/treedist/taxa"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `dist [--terms] [--common] [--limit <number>]
	[-o|--output <file>] [--plot <file>]
	[--cpu <number>] [--v] <project-file>`,
	Short: "calculate geodesic distances between trees",
	Long: `
Command dist reads the trees of a TreeDist project and calculates the
geodesic distance between each pair of trees.

The argument of the command is the name of the project file.

The leaves of the trees are defined by the taxon list of the project. If the
project does not have a taxon list, the terminals of all trees will be used.

By default, only internal edges (i.e., edges that define a cluster with two or
more terminals) are used. Use the flag --terms to include the branches of the
terminals.

By default, two trees can only be compared if both have the same terminals.
If the flag --common is defined, each pair of trees will be restricted to
their shared terminals before calculating the distance.

The flag --limit sets the maximum number of times the legs of each set of
crossing edges are split. By default, legs are split until the geodesic is
found, which takes polynomial time in the number of edges.

The output file is a TSV file with the distance, the path length, and the
number of legs of the geodesic between each pair of trees. If the distance
between a pair of trees can not be calculated, the error is reported in the
row of that pair. By default, the output file is named after the project file
with the suffix '-dist.tab'. Use the flag --output, or -o, to define a
different file name. The mean and standard deviation of the distances will be
printed in the standard output.

If the flag --plot is defined, a histogram of the distances will be saved in
the indicated file.

By default, all available CPUs will be used in the calculations. Set the flag
--cpu to use a different number of CPUs.

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
var numCPU int
var output string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&termsFlag, "terms", false, "")
	c.Flags().BoolVar(&commonFlag, "common", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().IntVar(&limit, "limit", 0, "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.GOMAXPROCS(0), "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) (err error) {
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
	ix, err := p.Terms(tc)
	if err != nil {
		return err
	}

	names := tc.Names()
	if len(names) < 2 {
		return fmt.Errorf("project %q: expecting at least two trees", args[0])
	}
	trees := make([]*taxa.Tree, 0, len(names))
	for _, tn := range names {
		t, err := taxa.FromTimeTree(tc.Tree(tn), ix, termsFlag)
		if err != nil {
			return err
		}
		trees = append(trees, t)
	}

	sv := geodesic.Solver{
		Leaves: ix.Len(),
		Limit:  limit,
		Logger: newLogger(c.Stderr()),
	}
	pairs := distances(sv, trees)

	if output == "" {
		output = args[0] + "-dist.tab"
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := writePairs(f, args[0], pairs); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}

	var ds []float64
	for _, pr := range pairs {
		if pr.err != nil {
			continue
		}
		ds = append(ds, pr.dist)
	}
	if len(ds) == 0 {
		return fmt.Errorf("project %q: no distance calculated", args[0])
	}

	mean, sd := stat.MeanStdDev(ds, nil)
	if len(ds) < 2 {
		sd = 0
	}
	fmt.Fprintf(c.Stdout(), "pairs: %d of %d\n", len(ds), len(pairs))
	fmt.Fprintf(c.Stdout(), "mean: %.6f\n", mean)
	fmt.Fprintf(c.Stdout(), "std. dev.: %.6f\n", sd)

	if plotFile != "" {
		if err := makePlot(ds); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type pair struct {
	a, b *taxa.Tree

	dist float64
	path float64
	legs int
	err  error
}

type pairChanType struct {
	p  *pair
	sv geodesic.Solver
	wg *sync.WaitGroup
}

// Distances calculates the geodesic
// of all pairs of trees.
func distances(sv geodesic.Solver, trees []*taxa.Tree) []*pair {
	var pairs []*pair
	for i, a := range trees {
		for _, b := range trees[i+1:] {
			pairs = append(pairs, &pair{a: a, b: b})
		}
	}

	cpu := numCPU
	if cpu < 1 {
		cpu = runtime.NumCPU()
	}
	pairChan := make(chan pairChanType, cpu*2)
	for range cpu {
		go runPair(pairChan)
	}

	var wg sync.WaitGroup
	for _, pr := range pairs {
		wg.Add(1)
		pairChan <- pairChanType{
			p:  pr,
			sv: sv,
			wg: &wg,
		}
	}
	wg.Wait()
	close(pairChan)

	return pairs
}

func runPair(pc chan pairChanType) {
	for c := range pc {
		seq, err := taxa.Geodesic(c.sv, c.p.a, c.p.b, commonFlag)
		if err != nil {
			c.p.err = err
			c.wg.Done()
			continue
		}
		c.p.dist = seq.Distance()
		c.p.path = seq.PathLength()
		c.p.legs = seq.Len()
		c.wg.Done()
	}
}

func writePairs(w io.Writer, p string, pairs []*pair) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# geodesic distances of trees from project %q\n", p)
	if termsFlag {
		fmt.Fprintf(bw, "# terminal edges included\n")
	}
	if commonFlag {
		fmt.Fprintf(bw, "# trees restricted to shared terminals\n")
	}
	fmt.Fprintf(bw, "# date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(bw, "tree1\ttree2\tdistance\tpath\tlegs\terror\n")
	for _, pr := range pairs {
		if pr.err != nil {
			fmt.Fprintf(bw, "%s\t%s\tNA\tNA\tNA\t%v\n", pr.a.Name, pr.b.Name, pr.err)
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\t%.6f\t%.6f\t%d\t\n", pr.a.Name, pr.b.Name, pr.dist, pr.path, pr.legs)
	}
	return bw.Flush()
}

func makePlot(ds []float64) error {
	p := plot.New()
	p.X.Label.Text = "geodesic distance"
	p.Y.Label.Text = "pairs"

	bins := 20
	if len(ds) < bins {
		bins = len(ds)
	}
	h, err := plotter.NewHist(plotter.Values(ds), bins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
