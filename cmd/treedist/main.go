// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// TreeDist is a tool to compare time calibrated phylogenetic trees
// using the geodesic distance in tree space.
package main

import (
	"log/slog"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treedist/cmd/treedist/dist"
	"github.com/js-arias/treedist/cmd/treedist/pathcmd"
	"github.com/js-arias/treedist/cmd/treedist/tree"
)

var app = &command.Command{
	Usage: "treedist <command> [<argument>...]",
	Short: "a tool for geodesic distances between phylogenetic trees",
}

func init() {
	app.Add(dist.Command)
	app.Add(pathcmd.Command)
	app.Add(tree.Command)
}

func main() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	slog.SetDefault(slog.New(h))

	app.Main()
}
