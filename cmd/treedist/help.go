// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(geodesicGuide)
	app.Add(projectsGuide)
	app.Add(termFilesGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
TreeDist uses a project file to keep the references of the files used in the
analysis. This guide explains the structure of the file, but most of the time,
the best way to edit or view this file is by using treedist commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# treedist project files
	dataset	path
	terms	terms.tab
	trees	trees.tab

The valid file types are:

- Taxon list. Defined by the dataset keyword "terms". This file contains the
  ordered list of taxon names that defines the leaves of the trees. If no
  taxon list is defined, the sorted list of the terminals of all trees will
  be used. The recommended way to add a taxon list is by using the command
  'treedist tree terms --save'.
- Time-calibrated trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the command
  'treedist tree add'.
	`,
}

var termFilesGuide = &command.Command{
	Usage: "term-files",
	Short: "about taxon list files",
	Long: `
The taxon list defines the leaves of the trees compared by TreeDist. The
position of a taxon in the list is its index, so two trees can only be
compared if both have the same taxa.

A taxon list file is a tab-delimited file without header. The first column
contains the taxon names; any other column is ignored. Lines starting with '#'
are comments.

Here is an example file:

	# taxa
	Acer campbellii
	Acer erythranthum
	Acer platanoides
	Acer saccharinum

In a TreeDist project, the file that contains the taxon list is indicated with
the "terms" keyword.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In TreeDist, phylogenetic trees must be time-calibrated and stored in a
tab-delimited file. Branch lengths are calculated from the ages of the nodes,
and are used in million years.

The recommended way to interact with time-calibrated trees in a TreeDist
project is by using the commands in "treedist tree".

A tree file is a tab-delimited file with the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	dinosaurs	0	-1	235000000
	dinosaurs	1	0	230000000	Eoraptor lunensis
	dinosaurs	2	0	170000000
	dinosaurs	3	2	145000000	Ceratosaurus nasicornis
	dinosaurs	4	2	71000000	Carnotaurus sastrei

In a TreeDist project, the file that contains the trees is indicated with the
"trees" keyword.
	`,
}

var geodesicGuide = &command.Command{
	Usage: "geodesic",
	Short: "about geodesic distances and ratio sequences",
	Long: `
In TreeDist, a tree is represented by its edges. Each edge is defined by the
cluster of terminals descendant of a node, and its length. Two trees with the
same taxa are points in the tree space of Billera, Holmes and Vogtmann, and
the distance between them is the length of the shortest path (the geodesic)
between both points.

Edges with the same cluster in both trees are common edges, and they
contribute the difference of their lengths. The other edges are changed along
the path: the edges of the first tree are reduced to zero, and the edges of
the second tree are grown from zero. The path is described as a sequence of
legs (or ratios). Each leg removes a set of edges from the first tree and
adds a set of edges of the second tree. The value of a leg is the ratio
between the norm of the removed edges and the norm of the added edges. In a
geodesic, the values of the legs never decrease.

The distance reported is the square root of the sum of the squared lengths of
each leg (the norm of its removed and added edges) and the squared length of
the common edges. The path length is the length of the path when each leg
passes through the tree with both sets of edges collapsed.

Use the command 'treedist path' to print the ratio sequence between two
trees, and the command 'treedist dist' to calculate the distance between all
pairs of trees of a project.
	`,
}
