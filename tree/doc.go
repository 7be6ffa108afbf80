/*
Package tree compiles declarative node trees into rendered element trees.

A node tree is a plain data description of nested markup: every Node has a
tag, an optional identifier, attributes, a text value and children. A Tree
owns a root node and compiles it into elements of a rendering surface (see
package dom), e.g. for creating an SVG chart:

	t := tree.New(&tree.Node{
		ID:      tree.Text("main"),
		Tag:     "svg",
		Persist: true,
		Options: tree.Options{tree.A("width", 200), tree.A("height", 100)},
		Children: tree.Nodes{
			{Tag: "rect", Options: tree.Options{tree.A("fill", "aliceblue")}},
			series,
		}.Children(),
	})
	t.Compile(nil, wrapper)

Nodes flagged with Persist remember the element they have been compiled to.
This enables replacing the rendered form of a node later on: after changing
the data of a persisted node (e.g., appending new children), Recompile
builds a fresh element subtree and swaps it in for the former one. There is
no diffing involved, the replaced subtree is rebuilt as a whole.

The reverse direction is available as well: Analyze walks an existing
element tree and reconstructs a node tree from it. Identifiers survive the
round trip, as compilation stores them in a reserved attribute (AttributeID).

Locating nodes

Find locates a node either by identifier or by a path from the root, e.g.
"/main/g/circle". A path segment is the identifier of a node, if present,
or its tag otherwise.

Errors

Operations of this package never panic on malformed input. Compiling a node
without a tag results in nothing; failing to find a node results in nothing.
Replacing a node which has not been persisted is a usage error; it is traced
and reported as an error result, leaving the element tree untouched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domtree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("domtree.tree")
}
