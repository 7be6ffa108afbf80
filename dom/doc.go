/*
Package dom is the rendering surface for compiled node trees.

Overview

Rendered elements are nodes of an HTML parse tree as produced by package
golang.org/x/net/html. This package offers the handful of operations a
browser DOM would offer to a script: creating namespaced elements, setting
plain and dataset attributes, assigning markup content, appending and
replacing children, and enumerating attributes, element children and text
content. On top of that, it locates mount points in parsed documents by
CSS selector (using cascadia) and renders element trees back to markup.

Namespaces are given as URIs, the way a browser's createElementNS expects
them. Package html represents foreign content with short namespace names
("svg", "math"); the mapping happens in CreateElement.

Elements are not safe for concurrent mutation; clients are expected to
operate on a tree from a single goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domtree.dom'
func tracer() tracing.Trace {
	return tracing.Select("domtree.dom")
}
