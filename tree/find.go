package tree

import (
	"github.com/npillmayer/domtree/maybe"
)

// Find searches a node by selector, depth first, starting at (and including)
// node. A nil node starts the search at the tree's root.
//
// A node matches if its identifier equals the selector (numbers match their
// textual forms), or if the path from the start node to it equals the
// selector. Paths are built from one segment per node, each prefixed with
// "/", where a segment is the node's identifier if it is non-zero, and its tag
// otherwise:
//
//     /main/g/circle
//
// Paths have to start at the start node; partial paths are not supported.
// Rendered children are not searched. The first match in child order wins.
func (t *Tree) Find(selector string, node *Node) maybe.Maybe[*Node] {
	if node == nil {
		node = t.root
	}
	if n := find(selector, node, ""); n != nil {
		return maybe.Just(n)
	}
	return maybe.Nothing[*Node]()
}

func find(selector string, node *Node, path string) *Node {
	if node.ID.Matches(selector) {
		return node
	}
	path += "/" + pathSegment(node)
	if path == selector {
		return node
	}
	for _, ch := range node.Children {
		if ch.Node == nil {
			continue
		}
		if n := find(selector, ch.Node, path); n != nil {
			return n
		}
	}
	return nil
}

func pathSegment(node *Node) string {
	if node.ID.Truthy() {
		return node.ID.String()
	}
	return node.TagName()
}

// Append appends subtree to the children of target and returns target.
//
// target may be a node, a selector (resolved with Find) or another tree, in
// which case its root is the target. If subtree is nil, target itself is
// taken as the subtree and appended to the tree's root; a selector without a
// subtree is an error. A subtree is absent if it is nil, a nil node or a nil
// tree. A sequence of nodes is never absent; an empty one appends nothing.
//
// subtree may be a node, a sequence of nodes, a selector (resolved with Find)
// or another tree, in which case its root node is appended. Inserted nodes
// keep their relative order.
//
// If the target cannot be resolved, nothing is appended and nil is returned.
func (t *Tree) Append(target Ref, subtree Ref) *Node {
	return t.insert(target, subtree, false)
}

// Prepend inserts subtree at the front of the children of target and returns
// target. Arguments are interpreted as for Append.
func (t *Tree) Prepend(target Ref, subtree Ref) *Node {
	return t.insert(target, subtree, true)
}

func (t *Tree) insert(target Ref, subtree Ref, before bool) *Node {
	if isNilRef(subtree) {
		if sel, isSelector := target.(Selector); isSelector {
			tracer().Errorf("append: nothing to append to %q", string(sel))
			return nil
		}
		if !isNilRef(target) {
			target, subtree = t.root, target
		}
	}
	node := t.resolveTarget(target)
	if node == nil {
		tracer().Infof("append: cannot resolve target %v", target)
		return nil
	}
	children := t.resolveSubtree(subtree).Children()
	if before {
		node.Children = append(children, node.Children...)
	} else {
		node.Children = append(node.Children, children...)
	}
	if node.Children == nil {
		node.Children = []Child{}
	}
	return node
}

func (t *Tree) resolveTarget(target Ref) *Node {
	switch r := target.(type) {
	case *Node:
		return r
	case Selector:
		return t.Find(string(r), nil).WithDefault(nil)
	case *Tree:
		if r != nil {
			return r.root
		}
	case Nodes:
		tracer().Errorf("append: a sequence of nodes cannot be a target")
	}
	return nil
}

func (t *Tree) resolveSubtree(subtree Ref) Nodes {
	switch r := subtree.(type) {
	case *Node:
		return Nodes{r}
	case Nodes:
		return r
	case Selector:
		var n *Node
		switch m := t.Find(string(r), nil).Match(); m {
		case m.Just(&n):
			return Nodes{n}
		case m.Nothing():
			tracer().Infof("append: selector %q does not denote a node", string(r))
		}
	case *Tree:
		if r != nil {
			return Nodes{r.root}
		}
	}
	return nil
}

func isNilRef(r Ref) bool {
	switch x := r.(type) {
	case nil:
		return true
	case *Node:
		return x == nil
	case *Tree:
		return x == nil
	}
	return false
}
