package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/maybe"
	"github.com/npillmayer/domtree/result"
	"golang.org/x/net/html"
)

// Namespaces for element creation.
const (
	NamespaceHTML = dom.NamespaceHTML
	NamespaceSVG  = dom.NamespaceSVG
)

// ErrNotPersisted is reported when replacing a node which does not carry a
// rendered element.
var ErrNotPersisted = errors.New("node has no stored element")

// ErrEmptyNode is reported when a replacement node compiles into nothing.
var ErrEmptyNode = errors.New("node has no tag")

// ErrDetached is reported when replacing an element which has no parent.
var ErrDetached = errors.New("stored element is not attached to a parent")

// Tree compiles a root node into rendered elements.
type Tree struct {
	xmlns string
	root  *Node
}

// Option is a type to help initializing trees at creation time.
type Option func(*Tree)

// Namespace sets the namespace URI for elements created by a tree.
// The default is NamespaceSVG.
func Namespace(xmlns string) Option {
	return func(t *Tree) {
		t.xmlns = xmlns
	}
}

// New creates a tree for a root node. A nil root is replaced by an empty node.
func New(root *Node, opts ...Option) *Tree {
	t := &Tree{xmlns: NamespaceSVG, root: root}
	for _, opt := range opts {
		opt(t)
	}
	if t.root == nil {
		t.root = &Node{}
	}
	return t
}

// FromElement creates a tree from an already rendered element, reconstructing
// the root node with Analyze.
func FromElement(el *html.Node, opts ...Option) *Tree {
	t := New(nil, opts...)
	if root := t.Analyze(el); root != nil {
		t.root = root
	}
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// XMLNS returns the namespace URI elements are created in.
func (t *Tree) XMLNS() string {
	return t.xmlns
}

// CreateElement creates the element for a single node, without descending
// into its children. If node embeds an already rendered element, that element
// is used instead of creating a new one.
//
// The node's value is assigned as markup content. It is not escaped.
//
// If parent is non-nil, the element is appended to parent's children.
// A node without a tag results in nothing, leaving parent untouched.
func (t *Tree) CreateElement(node *Node, parent *html.Node) maybe.Maybe[*html.Node] {
	if !node.HasTag() {
		return maybe.Nothing[*html.Node]()
	}
	el := node.Embed
	if el == nil {
		el = dom.CreateElement(t.xmlns, node.Tag)
	}
	if node.Value.IsSet() {
		dom.SetContent(el, node.Value.String())
	}
	for _, a := range node.Options {
		if a.IsDataset() {
			for _, d := range a.Data {
				dom.SetData(el, d.Key, d.Value.String())
			}
			continue
		}
		dom.SetAttribute(el, a.Key, a.Value.String())
	}
	if parent != nil {
		dom.AppendChild(parent, el)
	}
	return maybe.Just(el)
}

// Compile compiles node and its descendants into an element subtree and
// returns the subtree's root element. A nil node compiles the tree's root.
// If parent is non-nil, the subtree is appended to it.
//
// The identifier of node, if any, is written into its options as attribute
// AttributeID. Persisted nodes remember their element. Children are compiled
// in order; rendered children are attached as they are, empty children are
// skipped.
//
// Every call creates new elements. A node without a tag results in nothing.
func (t *Tree) Compile(node *Node, parent *html.Node) maybe.Maybe[*html.Node] {
	if node == nil {
		node = t.root
	}
	if !node.HasTag() {
		tracer().Debugf("skipping node without tag")
		return maybe.Nothing[*html.Node]()
	}
	if node.ID.IsSet() {
		node.Options.Set(AttributeID, node.ID)
	}
	el, ok := t.CreateElement(node, parent).Get()
	if !ok {
		return maybe.Nothing[*html.Node]()
	}
	if node.Persist {
		node.rendered = el
	}
	for _, ch := range node.Children {
		switch {
		case ch.Element != nil:
			dom.AppendChild(el, ch.Element)
		case ch.Node != nil:
			t.Compile(ch.Node, el)
		}
	}
	return maybe.Just(el)
}

// Recompile replaces the rendered element of oldNode with a freshly compiled
// element subtree for newNode. A nil oldNode stands for the tree's root, a
// nil newNode for oldNode, which is the usual case: change the data of a
// persisted node, then recompile it.
//
// The new subtree takes the position of the old element within its parent.
// All descendants are rebuilt.
//
// oldNode has to carry a rendered element, i.e. it has to have been compiled
// with Persist set. Otherwise the call has no effect; the error is traced
// and returned.
func (t *Tree) Recompile(oldNode *Node, newNode *Node) result.Result[*html.Node] {
	if oldNode == nil {
		oldNode = t.root
	}
	if newNode == nil {
		newNode = oldNode
	}
	oldElement := oldNode.rendered
	if oldElement == nil {
		tracer().Errorf("trying to recompile node <%s> without stored element", oldNode.TagName())
		return result.Err[*html.Node](fmt.Errorf("recompile <%s>: %w", oldNode.TagName(), ErrNotPersisted))
	}
	parent := oldElement.Parent
	if parent == nil {
		tracer().Errorf("trying to recompile node <%s> with detached element", oldNode.TagName())
		return result.Err[*html.Node](fmt.Errorf("recompile <%s>: %w", oldNode.TagName(), ErrDetached))
	}
	if !newNode.HasTag() {
		tracer().Errorf("trying to replace <%s> with a node without tag", oldNode.TagName())
		return result.Err[*html.Node](fmt.Errorf("recompile <%s>: %w", oldNode.TagName(), ErrEmptyNode))
	}
	// a node embedding its own element compiles into that very element,
	// replacing it is then a no-op
	newElement, _ := t.Compile(newNode, nil).Get()
	if err := dom.ReplaceChild(parent, newElement, oldElement); err != nil {
		tracer().Errorf("cannot replace element <%s>: %v", oldElement.Data, err)
		return result.Err[*html.Node](err)
	}
	tracer().Debugf("replaced <%s> element", newElement.Data)
	return result.Ok(newElement)
}

// Mount compiles the tree's root into the first element of doc which
// matches a CSS selector, e.g. "#chart-wrapper".
func (t *Tree) Mount(doc *html.Node, selector string) result.Result[*html.Node] {
	parent, err := dom.QuerySelector(doc, selector)
	if err != nil {
		return result.Err[*html.Node](err)
	}
	el, ok := t.Compile(nil, parent).Get()
	if !ok {
		return result.Err[*html.Node](ErrEmptyNode)
	}
	return result.Ok(el)
}
