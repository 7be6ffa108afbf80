package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/domtree/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// AttributeID is the name of the attribute which carries a node's
// identifier in the rendered form of the node.
const AttributeID = "x-id"

// DataKey is the reserved option key for dataset entries.
const DataKey = "data"

// --- Attributes ------------------------------------------------------------

// Attr is an attribute of a node. An Attr with key DataKey and non-nil
// Data is a dataset entry: every nested attribute is applied to the element's
// dataset instead of being set as a plain attribute.
type Attr struct {
	Key   string
	Value Scalar
	Data  []Attr
}

// A creates an attribute. v is converted with ScalarOf.
func A(key string, v interface{}) Attr {
	return Attr{Key: key, Value: ScalarOf(v)}
}

// Dataset creates a dataset entry from camel-cased dataset attributes.
//
//     tree.Dataset(tree.A("seriesIndex", 3))
//
// will end up as data-series-index="3".
func Dataset(entries ...Attr) Attr {
	return Attr{Key: DataKey, Data: append([]Attr{}, entries...)}
}

// IsDataset is true for dataset entries.
func (a Attr) IsDataset() bool {
	return a.Key == DataKey && a.Data != nil
}

// Options holds the attributes of a node in the order they will be applied.
type Options []Attr

// Get returns the attribute for key.
func (o Options) Get(key string) (Attr, bool) {
	for _, a := range o {
		if a.Key == key {
			return a, true
		}
	}
	return Attr{}, false
}

// Set sets the value of attribute key, replacing an existing attribute in place
// or appending a new one.
func (o *Options) Set(key string, v Scalar) {
	for i, a := range *o {
		if a.Key == key {
			(*o)[i] = Attr{Key: key, Value: v}
			return
		}
	}
	*o = append(*o, Attr{Key: key, Value: v})
}

// Delete removes attribute key.
func (o *Options) Delete(key string) {
	for i, a := range *o {
		if a.Key == key {
			*o = append((*o)[:i], (*o)[i+1:]...)
			return
		}
	}
}

// --- Nodes -----------------------------------------------------------------

// Child is an entry in the children of a node: either a data node, which will
// be compiled, or an element which has already been rendered and is attached
// as it is. The zero Child is empty and will be skipped.
type Child struct {
	Node    *Node
	Element *html.Node
}

// Sub wraps a node as a child.
func Sub(n *Node) Child {
	return Child{Node: n}
}

// Rendered wraps an already rendered element as a child.
func Rendered(el *html.Node) Child {
	return Child{Element: el}
}

// IsEmpty is true for children with neither a node nor an element.
func (ch Child) IsEmpty() bool {
	return ch.Node == nil && ch.Element == nil
}

// Node is a vertex of a declarative tree.
type Node struct {
	Tag      string     // element kind to create
	Embed    *html.Node // already rendered element to use instead of creating one from Tag
	ID       Scalar     // optional identifier, reflected as attribute AttributeID
	Options  Options    // attributes
	Value    Scalar     // optional content, assigned as markup
	Persist  bool       // remember the rendered element after compilation
	Children []Child

	rendered *html.Node // non-owning; set for persisted nodes
}

// HasTag is false for nodes which will not compile into anything.
func (n *Node) HasTag() bool {
	return n != nil && (n.Tag != "" || n.Embed != nil)
}

// TagName returns the tag of the node, or the tag of the embedded element.
func (n *Node) TagName() string {
	if n.Tag == "" && n.Embed != nil {
		return n.Embed.Data
	}
	return n.Tag
}

// Element returns the rendered element of a persisted node, or nil if the node
// has not been persisted or not yet been compiled.
func (n *Node) Element() *html.Node {
	return n.rendered
}

// Add appends nodes to the children of n and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, ch := range children {
		n.Children = append(n.Children, Sub(ch))
	}
	return n
}

// Nodes returns the data nodes among the children of n, skipping rendered
// elements and empty children.
func (n *Node) Nodes() Nodes {
	var nodes Nodes
	for _, ch := range n.Children {
		if ch.Node != nil {
			nodes = append(nodes, ch.Node)
		}
	}
	return nodes
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	p := tp.New()
	printChildren(p.AddBranch(n.label()), n)
	return p.String()
}

func (n *Node) label() string {
	s := n.TagName()
	if n.ID.IsSet() {
		s += fmt.Sprintf("#%s", n.ID)
	}
	for _, a := range n.Options {
		if a.IsDataset() {
			for _, d := range a.Data {
				s += fmt.Sprintf(" %s=%q", dom.DataAttributeName(d.Key), d.Value)
			}
			continue
		}
		s += fmt.Sprintf(" %s=%q", a.Key, a.Value)
	}
	if n.Value.IsSet() {
		s += fmt.Sprintf(" %q", n.Value)
	}
	if n.Persist {
		s += " (persist)"
	}
	return s
}

func printChildren(p tp.Tree, n *Node) {
	for _, ch := range n.Children {
		switch {
		case ch.Node != nil && len(ch.Node.Children) > 0:
			printChildren(p.AddBranch(ch.Node.label()), ch.Node)
		case ch.Node != nil:
			p.AddNode(ch.Node.label())
		case ch.Element != nil:
			p.AddNode(fmt.Sprintf("<%s> (rendered)", ch.Element.Data))
		}
	}
}

// Nodes is a sequence of nodes.
type Nodes []*Node

// Children wraps nodes as children.
func (ns Nodes) Children() []Child {
	children := make([]Child, len(ns))
	for i, n := range ns {
		children[i] = Sub(n)
	}
	return children
}

// --- References ------------------------------------------------------------

// Ref references nodes as arguments for Append and Prepend. It is one of
//
//     *Node      a single node
//     Nodes      a sequence of nodes
//     Selector   an identifier or path, see Find
//     *Tree      the root node of another tree
type Ref interface {
	isRef()
}

// Selector denotes a node by identifier or by path.
type Selector string

func (*Node) isRef()    {}
func (Nodes) isRef()    {}
func (Selector) isRef() {}
func (*Tree) isRef()    {}
