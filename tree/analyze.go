package tree

import (
	"strings"

	"github.com/npillmayer/domtree/dom"
	"golang.org/x/net/html"
)

// Analyze reconstructs a node tree from a rendered element tree. It is the
// reverse of Compile.
//
// Attributes become options, in document order, with numeric coercion applied
// to their values (see Coerce). Attribute AttributeID is lifted into the
// node's identifier. Element children are analyzed recursively. The direct
// text content of el, joined by newlines, becomes the node's value.
//
// Every node produced is flagged with Persist and carries its element, thus
// any of them may be recompiled. Analyze returns nil if el is not an element.
func (t *Tree) Analyze(el *html.Node) *Node {
	if !dom.IsElement(el) {
		return nil
	}
	node := &Node{
		Tag:      el.Data,
		Persist:  true,
		Children: []Child{},
		rendered: el,
	}
	for _, a := range dom.Attributes(el) {
		node.Options = append(node.Options, Attr{Key: dom.AttributeName(a), Value: Coerce(a.Val)})
	}
	for _, child := range dom.Children(el) {
		node.Children = append(node.Children, Sub(t.Analyze(child)))
	}
	if id, ok := node.Options.Get(AttributeID); ok {
		node.ID = id.Value
		node.Options.Delete(AttributeID)
	}
	if texts := dom.TextNodes(el); len(texts) > 0 {
		if text := strings.Join(texts, "\n"); text != "" {
			node.Value = Coerce(text)
		}
	}
	tracer().Debugf("analyzed <%s> with %d children", node.Tag, len(node.Children))
	return node
}
