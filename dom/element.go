package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Namespace URIs for element creation.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// ErrNotAChild is returned if a node to be replaced is not a child of the
// given parent.
var ErrNotAChild = errors.New("node is not a child of parent")

// shortNamespace maps a namespace URI to the representation used by package html.
func shortNamespace(xmlns string) string {
	switch xmlns {
	case NamespaceSVG:
		return "svg"
	case NamespaceMathML:
		return "math"
	}
	return ""
}

// NamespaceURI returns the namespace URI of an element. Elements of an
// HTML parse tree without foreign namespace are in the HTML namespace.
func NamespaceURI(el *html.Node) string {
	switch el.Namespace {
	case "svg":
		return NamespaceSVG
	case "math":
		return NamespaceMathML
	}
	return NamespaceHTML
}

// CreateElement creates a detached element with a given tag name in the
// namespace denoted by xmlns. Unknown namespace URIs create HTML elements.
func CreateElement(xmlns string, tag string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: shortNamespace(xmlns),
	}
}

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// --- Attributes ------------------------------------------------------------

// SetAttribute sets a non-namespaced attribute, replacing an existing one
// with the same name. Attribute order is the order of first setting.
func SetAttribute(el *html.Node, key string, value string) {
	for i, a := range el.Attr {
		if a.Namespace == "" && a.Key == key {
			el.Attr[i].Val = value
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: key, Val: value})
}

// GetAttribute returns the value of a non-namespaced attribute.
func GetAttribute(el *html.Node, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetData sets a dataset entry. As with a browser's element.dataset, the
// name is given in camel case and stored as a data-* attribute in kebab case:
// "seriesIndex" is stored as "data-series-index".
func SetData(el *html.Node, name string, value string) {
	SetAttribute(el, DataAttributeName(name), value)
}

// DataAttributeName converts a dataset name to its attribute name.
func DataAttributeName(name string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AttributeName returns the qualified name of an attribute, i.e. prefixed
// with the namespace if there is one ("xlink:href").
func AttributeName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

// Attributes returns a copy of the attributes of an element, in document order.
func Attributes(el *html.Node) []html.Attribute {
	attrs := make([]html.Attribute, len(el.Attr))
	copy(attrs, el.Attr)
	return attrs
}

// --- Content ---------------------------------------------------------------

// SetContent replaces all children of el with content, interpreted as markup.
// This is the equivalent of assigning innerHTML: content is not escaped, it is
// the caller's responsibility to pass trusted markup only.
func SetContent(el *html.Node, content string) {
	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
	}
	if !strings.ContainsAny(content, "<&") {
		if content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: content})
		}
		return
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), el)
	if err != nil {
		tracer().Errorf("cannot parse content of <%s>, using it as text: %v", el.Data, err)
		el.AppendChild(&html.Node{Type: html.TextNode, Data: content})
		return
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}
}

// TextNodes returns the content of the direct text children of el, in
// document order.
func TextNodes(el *html.Node) []string {
	var texts []string
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			texts = append(texts, c.Data)
		}
	}
	return texts
}

// --- Children --------------------------------------------------------------

// AppendChild attaches child as the last child of parent. If child is
// currently attached elsewhere, it is moved.
func AppendChild(parent *html.Node, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}

// ReplaceChild replaces oldChild, which has to be a child of parent, with
// newChild. newChild takes the position of oldChild; oldChild is detached.
func ReplaceChild(parent *html.Node, newChild *html.Node, oldChild *html.Node) error {
	if oldChild == nil || oldChild.Parent != parent {
		return ErrNotAChild
	}
	if newChild == oldChild {
		return nil
	}
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	parent.InsertBefore(newChild, oldChild)
	parent.RemoveChild(oldChild)
	return nil
}

// Children returns the element children of el, in document order.
func Children(el *html.Node) []*html.Node {
	var children []*html.Node
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// --- Parsing and rendering -------------------------------------------------

// ParseDocument parses an HTML document, which may contain inline SVG.
func ParseDocument(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// Render writes the markup for el and its descendants to w.
func Render(w io.Writer, el *html.Node) error {
	return html.Render(w, el)
}

// RenderString returns the markup for el and its descendants.
func RenderString(el *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, el); err != nil {
		return "", err
	}
	return b.String(), nil
}
