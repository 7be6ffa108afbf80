package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCompileTagAndAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	//
	node := &Node{
		ID:      Text("main"),
		Tag:     "svg",
		Options: Options{A("width", 200), A("height", 100.5)},
	}
	el, ok := New(node).Compile(nil, nil).Get()
	require.True(t, ok, "expected svg node to compile")
	assert.Equal(t, "svg", el.Data)
	assert.Equal(t, "svg", el.Namespace)
	assert.Equal(t, []html.Attribute{
		{Key: "width", Val: "200"},
		{Key: "height", Val: "100.5"},
		{Key: AttributeID, Val: "main"},
	}, el.Attr)
	assert.Nil(t, node.Element(), "non-persisted node should not keep its element")
}

func TestCompileRendersMarkup(t *testing.T) {
	root := &Node{
		ID:      Text("main"),
		Tag:     "svg",
		Options: Options{A("width", 200)},
	}
	root.Add(
		&Node{Tag: "rect", Options: Options{A("fill", "aliceblue")}},
		&Node{Tag: "text", Value: Text("x"), Options: Options{A("x", 5)}},
	)
	el, ok := New(root).Compile(nil, nil).Get()
	require.True(t, ok)
	s, err := dom.RenderString(el)
	require.NoError(t, err)
	assert.Equal(t,
		`<svg width="200" x-id="main"><rect fill="aliceblue"></rect><text x="5">x</text></svg>`, s)
}

func TestCompilePersist(t *testing.T) {
	g := &Node{Tag: "g", Persist: true}
	root := &Node{Tag: "svg", Persist: true, Children: Nodes{g}.Children()}
	host := dom.CreateElement(dom.NamespaceHTML, "div")
	el, ok := New(root).Compile(nil, host).Get()
	require.True(t, ok)
	assert.Same(t, el, root.Element())
	require.NotNil(t, g.Element())
	assert.Same(t, el, g.Element().Parent)
	assert.Same(t, host, el.Parent)
}

func TestCompileTwiceCreatesNewElements(t *testing.T) {
	tr := New(&Node{Tag: "circle", Persist: true})
	first, _ := tr.Compile(nil, nil).Get()
	second, _ := tr.Compile(nil, nil).Get()
	assert.NotSame(t, first, second)
	assert.Same(t, second, tr.Root().Element())
}

func TestCompileWithoutTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	//
	tr := New(nil)
	assert.True(t, tr.Compile(nil, nil).IsNothing(), "empty root should compile to nothing")
	parent := dom.CreateElement(dom.NamespaceSVG, "g")
	assert.True(t, tr.CreateElement(&Node{}, parent).IsNothing())
	assert.True(t, tr.CreateElement(nil, parent).IsNothing())
	assert.Nil(t, parent.FirstChild, "parent should be untouched")
}

func TestCompileSkipsEmptyChildren(t *testing.T) {
	root := &Node{Tag: "g", Children: []Child{{}, Sub(&Node{Tag: "line"}), Sub(&Node{}), Sub(nil)}}
	el, ok := New(root).Compile(nil, nil).Get()
	require.True(t, ok)
	children := dom.Children(el)
	require.Len(t, children, 1)
	assert.Equal(t, "line", children[0].Data)
}

func TestCompileDataset(t *testing.T) {
	node := &Node{Tag: "g", Options: Options{
		Dataset(A("seriesIndex", 3), A("kind", "line")),
		A("fill", "none"),
	}}
	el, _ := New(node).Compile(nil, nil).Get()
	v, ok := dom.GetAttribute(el, "data-series-index")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	v, _ = dom.GetAttribute(el, "data-kind")
	assert.Equal(t, "line", v)
	_, ok = dom.GetAttribute(el, DataKey)
	assert.False(t, ok, "dataset entry should not show up as plain attribute")
}

func TestCompileEmbedded(t *testing.T) {
	pre := dom.CreateElement(dom.NamespaceSVG, "path")
	marker := dom.CreateElement(dom.NamespaceSVG, "marker")
	root := &Node{Tag: "g", Children: []Child{
		Sub(&Node{Embed: pre, Options: Options{A("d", "M0 0 L5 5")}}),
		Rendered(marker),
	}}
	el, _ := New(root).Compile(nil, nil).Get()
	children := dom.Children(el)
	require.Len(t, children, 2)
	assert.Same(t, pre, children[0])
	assert.Same(t, marker, children[1])
	d, _ := dom.GetAttribute(pre, "d")
	assert.Equal(t, "M0 0 L5 5", d)
}

func TestHTMLNamespace(t *testing.T) {
	tr := New(&Node{Tag: "div", Value: Text("hello")}, Namespace(NamespaceHTML))
	assert.Equal(t, NamespaceHTML, tr.XMLNS())
	el, _ := tr.Compile(nil, nil).Get()
	assert.Equal(t, "", el.Namespace)
	s, err := dom.RenderString(el)
	require.NoError(t, err)
	assert.Equal(t, "<div>hello</div>", s)
}

// --- Recompile -------------------------------------------------------------

func TestRecompileReplacesSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	//
	g := &Node{Tag: "g", Persist: true, Children: []Child{}}
	root := &Node{ID: Text("main"), Tag: "svg", Persist: true, Children: Nodes{
		{Tag: "rect"},
		g,
		{Tag: "text", Value: Text("y")},
	}.Children()}
	tr := New(root)
	svg, ok := tr.Compile(nil, dom.CreateElement(dom.NamespaceHTML, "div")).Get()
	require.True(t, ok)
	oldG := g.Element()
	//
	circle := &Node{Tag: "circle", Options: Options{A("cx", 5), A("cy", 5), A("r", 2)}}
	target := tr.Append(g, circle)
	assert.Same(t, g, target)
	require.Len(t, g.Children, 1)
	assert.Same(t, circle, g.Children[0].Node)
	//
	newG, err := tr.Recompile(g, nil).Unwrap()
	require.NoError(t, err)
	assert.NotSame(t, oldG, newG)
	assert.Nil(t, oldG.Parent, "old element should be detached")
	assert.Same(t, newG, g.Element())
	children := dom.Children(svg)
	require.Len(t, children, 3)
	assert.Same(t, newG, children[1], "new element should take the old position")
	circles := dom.Children(newG)
	require.Len(t, circles, 1)
	assert.Equal(t, "circle", circles[0].Data)
	for key, want := range map[string]string{"cx": "5", "cy": "5", "r": "2"} {
		v, _ := dom.GetAttribute(circles[0], key)
		assert.Equal(t, want, v, "attribute %s", key)
	}
}

func TestRecompileRoot(t *testing.T) {
	tr := New(&Node{Tag: "svg", Persist: true})
	host := dom.CreateElement(dom.NamespaceHTML, "div")
	tr.Compile(nil, host)
	tr.Append(&Node{Tag: "line"}, nil)
	el, err := tr.Recompile(nil, nil).Unwrap()
	require.NoError(t, err)
	assert.Same(t, el, host.FirstChild)
	assert.Nil(t, el.NextSibling)
	assert.Len(t, dom.Children(el), 1)
}

func TestRecompileWithOtherNode(t *testing.T) {
	old := &Node{Tag: "circle", Persist: true}
	tr := New(&Node{Tag: "g", Children: Nodes{old}.Children()})
	g, _ := tr.Compile(nil, nil).Get()
	el, err := tr.Recompile(old, &Node{Tag: "rect"}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "rect", el.Data)
	assert.Same(t, el, g.FirstChild)
}

func TestRecompileWithoutPersistedElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	g := &Node{Tag: "g"}
	tr := New(&Node{Tag: "svg", Children: Nodes{g}.Children()})
	svg, _ := tr.Compile(nil, nil).Get()
	before := svg.FirstChild
	_, err := tr.Recompile(g, nil).Unwrap()
	assert.True(t, errors.Is(err, ErrNotPersisted), "expected ErrNotPersisted, have %v", err)
	assert.Same(t, before, svg.FirstChild, "element tree should be untouched")
}

func TestRecompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	detached := &Node{Tag: "svg", Persist: true}
	tr := New(detached)
	tr.Compile(nil, nil)
	_, err := tr.Recompile(nil, nil).Unwrap()
	assert.True(t, errors.Is(err, ErrDetached), "expected ErrDetached, have %v", err)
	//
	tr.Compile(nil, dom.CreateElement(dom.NamespaceHTML, "div"))
	_, err = tr.Recompile(nil, &Node{}).Unwrap()
	assert.True(t, errors.Is(err, ErrEmptyNode), "expected ErrEmptyNode, have %v", err)
}

func TestMount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	//
	doc, err := dom.ParseDocument(strings.NewReader(
		`<html><body><div id="chart-wrapper"></div></body></html>`))
	require.NoError(t, err)
	tr := New(&Node{Tag: "svg", Persist: true})
	el, err := tr.Mount(doc, "#chart-wrapper").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "div", el.Parent.Data)
	_, err = tr.Mount(doc, "#missing").Unwrap()
	assert.True(t, errors.Is(err, dom.ErrNoMatch))
}
