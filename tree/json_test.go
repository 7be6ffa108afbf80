package tree

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartJSON = `{
  "_id": "main", "tag": "svg", "sav": true,
  "opt": {"width": 200, "height": 100, "viewBox": "0 0 200 100"},
  "sub": [
    {"tag": "rect", "opt": {"width": 200, "height": 100, "fill": "aliceblue"}},
    {"tag": "text", "val": "x", "opt": {"x": 195, "y": 95, "data": {"axis": "x"}}},
    null,
    {"id": "series", "tag": "g", "persist": true, "children": []}
  ]
}`

func TestParseJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.tree")
	defer teardown()
	//
	root, err := ParseJSON([]byte(chartJSON))
	require.NoError(t, err)
	t.Logf("root =\n%s", root)
	assert.Equal(t, "svg", root.Tag)
	assert.Equal(t, Text("main"), root.ID)
	assert.True(t, root.Persist)
	assert.Equal(t, Options{
		{Key: "width", Value: Number(200)},
		{Key: "height", Value: Number(100)},
		{Key: "viewBox", Value: Text("0 0 200 100")},
	}, root.Options)
	require.Len(t, root.Children, 4)
	assert.True(t, root.Children[2].IsEmpty())
	text := root.Children[1].Node
	assert.Equal(t, Text("x"), text.Value)
	data, ok := text.Options.Get(DataKey)
	require.True(t, ok)
	assert.True(t, data.IsDataset())
	//
	tr := New(root)
	series := tr.Find("/main/series", nil).WithDefault(nil)
	require.NotNil(t, series)
	assert.NotNil(t, series.Children)
	el, ok := tr.Compile(nil, nil).Get()
	require.True(t, ok)
	s, err := dom.RenderString(el)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, `<svg width="200" height="100" viewBox="0 0 200 100" x-id="main">`), s)
	assert.Contains(t, s, `<text x="195" y="95" data-axis="x">x</text>`)
}

func TestMarshalJSON(t *testing.T) {
	root, err := ParseJSON([]byte(chartJSON))
	require.NoError(t, err)
	b, err := json.Marshal(root)
	require.NoError(t, err)
	again, err := ParseJSON(b)
	require.NoError(t, err)
	assert.Equal(t, root.Options, again.Options)
	assert.Len(t, again.Children, 3, "empty children are not described")
	assert.Equal(t, root.Children[1].Node.Options, again.Children[1].Node.Options)
	assert.Contains(t, string(b), `"options":{"width":200,"height":100,"viewBox":"0 0 200 100"}`)
}

func TestParseJSONErrors(t *testing.T) {
	for _, bad := range []string{
		`[1, 2]`,
		`{"tag": 5}`,
		`{"tag": "g", "options": [1]}`,
		`{"tag": "g", "options": {"fill": {"r": 1}}}`,
		`{"tag": "g", "id": [1]}`,
		`{"tag": "g", "children": {}}`,
		`{"tag": "g", "val": "a", "value": "b"}`,
		`{"_id": 1, "id": 2, "tag": "g"}`,
		`{"tag": "g", "sub": [], "children": []}`,
	} {
		_, err := ParseJSON([]byte(bad))
		assert.True(t, errors.Is(err, ErrBadDescription), "expected %s to be rejected, error is %v", bad, err)
	}
}
