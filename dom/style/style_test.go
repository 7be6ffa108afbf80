package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.style")
	defer teardown()
	//
	props, err := ParseDeclarations(`font-size: 10; text-anchor: middle; font-family: sans-serif`)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, have %d: %v", len(props), props)
	}
	if props[0].Key != "font-size" || props[0].Value != "10" {
		t.Errorf("expected first property to be font-size=10, is %v", props[0])
	}
	if props[2].Key != "font-family" || props[2].Value != "sans-serif" {
		t.Errorf("expected last property to be font-family=sans-serif, is %v", props[2])
	}
}

func TestParseDeclarationsOverride(t *testing.T) {
	props, err := ParseDeclarations(`stroke: red !important; fill: none; stroke: navy; fill: red`)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, have %d: %v", len(props), props)
	}
	if props[0].Value != "red" || !props[0].Important {
		t.Errorf("expected important stroke to win, is %v", props[0])
	}
	if props[1].Value != "red" {
		t.Errorf("expected later fill to win, is %v", props[1])
	}
}

func TestPropertyEmpty(t *testing.T) {
	if !NullStyle.IsEmpty() || Property("x").IsEmpty() {
		t.Error("IsEmpty reports wrong state")
	}
}
