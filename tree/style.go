package tree

import (
	"github.com/npillmayer/domtree/dom/style"
)

// StyleOptions converts a CSS declaration block into options, one attribute
// per property, with numeric coercion applied to values. Properties with an
// empty value are left out. This is handy for
// sets of presentation attributes shared by a number of nodes:
//
//     font, _ := tree.StyleOptions("font-size: 10; text-anchor: middle")
//     label := &tree.Node{Tag: "text", Value: tree.Text("x"),
//         Options: append(tree.Options{tree.A("x", 5)}, font...)}
func StyleOptions(block string) (Options, error) {
	props, err := style.ParseDeclarations(block)
	if err != nil {
		return nil, err
	}
	opts := make(Options, 0, len(props))
	for _, p := range props {
		if p.Value.IsEmpty() {
			continue
		}
		opts = append(opts, Attr{Key: p.Key, Value: Coerce(p.Value.String())})
	}
	return opts, nil
}
