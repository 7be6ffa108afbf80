/*
Package style reads CSS declaration blocks.

SVG presentation attributes mirror CSS properties: "font-size: 10;
text-anchor: middle" may be given as attributes font-size="10" and
text-anchor="middle". Clients sharing a set of attributes between a number of
nodes often find it convenient to write them down as a declaration block.
Parsing is done by douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("domtree.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     stroke: navy
//
// a property value of "navy" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == NullStyle
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

// ParseDeclarations parses a declaration block, without surrounding braces,
// into properties. Order is preserved; a property declared more than once
// keeps its position of first declaration and its last value, unless an
// earlier declaration is marked as important.
func ParseDeclarations(block string) ([]KeyValue, error) {
	decls, err := parser.ParseDeclarations(block)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	props := make([]KeyValue, 0, len(decls))
	index := make(map[string]int, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		kv := KeyValue{Key: key, Value: Property(strings.TrimSpace(d.Value)), Important: d.Important}
		if i, ok := index[key]; ok {
			if props[i].Important && !kv.Important {
				continue
			}
			props[i] = kv
			continue
		}
		index[key] = len(props)
		props = append(props, kv)
	}
	tracer().Debugf("parsed %d style properties", len(props))
	return props, nil
}
