package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrBadDescription is returned for JSON node descriptions which cannot be
// decoded into nodes.
var ErrBadDescription = errors.New("malformed node description")

// Node descriptions in JSON use the keys
//
//     tag, id, options, value, persist, children
//
// The short keys _id, opt, val, sav and sub are accepted as synonyms when
// decoding. Options are an object; its key order is the attribute order.
// An options entry "data" holding an object is a dataset entry.
var jsonKeys = map[string]string{
	"tag": "tag", "id": "id", "_id": "id",
	"options": "options", "opt": "options",
	"value": "value", "val": "value",
	"persist": "persist", "sav": "persist",
	"children": "children", "sub": "children",
}

// ParseJSON decodes a JSON node description.
func ParseJSON(data []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	sc, err := decodeScalar(data)
	if err != nil {
		return err
	}
	*s = sc
	return nil
}

// MarshalJSON is part of interface json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case textScalar:
		return json.Marshal(s.text)
	case numberScalar:
		return []byte(formatNumber(s.num)), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDescription, err)
	}
	seen := make(map[string]string, len(fields))
	var err error
	for key, raw := range fields {
		if canonical, known := jsonKeys[key]; known {
			if other, dup := seen[canonical]; dup {
				return fmt.Errorf("%w: keys %q and %q both denote %s", ErrBadDescription, other, key, canonical)
			}
			seen[canonical] = key
		}
		switch jsonKeys[key] {
		case "tag":
			if err = json.Unmarshal(raw, &n.Tag); err != nil {
				return fmt.Errorf("%w: tag: %v", ErrBadDescription, err)
			}
		case "id":
			if n.ID, err = decodeScalar(raw); err != nil {
				return err
			}
		case "value":
			if n.Value, err = decodeScalar(raw); err != nil {
				return err
			}
		case "persist":
			if err = json.Unmarshal(raw, &n.Persist); err != nil {
				return fmt.Errorf("%w: persist: %v", ErrBadDescription, err)
			}
		case "options":
			if n.Options, err = decodeOptions(raw); err != nil {
				return err
			}
		case "children":
			if n.Children, err = decodeChildren(raw); err != nil {
				return err
			}
		default:
			tracer().Debugf("ignoring unknown key %q in node description", key)
		}
	}
	return nil
}

func decodeScalar(raw []byte) (Scalar, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrBadDescription, err)
	}
	switch v := tok.(type) {
	case nil:
		return Scalar{}, nil
	case string:
		return Text(v), nil
	case json.Number:
		x, err := v.Float64()
		if err != nil {
			return Scalar{}, fmt.Errorf("%w: %v", ErrBadDescription, err)
		}
		return Number(x), nil
	case bool:
		return Text(strconv.FormatBool(v)), nil
	}
	return Scalar{}, fmt.Errorf("%w: expected string or number, have %s", ErrBadDescription, raw)
}

func decodeOptions(raw []byte) (Options, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDescription, err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: options have to be an object", ErrBadDescription)
	}
	var opts Options
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDescription, err)
		}
		key := tok.(string) // object keys are always strings
		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: option %s: %v", ErrBadDescription, key, err)
		}
		trimmed := bytes.TrimSpace(value)
		if key == DataKey && len(trimmed) > 0 && trimmed[0] == '{' {
			entries, err := decodeOptions(trimmed)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Dataset(entries...))
			continue
		}
		sc, err := decodeScalar(trimmed)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", key, err)
		}
		if !sc.IsSet() {
			continue
		}
		opts = append(opts, Attr{Key: key, Value: sc})
	}
	return opts, nil
}

func decodeChildren(raw []byte) ([]Child, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: children: %v", ErrBadDescription, err)
	}
	children := make([]Child, 0, len(items))
	for _, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			children = append(children, Child{})
			continue
		}
		n := &Node{}
		if err := n.UnmarshalJSON(item); err != nil {
			return nil, err
		}
		children = append(children, Sub(n))
	}
	return children, nil
}

// MarshalJSON is part of interface json.Marshaler. Rendered children cannot be
// described and are left out; embedded elements are described by their tag.
func (n *Node) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"tag":`)
	tag, _ := json.Marshal(n.TagName())
	b.Write(tag)
	if n.ID.IsSet() {
		b.WriteString(`,"id":`)
		id, _ := n.ID.MarshalJSON()
		b.Write(id)
	}
	if len(n.Options) > 0 {
		b.WriteString(`,"options":`)
		encodeOptions(&b, n.Options)
	}
	if n.Value.IsSet() {
		b.WriteString(`,"value":`)
		v, _ := n.Value.MarshalJSON()
		b.Write(v)
	}
	if n.Persist {
		b.WriteString(`,"persist":true`)
	}
	if len(n.Children) > 0 {
		b.WriteString(`,"children":[`)
		first := true
		for _, ch := range n.Children {
			if ch.Node == nil {
				continue
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			sub, err := ch.Node.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(sub)
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func encodeOptions(b *bytes.Buffer, opts []Attr) {
	b.WriteByte('{')
	for i, a := range opts {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(a.Key)
		b.Write(key)
		b.WriteByte(':')
		if a.IsDataset() {
			encodeOptions(b, a.Data)
			continue
		}
		v, _ := a.Value.MarshalJSON()
		b.Write(v)
	}
	b.WriteByte('}')
}
