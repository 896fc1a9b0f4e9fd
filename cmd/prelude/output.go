package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-prelude/algebra"
)

// orderedDict is a mapping that encodes its keys in insertion order.
type orderedDict struct {
	keys   []string
	values []any
}

func (d orderedDict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d orderedDict) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, k := range d.keys {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, err
		}
		if err := vn.Encode(d.values[i]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// plain turns a result into values both encoders accept: wrappers are
// exported, Dicts keep their key order and non-string keys are printed.
func plain(v any) any {
	switch x := v.(type) {
	case algebra.Dict:
		d := orderedDict{}
		for _, e := range x.Entries() {
			d.keys = append(d.keys, fmt.Sprint(e.First))
			d.values = append(d.values, plain(e.Second))
		}
		return d
	case algebra.Wrapper:
		return plain(x.Export())
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = plain(item)
		}
		return out
	case map[string]any:
		return plain(algebra.Resolve(x))
	case map[any]any:
		return plain(algebra.Resolve(x))
	}
	return v
}

func write(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
