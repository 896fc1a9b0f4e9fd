// Package ingest decodes YAML and JSON documents into algebra wrappers.
//
// Mappings become [algebra.Dict] values that keep the order their keys were
// written in, sequences become []any and scalars resolve to int, float64,
// bool, string or nil. JSON is a subset of YAML, so JSON input decodes the
// same way:
//
//	w, err := ingest.DecodeBytes([]byte(`{"b": 2, "a": 1}`))
//	w.(algebra.Dict).Keys() // [b a]
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/seq"
)

var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("ingest: empty document")

	// ErrUnsupportedKey is returned for a mapping key that is not a scalar.
	ErrUnsupportedKey = errors.New("ingest: mapping keys must be scalars")
)

// Decode reads the first document of r.
func Decode(r io.Reader) (algebra.Wrapper, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes the first document of data.
func DecodeBytes(data []byte) (algebra.Wrapper, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return document(&doc)
}

// DecodeAll reads every document of a multi-document stream.
func DecodeAll(r io.Reader) ([]algebra.Wrapper, error) {
	dec := yaml.NewDecoder(r)
	var out []algebra.Wrapper
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: document %d: %w", len(out), err)
		}
		w, err := document(&doc)
		if err != nil {
			return nil, fmt.Errorf("ingest: document %d: %w", len(out), err)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyDocument
	}
	return out, nil
}

func document(doc *yaml.Node) (algebra.Wrapper, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	d := decoder{expanding: make(map[*yaml.Node]bool)}
	v, err := d.value(doc.Content[0])
	if err != nil {
		return nil, err
	}
	return algebra.Resolve(v), nil
}

// decoder tracks the aliases being expanded so a self-referencing anchor
// fails instead of recursing forever.
type decoder struct {
	expanding map[*yaml.Node]bool
}

func (d decoder) alias(n *yaml.Node, expand func(*yaml.Node) (any, error)) (any, error) {
	if d.expanding[n.Alias] {
		return nil, fmt.Errorf("ingest: line %d: alias *%s refers to itself", n.Line, n.Value)
	}
	d.expanding[n.Alias] = true
	defer delete(d.expanding, n.Alias)
	return expand(n.Alias)
}

// value converts a node into the raw value it stands for.
func (d decoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return d.alias(n, d.value)
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	case yaml.MappingNode:
		entries, err := d.mapping(n)
		if err != nil {
			return nil, err
		}
		return algebra.NewDict(entries...), nil
	}
	return scalar(n)
}

// mapping returns the entries of a mapping node in document order. Merge
// keys (<<) contribute the entries of the merged mappings first, so keys
// written out in n take precedence.
func (d decoder) mapping(n *yaml.Node) ([]seq.Pair[any, any], error) {
	var merged, own []seq.Pair[any, any]
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			entries, err := d.mergeSource(v)
			if err != nil {
				return nil, err
			}
			merged = append(merged, entries...)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d", ErrUnsupportedKey, k.Line)
		}
		key, err := scalar(k)
		if err != nil {
			return nil, err
		}
		val, err := d.value(v)
		if err != nil {
			return nil, err
		}
		own = append(own, seq.Pair[any, any]{First: key, Second: val})
	}
	return append(merged, own...), nil
}

func (d decoder) mergeSource(v *yaml.Node) ([]seq.Pair[any, any], error) {
	if v.Kind == yaml.AliasNode {
		entries, err := d.alias(v, func(n *yaml.Node) (any, error) { return d.mergeSource(n) })
		if err != nil {
			return nil, err
		}
		return entries.([]seq.Pair[any, any]), nil
	}
	switch v.Kind {
	case yaml.MappingNode:
		return d.mapping(v)
	case yaml.SequenceNode:
		var out []seq.Pair[any, any]
		for _, c := range v.Content {
			entries, err := d.mergeSource(c)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("ingest: line %d: merge value must be a mapping", v.Line)
}

// scalar resolves a scalar node by its tag. Tags other than null, bool, int
// and float keep the literal text.
func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return n.Value, nil
}
