package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// DecodeJSON parses JSON bytes into a Value, preserving object key order.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("document: failed to decode JSON: %w", err)
	}
	if dec.More() {
		return Value{}, fmt.Errorf("document: trailing data after top-level JSON value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, val)
			}
			// consume closing '}'
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				arr.Append(val)
			}
			// consume closing ']'
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return arr, nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// DecodeYAML parses YAML bytes into a Value, preserving mapping key order.
// An empty input decodes to null.
func DecodeYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, fmt.Errorf("document: failed to decode YAML: %w", err)
	}

	v, err := fromYAMLNode(&node)
	if err != nil {
		return Value{}, fmt.Errorf("document: failed to decode YAML: %w", err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		// yaml.Unmarshal of empty input leaves the node zero-valued
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return Value{}, fmt.Errorf("mapping key at line %d: %w", n.Content[i].Line, err)
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := NewArray()
		for _, c := range n.Content {
			val, err := fromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			arr.Append(val)
		}
		return arr, nil
	case yaml.ScalarNode:
		var scalar any
		if err := n.Decode(&scalar); err != nil {
			return Value{}, fmt.Errorf("scalar at line %d: %w", n.Line, err)
		}
		return FromAny(scalar), nil
	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
	}
}
