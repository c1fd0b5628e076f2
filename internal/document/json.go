package document

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.yaml.in/yaml/v4"
)

// writeJSON renders a YAML tree as JSON in document order. Decoding the tree
// into interface values instead would produce map[any]any for keys such as
// unquoted status codes, which encoding/json rejects.
func writeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, node.Content[0])

	case yaml.AliasNode:
		if node.Alias == nil {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, node.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(keyText(node.Content[i]))
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case yaml.ScalarNode:
		return writeScalar(buf, node)

	default:
		buf.WriteString("null")
	}
	return nil
}

// writeScalar keeps booleans, numbers and nulls typed. Anything JSON cannot
// represent, such as .inf, is written as its source text.
func writeScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := node.Decode(&v); err == nil {
			if data, err := json.Marshal(v); err == nil {
				buf.Write(data)
				return nil
			}
		}
	}
	data, err := json.Marshal(node.Value)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

func keyText(node *yaml.Node) string {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return node.Value
	}
	return strings.TrimSpace(string(out))
}
