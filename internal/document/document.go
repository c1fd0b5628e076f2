package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// ErrParse marks a document that is not a JSON or YAML mapping at all.
var ErrParse = errors.New("unparseable definition")

type Encoding int

const (
	EncodingYAML Encoding = iota
	EncodingJSON
)

func (e Encoding) String() string {
	if e == EncodingJSON {
		return "json"
	}
	return "yaml"
}

// Document is an API definition as read from its source. It is never
// modified after New returns.
type Document struct {
	Raw      []byte
	Encoding Encoding
	Path     string // empty for literal input

	root *yaml.Node
	err  error
}

func New(raw []byte) *Document {
	root, enc, err := Parse(raw)
	return &Document{Raw: raw, Encoding: enc, root: root, err: err}
}

// NewFromFile is New for content read from path; relative references are
// resolved against the file's directory.
func NewFromFile(path string, raw []byte) *Document {
	doc := New(raw)
	doc.Path = path
	return doc
}

// Sniff reports JSON when the first non-whitespace character opens an object.
func Sniff(raw []byte) Encoding {
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return EncodingJSON
	}
	return EncodingYAML
}

// Parse decodes raw into an ordered tree and returns its root mapping node.
// JSON input must be strictly valid JSON; the tree itself is always built by
// the YAML decoder so key order survives.
func Parse(raw []byte) (*yaml.Node, Encoding, error) {
	enc := Sniff(raw)
	if enc == EncodingJSON && !json.Valid(raw) {
		return nil, enc, fmt.Errorf("%w: invalid json", ErrParse)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, enc, fmt.Errorf("%w: %w", ErrParse, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, enc, fmt.Errorf("%w: empty document", ErrParse)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, enc, fmt.Errorf("%w: root is not an object", ErrParse)
	}

	return root, enc, nil
}

// Root returns the root mapping node, or nil when the document did not parse.
func (d *Document) Root() *yaml.Node {
	return d.root
}

// Err returns the parse failure, if any.
func (d *Document) Err() error {
	return d.err
}

func (d *Document) Parsed() bool {
	return d.root != nil
}

// Field walks nested mapping keys from the root.
func (d *Document) Field(path ...string) (*yaml.Node, bool) {
	node := d.root
	for _, key := range path {
		node = lookup(node, key)
		if node == nil {
			return nil, false
		}
	}
	return node, node != nil
}

// Text returns the scalar text of a nested field. Non-scalar values read as
// empty text but still report presence.
func (d *Document) Text(path ...string) (string, bool) {
	node, ok := d.Field(path...)
	if !ok {
		return "", false
	}
	if node.Kind == yaml.ScalarNode {
		return node.Value, true
	}
	return "", true
}

// JSON returns the document re-encoded as JSON. JSON input is returned as
// is; YAML mapping keys are always written as strings.
func (d *Document) JSON() ([]byte, error) {
	if d.root == nil {
		return nil, d.err
	}
	if d.Encoding == EncodingJSON {
		return d.Raw, nil
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, d.root); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}

func lookup(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
