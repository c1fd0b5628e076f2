// Package refs finds $ref pointers in API definitions and separates the ones
// that point outside the document.
package refs

import (
	"iter"
	"strings"

	"github.com/kolah/oasgate/internal/document"
	"go.yaml.in/yaml/v4"
)

const (
	Key         = "$ref"
	LocalPrefix = "#/"
)

// Pointer is the value found under a $ref key.
type Pointer struct {
	Value  string
	Quoted bool // string scalar; anything else can never be local
	Line   int
	Column int
}

func (p Pointer) Local() bool {
	return p.Quoted && strings.HasPrefix(p.Value, LocalPrefix)
}

func (p Pointer) Remote() bool {
	return !p.Local()
}

func (p Pointer) String() string {
	if p.Quoted {
		return `"` + p.Value + `"`
	}
	return p.Value
}

// All yields every $ref value below node, depth first, in document order.
// The value of a $ref key is not descended into.
func All(node *yaml.Node) iter.Seq[Pointer] {
	return func(yield func(Pointer) bool) {
		walk(node, yield)
	}
}

// Remote yields only the non-local pointers below node.
func Remote(node *yaml.Node) iter.Seq[Pointer] {
	return func(yield func(Pointer) bool) {
		for p := range All(node) {
			if p.Remote() && !yield(p) {
				return
			}
		}
	}
}

// FindRemote parses raw on its own and collects its remote pointers.
func FindRemote(raw []byte) ([]Pointer, error) {
	root, _, err := document.Parse(raw)
	if err != nil {
		return nil, err
	}
	var out []Pointer
	for p := range Remote(root) {
		out = append(out, p)
	}
	return out, nil
}

func walk(node *yaml.Node, yield func(Pointer) bool) bool {
	if node == nil {
		return true
	}
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if !walk(child, yield) {
				return false
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == Key {
				if !yield(pointerOf(value)) {
					return false
				}
				continue
			}
			if !walk(value, yield) {
				return false
			}
		}
	}
	return true
}

func pointerOf(node *yaml.Node) Pointer {
	p := Pointer{Line: node.Line, Column: node.Column}
	if node.Kind == yaml.ScalarNode {
		p.Value = node.Value
		p.Quoted = node.Tag == "!!str"
		return p
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return p
	}
	p.Value = strings.TrimSpace(string(out))
	return p
}
