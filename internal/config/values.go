package config

import (
	"fmt"

	"github.com/magiconair/properties"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// InlineOptions is a mapping of option name to raw value text that keeps
// declaration order. Values are kept exactly as written, so `2`, `"2"` and
// `'2'` all read as "2".
type InlineOptions struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewInlineOptions builds InlineOptions from alternating keys and values.
func NewInlineOptions(kv ...string) *InlineOptions {
	m := orderedmap.New[string, string]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return &InlineOptions{m: m}
}

// Map returns the ordered mapping. It is nil for a nil receiver.
func (o *InlineOptions) Map() *orderedmap.OrderedMap[string, string] {
	if o == nil {
		return nil
	}
	return o.m
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *InlineOptions) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: config must be a mapping of option names to values", node.Line)
	}

	m := orderedmap.New[string, string]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: config option name must be a scalar", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: config option %q must be a scalar value", value.Line, key.Value)
		}
		if _, dup := m.Get(key.Value); dup {
			return fmt.Errorf("line %d: config option %q defined more than once", key.Line, key.Value)
		}
		m.Set(key.Value, scalarText(value))
	}

	o.m = m
	return nil
}

// Properties is a flat string bag. In YAML it is either a mapping or a
// block of Java properties text:
//
//	dev_dependency_properties: |
//	  prettier=2.3.0
//	  @prettier/plugin-php=0.14.0
type Properties map[string]string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		props, err := ParseProperties(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*p = props
		return nil
	case yaml.MappingNode:
		props := make(Properties, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: dev_dependency_properties entries must be scalars", key.Line)
			}
			props[key.Value] = scalarText(value)
		}
		*p = props
		return nil
	default:
		return fmt.Errorf("line %d: dev_dependency_properties must be a mapping or properties text", node.Line)
	}
}

// ParseProperties parses Java properties text, including line continuations
// and escaped separators. ${...} references are kept as written.
func ParseProperties(text string) (Properties, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	parsed, err := loader.LoadBytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("reading properties: %w", err)
	}
	props := Properties(parsed.Map())
	if _, ok := props[""]; ok {
		return nil, fmt.Errorf("property with value %q has no key", props[""])
	}
	return props, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// scalarText returns the text of a scalar as written; null becomes "".
func scalarText(n *yaml.Node) string {
	if n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}
