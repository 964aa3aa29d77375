package theme

import (
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/atheme/internal/errors"
)

// ColorSchemesKey is the top-level key holding the named schemes.
const ColorSchemesKey = "color_schemes"

// Catalog is the set of scheme names declared under color_schemes, in
// document order. It is read-only once parsed.
type Catalog struct {
	names   []string
	schemes map[string]*yaml.Node
}

// ParseCatalog decodes data as YAML and collects the keys of the
// color_schemes mapping. Keys that are not strings are skipped and logged
// at Warn; they never fail the parse.
func ParseCatalog(data []byte, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing YAML"), ErrParse)
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, ErrColorSchemesMissing
	}

	value := resolveAlias(mappingValue(root, ColorSchemesKey))
	switch {
	case value == nil, isNull(value):
		return nil, ErrColorSchemesMissing
	case value.Kind != yaml.MappingNode:
		return nil, errors.Wrapf(ErrColorSchemesNotAMapping, "line %d", value.Line)
	}

	c := &Catalog{schemes: make(map[string]*yaml.Node)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := resolveAlias(value.Content[i])
		if key.Kind != yaml.ScalarNode || key.ShortTag() != "!!str" {
			logger.Warn("skipping color scheme with non-string key",
				"key", describeNode(key), "line", value.Content[i].Line)
			continue
		}
		if _, dup := c.schemes[key.Value]; dup {
			logger.Debug("duplicate color scheme name", "name", key.Value, "line", key.Line)
			continue
		}
		c.names = append(c.names, key.Value)
		c.schemes[key.Value] = value.Content[i+1]
	}

	logger.Debug("parsed color scheme catalog", "count", len(c.names))
	return c, nil
}

// Names returns a copy of the scheme names in document order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of schemes.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether name is a declared scheme.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.schemes[name]
	return ok
}

// Scheme returns the body node of the named scheme with aliases resolved.
func (c *Catalog) Scheme(name string) (*yaml.Node, bool) {
	n, ok := c.schemes[name]
	if !ok {
		return nil, false
	}
	return resolveAlias(n), true
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return resolveAlias(doc.Content[0])
	}
	if doc.Kind == 0 {
		return nil
	}
	return resolveAlias(doc)
}

// mappingValue returns the value node for a string key, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!str" && k.Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func describeNode(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value
	case yaml.SequenceNode:
		return "<sequence>"
	case yaml.MappingNode:
		return "<mapping>"
	default:
		return "<unknown>"
	}
}
