package theme

import (
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/atheme/internal/errors"
)

// ExportTOML renders the named scheme as an Alacritty TOML [colors] table,
// the form newer Alacritty releases import from theme files.
func (c *Catalog) ExportTOML(name string) ([]byte, error) {
	body, ok := c.Scheme(name)
	if !ok {
		return nil, errors.Wrapf(ErrColorSchemeNotAvailable, "%q", name)
	}

	colors, err := nodeValue(body)
	if err != nil {
		return nil, errors.Wrapf(err, "converting scheme %q", name)
	}

	out, err := toml.Marshal(map[string]any{"colors": colors})
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling scheme %q", name)
	}
	return out, nil
}

// nodeValue converts a YAML node into plain Go values. Color strings such as
// 0x282828 stay strings even when YAML would resolve them as integers.
func nodeValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		if err := mergeMapping(m, n); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.ScalarNode:
		return scalarValue(n), nil
	default:
		return nil, errors.Newf("unsupported YAML node at line %d", n.Line)
	}
}

// mergeMapping copies the pairs of n into m. Merge keys (<<) are applied
// first so explicit keys win.
func mergeMapping(m map[string]any, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].ShortTag() != "!!merge" {
			continue
		}
		src := resolveAlias(n.Content[i+1])
		sources := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			sources = src.Content
		}
		for _, s := range sources {
			s = resolveAlias(s)
			if s.Kind != yaml.MappingNode {
				return errors.Newf("merge value at line %d is not a mapping", s.Line)
			}
			if err := mergeMapping(m, s); err != nil {
				return err
			}
		}
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolveAlias(n.Content[i])
		if k.ShortTag() == "!!merge" {
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return errors.Newf("non-scalar key at line %d", k.Line)
		}
		v, err := nodeValue(n.Content[i+1])
		if err != nil {
			return err
		}
		m[k.Value] = v
	}
	return nil
}

func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!bool":
		if b, err := strconv.ParseBool(strings.ToLower(n.Value)); err == nil {
			return b
		}
	case "!!int":
		if !strings.HasPrefix(strings.ToLower(strings.TrimLeft(n.Value, "+-")), "0x") {
			if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
				return i
			}
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	case "!!null":
		return ""
	}
	return n.Value
}
