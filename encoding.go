package spath

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = Path{}
	_ encoding.TextUnmarshaler = (*Path)(nil)
	_ yaml.Marshaler           = Path{}
	_ yaml.Unmarshaler         = (*Path)(nil)
)

// MarshalText returns the path joined with its delimiter.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses text with the current delimiter of p.
// A zero Path parses with the host separator.
func (p *Path) UnmarshalText(text []byte) error {
	*p = Parse(string(text), p.Delimiter())
	return nil
}

// MarshalYAML encodes the path as a string scalar.
func (p Path) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML accepts either a string scalar, which is parsed with the current delimiter of p,
// or a sequence of string scalars, which are taken as segments without splitting.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	delimiter := p.Delimiter()
	switch value.Kind {
	case yaml.ScalarNode:
		var text string
		if err := value.Decode(&text); err != nil {
			return newInvalidPathError("failed to decode yaml scalar", err)
		}
		*p = Parse(text, delimiter)
		return nil
	case yaml.SequenceNode:
		segments := make([]string, 0, len(value.Content))
		for i, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return newInvalidPathError(fmt.Sprintf("segment %d at line %d is not a scalar", i, item.Line), nil)
			}
			segments = append(segments, item.Value)
		}
		*p = Path{segments: segments, delimiter: delimiter, hasDelimiter: true}
		return nil
	default:
		return newInvalidPathError(fmt.Sprintf("unsupported yaml node at line %d", value.Line), nil)
	}
}
