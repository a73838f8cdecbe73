package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// ErrInvalidPageMap is returned when a page map fails validation.
var ErrInvalidPageMap = errors.New("invalid page map")

// WritePageMap encodes pm as YAML.
func WritePageMap(w io.Writer, pm *PageMap) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(pm); err != nil {
		return fmt.Errorf("encode page map: %w", err)
	}
	return enc.Close()
}

// MarshalPageMap returns pm as YAML.
func MarshalPageMap(pm *PageMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePageMap(&buf, pm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadPageMap decodes and validates a YAML page map.
func ReadPageMap(r io.Reader) (*PageMap, error) {
	var pm PageMap
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&pm); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPageMap)
		}
		return nil, fmt.Errorf("decode page map: %w", err)
	}

	if err := pm.Validate(); err != nil {
		return nil, err
	}
	return &pm, nil
}

// Validate checks that every entry has a name and a selector and that names
// are unique.
func (pm *PageMap) Validate() error {
	names := make(map[string]struct{}, len(pm.Entries))
	for i, e := range pm.Entries {
		if e.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidPageMap, i)
		}
		if e.Selector == "" {
			return fmt.Errorf("%w: entry %q has no selector", ErrInvalidPageMap, e.Name)
		}
		if _, dup := names[e.Name]; dup {
			return fmt.Errorf("%w: duplicate entry %q", ErrInvalidPageMap, e.Name)
		}
		names[e.Name] = struct{}{}
	}
	return nil
}
