package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ApplyOverrides decodes settings on top of c. Keys follow the mapstructure
// tags, e.g. {"finder": {"threshold": "500"}}; only the keys present are
// changed. Values are weakly typed so flag and environment strings decode
// into numeric fields.
func (c *Config) ApplyOverrides(settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           c,
		WeaklyTypedInput: true,
		// Replace lists instead of merging them element by element.
		ZeroFields:  true,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("create override decoder: %w", err)
	}

	if decodeErr := decoder.Decode(settings); decodeErr != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, decodeErr)
	}
	return nil
}
