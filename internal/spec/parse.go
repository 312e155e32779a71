package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a pipeline config document. Unknown fields are
// rejected so typos in quota or category keys surface immediately
// instead of silently falling back to defaults.
func ParseConfig(data []byte) (Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := ensureSingleDocument(decoder); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func ensureSingleDocument(decoder *yaml.Decoder) error {
	err := decoder.Decode(&struct{}{})
	switch {
	case err == nil:
		return errors.New("multiple YAML documents are not supported")
	case err == io.EOF:
		return nil
	default:
		return err
	}
}
