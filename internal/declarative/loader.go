package declarative

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a directory document.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading user-specified config files
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a directory document, rejecting unknown fields, and validates it.
func Parse(data []byte) (*Directory, error) {
	var d Directory
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}
	if d.APIVersion != SupportedAPIVersion {
		return nil, fmt.Errorf("unsupported apiVersion %q (expected %q)", d.APIVersion, SupportedAPIVersion)
	}
	if d.Kind != KindDirectory {
		return nil, fmt.Errorf("unsupported kind %q (expected %q)", d.Kind, KindDirectory)
	}
	if errs := Validate(&d); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, errors.Join(joined...)
	}
	return &d, nil
}

// Marshal encodes a directory document as YAML.
func Marshal(d *Directory) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode directory: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode directory: %w", err)
	}
	return buf.Bytes(), nil
}
