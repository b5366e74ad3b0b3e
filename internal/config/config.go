// Package config loads the optional pyembed.toml manifest. Flags always take
// precedence over manifest values; the manifest only fills in what the caller
// left unset.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pyembed/pyembed/internal/messages"
)

// Manifest declares provisioning inputs in a pyembed.toml file.
type Manifest struct {
	Version      string `toml:"version"`
	Target       string `toml:"target"`
	Requirements string `toml:"requirements"`
	EnvFile      string `toml:"env-file"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses manifest TOML data; source is used in error messages.
// Unknown keys are rejected so a typoed key fails loudly instead of being
// silently ignored.
func Parse(data []byte, source string) (*Manifest, error) {
	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnknownKeysFmt, source, err)
	}
	return &manifest, nil
}

func decodeStrict(data []byte) error {
	var manifest Manifest
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&manifest)
}
