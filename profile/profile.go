// Package profile loads the decoder configuration.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	DefaultName      = "default"
	DefaultIDTLength = 8
	DefaultFormat    = "table"
)

// recordFormats are the formats the decode command accepts.
var recordFormats = []string{"table", "json"}

// Profile describes the target controller and how decode records are shown.
type Profile struct {
	Name      string `yaml:"name"`
	IDTLength int    `yaml:"idt_length"`
	Format    string `yaml:"format"`
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Name:      DefaultName,
		IDTLength: DefaultIDTLength,
		Format:    DefaultFormat,
	}
}

// LoadProfile loads a profile from a YAML file. Keys missing from the file
// keep their default value.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	prof := Default()
	if err := yaml.NewDecoder(file).Decode(prof); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}

// Validate checks the profile values.
func (p *Profile) Validate() error {
	if p.IDTLength < 0 {
		return fmt.Errorf("idt_length must not be negative, got %d", p.IDTLength)
	}
	if !slices.Contains(recordFormats, p.Format) {
		return fmt.Errorf("unsupported format %q, expected one of %v", p.Format, recordFormats)
	}
	return nil
}
