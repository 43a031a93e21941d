// Package config loads optional run defaults from a YAML file.
// Explicit command-line flags always win over file values.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File mirrors the run flags. Nil fields were not present in the file.
type File struct {
	SequenceNumber  *int    `yaml:"sequence_number"`
	Start           *int    `yaml:"start"`
	End             *int    `yaml:"end"`
	Interval        *int    `yaml:"interval"`
	BeginningBlanks *int    `yaml:"beginning_blanks"`
	Pattern         *string `yaml:"pattern"`
	StandardFormat  *string `yaml:"standard_format"`
	EndWithControl  *bool   `yaml:"end_with_control"`
	Seed            *int64  `yaml:"seed"`

	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
}

// LayoutConfig describes the deck and the reserved vial slots.
type LayoutConfig struct {
	Trays        *string `yaml:"trays"`
	Rows         *string `yaml:"rows"`
	Columns      *string `yaml:"columns"` // "1-8" or "1,2,3"
	StartSlot    *string `yaml:"start_slot"`
	BlankSlot    *string `yaml:"blank_slot"`
	StandardSlot *string `yaml:"standard_slot"`
}

// OutputConfig names the export destination.
type OutputConfig struct {
	Dir    *string `yaml:"dir"`
	LCFile *string `yaml:"lc_file"`
	MSFile *string `yaml:"ms_file"`
}

// Load reads and decodes path. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML config bytes.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, errors.Wrap(err, "parse config")
	}
	return &f, nil
}
