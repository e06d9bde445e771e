// Config file handling for the celebrity CLI.
//
// The file is optional TOML behind --config; it supplies defaults that
// explicit flags override. Keys absent from the file keep the built-in
// defaults.

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/pfad/viz"
)

// defaultOutputDir matches the layout the original demo writes to.
const defaultOutputDir = "output"

// OutputConfig controls where and how render writes its artifacts.
type OutputConfig struct {
	// Dir is the output directory, created if missing.
	Dir string `toml:"dir"`

	// Format is the default render format: "dot" or "mermaid".
	Format string `toml:"format"`

	// PNG additionally converts DOT output via Graphviz.
	PNG bool `toml:"png"`

	// Highlight fills the celebrity clique in rendered graphs.
	Highlight bool `toml:"highlight"`
}

// SolveConfig supplies search defaults.
type SolveConfig struct {
	// Timeout is a Go duration string bounding a search; empty means none.
	Timeout string `toml:"timeout"`

	// Exhaustive switches the default search to the subset scan.
	Exhaustive bool `toml:"exhaustive"`
}

// Config is the document shape of the --config file.
type Config struct {
	Output OutputConfig `toml:"output"`
	Solve  SolveConfig  `toml:"solve"`
}

// DefaultConfig returns the values used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:       defaultOutputDir,
			Format:    string(viz.FormatDOT),
			Highlight: true,
		},
	}
}

// LoadConfig reads a TOML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	return &cfg, nil
}
