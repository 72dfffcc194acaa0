// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the CLI and the publish runner.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ConverterConfig holds settings for the README conversion step.
type ConverterConfig struct {
	// Bin is the converter executable (default "pandoc").
	Bin string `json:"bin" yaml:"bin" mapstructure:"bin"`

	// From is the input format identifier (default "markdown").
	From string `json:"from" yaml:"from" mapstructure:"from"`

	// To is the output format identifier (default "rst").
	To string `json:"to" yaml:"to" mapstructure:"to"`

	// Input is the document read by the converter (default "README.md").
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the document written by the converter (default "README.rst").
	// An existing file is overwritten.
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Args returns the converter argument vector:
// --from=<from> --to=<to> --output=<output> <input>.
func (c ConverterConfig) Args() []string {
	return []string{
		"--from=" + c.From,
		"--to=" + c.To,
		"--output=" + c.Output,
		c.Input,
	}
}

// PackagerConfig holds settings for the build-and-upload step.
type PackagerConfig struct {
	// Bin is the packaging interpreter (default "python").
	Bin string `json:"bin" yaml:"bin" mapstructure:"bin"`

	// Script is the setup script passed to Bin (default "setup.py").
	Script string `json:"script" yaml:"script" mapstructure:"script"`

	// Repository is the index alias from the packaging tool's own
	// configuration (default "pypi"). Credentials stay in that configuration.
	Repository string `json:"repository" yaml:"repository" mapstructure:"repository"`
}

// Args returns the packager argument vector: <script> sdist upload -r <repository>.
func (p PackagerConfig) Args() []string {
	return []string{p.Script, "sdist", "upload", "-r", p.Repository}
}

// PublishConfig groups both step configurations.
type PublishConfig struct {
	Converter ConverterConfig `json:"converter" yaml:"converter" mapstructure:"converter"`
	Packager  PackagerConfig  `json:"packager" yaml:"packager" mapstructure:"packager"`
}

// DefaultPublishConfig returns the configuration that converts README.md to
// README.rst with pandoc and uploads a source distribution to "pypi".
func DefaultPublishConfig() PublishConfig {
	return PublishConfig{
		Converter: ConverterConfig{
			Bin:    "pandoc",
			From:   "markdown",
			To:     "rst",
			Input:  "README.md",
			Output: "README.rst",
		},
		Packager: PackagerConfig{
			Bin:        "python",
			Script:     "setup.py",
			Repository: "pypi",
		},
	}
}

// Validate reports every empty field in c.
func (c PublishConfig) Validate() error {
	fields := []struct {
		key, value string
	}{
		{"converter.bin", c.Converter.Bin},
		{"converter.from", c.Converter.From},
		{"converter.to", c.Converter.To},
		{"converter.input", c.Converter.Input},
		{"converter.output", c.Converter.Output},
		{"packager.bin", c.Packager.Bin},
		{"packager.script", c.Packager.Script},
		{"packager.repository", c.Packager.Repository},
	}

	var errs []error
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", f.key))
		}
	}
	return errors.Join(errs...)
}
