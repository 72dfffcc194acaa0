// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPublishConfig_Args(t *testing.T) {
	cfg := DefaultPublishConfig()

	assert.Equal(t, "pandoc", cfg.Converter.Bin)
	assert.Equal(t,
		[]string{"--from=markdown", "--to=rst", "--output=README.rst", "README.md"},
		cfg.Converter.Args())

	assert.Equal(t, "python", cfg.Packager.Bin)
	assert.Equal(t,
		[]string{"setup.py", "sdist", "upload", "-r", "pypi"},
		cfg.Packager.Args())
}

func TestPublishConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PublishConfig)
		errMsgs []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *PublishConfig) {},
		},
		{
			name:    "empty converter bin",
			mutate:  func(c *PublishConfig) { c.Converter.Bin = "" },
			errMsgs: []string{"converter.bin must not be empty"},
		},
		{
			name: "whitespace repository and missing output",
			mutate: func(c *PublishConfig) {
				c.Packager.Repository = "  "
				c.Converter.Output = ""
			},
			errMsgs: []string{
				"converter.output must not be empty",
				"packager.repository must not be empty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPublishConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if len(tt.errMsgs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.errMsgs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
