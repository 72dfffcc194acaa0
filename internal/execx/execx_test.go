// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package execx

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSExecutor_Run(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name     string
		bin      string
		args     []string
		wantCode int
		wantOut  string
		wantErr  bool
	}{
		{
			name:    "success streams stdout",
			bin:     "sh",
			args:    []string{"-c", "echo converted"},
			wantOut: "converted\n",
		},
		{
			name:     "non-zero exit status",
			bin:      "sh",
			args:     []string{"-c", "exit 3"},
			wantCode: 3,
			wantErr:  true,
		},
		{
			name:     "missing binary",
			bin:      filepath.Join(t.TempDir(), "no-such-tool"),
			wantCode: CodeNotFound,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			e := &OSExecutor{Stdout: &stdout, Stderr: &stderr}

			res := e.Run(context.Background(), tt.bin, tt.args...)

			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantCode == 0, res.OK())
			if tt.wantErr {
				assert.Error(t, res.Err)
			} else {
				assert.NoError(t, res.Err)
			}
			assert.Equal(t, tt.wantOut, stdout.String())
		})
	}
}

func TestOSExecutor_Trace(t *testing.T) {
	requireShell(t)

	var trace bytes.Buffer
	e := &OSExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Trace: &trace}

	res := e.Run(context.Background(), "sh", "-c", "true")
	require.True(t, res.OK())
	assert.Equal(t, "+ sh -c true\n", trace.String())
}

func TestOSExecutor_Canceled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &OSExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	res := e.Run(ctx, "sh", "-c", "sleep 5")

	assert.Equal(t, CodeCanceled, res.Code)
	assert.Error(t, res.Err)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "python setup.py sdist upload -r pypi",
		CommandLine("python", "setup.py", "sdist", "upload", "-r", "pypi"))
	assert.Equal(t, "pandoc", CommandLine("pandoc"))
}
