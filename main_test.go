// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/curvenotego/internal/command"
	"github.com/staranto/curvenotego/internal/config"
	"github.com/staranto/curvenotego/internal/version"
)

func TestRealMain(t *testing.T) {
	for _, k := range []string{"CURVENOTE_TOKEN", "CURVENOTE_API_URL", "CURVENOTE_SITE_URL", "CURVENOTE_DEBUG", "CURVENOTE_CFG", "APPDATA"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.Config = config.Type{}

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "short version",
			args:       []string{"curvenote", "-v"},
			wantStdout: version.Version + "\n",
		},
		{
			name:       "long version",
			args:       []string{"curvenote", "--version"},
			wantStdout: version.Version + "\n",
		},
		{
			name:       "version after a command",
			args:       []string{"curvenote", "user", "-v"},
			wantStdout: version.Version + "\n",
		},
		{
			name:       "no args shows help",
			args:       []string{"curvenote"},
			wantStdout: "curvenote",
			wantStderr: "No command specified.",
		},
		{
			name:       "command failure",
			args:       []string{"curvenote", "project"},
			wantCode:   2,
			wantStderr: command.ErrNoProjectID.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := realMain(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}
