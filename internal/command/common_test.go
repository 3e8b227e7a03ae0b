// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/meta"
)

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		terminal bool
		stdin    string
		password string
		pwErr    error
		want     string
		wantErr  error
	}{
		{name: "literal", flag: " abc ", want: "abc"},
		{name: "empty is anonymous", flag: "", want: ""},
		{name: "piped", flag: "-", stdin: "tok123\nextra\n", want: "tok123"},
		{name: "piped without newline", flag: "-", stdin: "tok123", want: "tok123"},
		{name: "piped empty", flag: "-", stdin: "", wantErr: ErrNoToken},
		{name: "prompted", flag: "-", terminal: true, password: "secret", want: "secret"},
		{name: "prompt fails", flag: "-", terminal: true, pwErr: io.ErrUnexpectedEOF, wantErr: io.ErrUnexpectedEOF},
	}

	origStdin, origTerm, origRead := stdin, isTerminal, readPassword
	t.Cleanup(func() { stdin, isTerminal, readPassword = origStdin, origTerm, origRead })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdin = strings.NewReader(tt.stdin)
			isTerminal = func() bool { return tt.terminal }
			readPassword = func() ([]byte, error) { return []byte(tt.password), tt.pwErr }

			var got string
			var gotErr error
			cmd := &cli.Command{
				Name:      "test",
				ErrWriter: io.Discard,
				Flags:     []cli.Flag{&cli.StringFlag{Name: "token"}},
				Action: func(_ context.Context, c *cli.Command) error {
					got, gotErr = resolveToken(c)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test", "--token", tt.flag}))

			if tt.wantErr != nil {
				assert.True(t, errors.Is(gotErr, tt.wantErr), "got %v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": "nope"}}))

	m := meta.Meta{Args: []string{"curvenote", "user"}, StartingDir: "/tmp"}
	assert.Equal(t, m, GetMeta(&cli.Command{Metadata: map[string]any{"meta": m}}))
}
