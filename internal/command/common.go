// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	mylog "github.com/staranto/curvenotego/internal/log"
	"github.com/staranto/curvenotego/internal/meta"
	"github.com/staranto/curvenotego/internal/output"
	"github.com/staranto/curvenotego/internal/session"
)

var ErrNoToken = errors.New("no token supplied on stdin")

// Swapped out in tests.
var (
	stdin        io.Reader = os.Stdin
	isTerminal             = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	readPassword           = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// resolveToken returns the --token value. A value of "-" reads the token from
// stdin, prompting without echo when stdin is a terminal.
func resolveToken(cmd *cli.Command) (string, error) {
	token := cmd.String("token")
	if token != "-" {
		return strings.TrimSpace(token), nil
	}

	if isTerminal() {
		fmt.Fprint(errWriter(cmd), "Token: ")
		b, err := readPassword()
		fmt.Fprintln(errWriter(cmd))
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(b))
	} else {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}

	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// NewSession builds a session from the root flags. Its logger writes to the
// command's error writer at info level, or debug level with --debug.
func NewSession(cmd *cli.Command) (*session.Session, error) {
	token, err := resolveToken(cmd)
	if err != nil {
		return nil, err
	}

	level := log.InfoLevel
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}

	s, err := session.New(token,
		session.WithAPIURL(cmd.String("api-url")),
		session.WithSiteURL(cmd.String("site-url")),
		session.WithLogger(mylog.New(errWriter(cmd), level)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	log.Debugf("session: api=%s site=%s anonymous=%t", s.APIURL(), s.SiteURL(), s.IsAnonymous())
	return s, nil
}

// Emit marshals v and passes it to the common output routine. defaults is the
// attribute list used when --attrs is not given.
func Emit(cmd *cli.Command, v any, defaults string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	spec := defaults
	if extras := cmd.String("attrs"); extras != "" {
		spec = extras
	}

	filters, err := output.ParseFilters(cmd.String("filter"))
	if err != nil {
		return err
	}

	return output.Spit(outWriter(cmd), raw, output.Options{
		Format:  cmd.String("output"),
		Attrs:   output.ParseAttrs(spec),
		Filters: filters,
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
	})
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
