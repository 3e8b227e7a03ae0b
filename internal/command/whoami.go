// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/meta"
)

func WhoamiCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	w := outWriter(cmd)
	if s.IsAnonymous() {
		fmt.Fprintf(w, "anonymous @ %s\n", s.APIURL())
		return nil
	}

	u, err := currentUser(ctx, s)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s) @ %s\n", u.Username, u.ID, s.APIURL())
	if exp, ok := s.TokenExpiry(); ok {
		fmt.Fprintf(w, "token expires %s\n", humanize.Time(exp))
	}
	return nil
}

func WhoamiCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "whoami",
		Usage:     "show the authenticated user and token expiry",
		UsageText: "curvenote whoami",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: WhoamiCommandAction,
	}
}
