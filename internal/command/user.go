// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/meta"
	"github.com/staranto/curvenotego/internal/models"
	"github.com/staranto/curvenotego/internal/session"
	"github.com/staranto/curvenotego/internal/transfer"
)

var ErrAnonymous = errors.New("a token is required to look up the current user")

const userDefaultAttrs = "id,username,display_name:name,affiliation"

// currentUser fetches the authenticated user.
func currentUser(ctx context.Context, s *session.Session) (models.User, error) {
	if s.IsAnonymous() {
		return models.User{}, ErrAnonymous
	}
	t, err := models.NewMe(s)
	if err != nil {
		return models.User{}, err
	}
	return load(ctx, t)
}

func load[D any](ctx context.Context, t *transfer.Transfer[string, D]) (D, error) {
	if _, err := t.Get(ctx); err != nil {
		var zero D
		return zero, err
	}
	return t.Data()
}

func UserCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	var u models.User
	if id := cmd.Args().First(); id != "" {
		t, err := models.NewUser(s, id)
		if err != nil {
			return err
		}
		if u, err = load(ctx, t); err != nil {
			return err
		}
	} else if u, err = currentUser(ctx, s); err != nil {
		return err
	}

	return Emit(cmd, u, userDefaultAttrs)
}

func UserCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "user",
		Usage:     "show a user, or the authenticated user",
		UsageText: "curvenote user [id] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags("user", meta.Config.Source),
		Action: UserCommandAction,
	}
}
