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
)

var ErrNoProjectID = errors.New("at least one project id is required")

const projectDefaultAttrs = "id,name,title,visibility,team"

func ProjectCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	ids := cmd.Args().Slice()
	if len(ids) == 0 {
		return ErrNoProjectID
	}

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	results := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		t, err := models.NewProject(s, id)
		if err != nil {
			return err
		}
		p, err := load(ctx, t)
		if err != nil {
			return err
		}
		results = append(results, p)
	}

	return Emit(cmd, results, projectDefaultAttrs)
}

func ProjectCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "project",
		Usage:     "show projects",
		UsageText: "curvenote project <id>... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags("project", meta.Config.Source),
		Action: ProjectCommandAction,
	}
}
