// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/config"
	"github.com/staranto/curvenotego/internal/meta"
)

var commandNames = []string{"build", "completion", "project", "user", "whoami"}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// The subcommand also represents the namespace key to be used when
	// retrieving config values. Root flags may precede it, so look for the
	// first arg that names a command.
	var ns string
	for _, a := range args[1:] {
		if slices.Contains(commandNames, a) {
			ns = a
			break
		}
	}

	config.Config.Namespace = ns
	meta := meta.Meta{
		Args:        args,
		Config:      config.Config,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "curvenote",
		Usage: "Curvenote API client",
		Flags: NewRootFlags(meta.Config.Source),
		Metadata: map[string]any{
			"meta": meta,
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
	}

	app.Commands = append(app.Commands,
		BuildCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
		ProjectCommandBuilder(app, meta),
		UserCommandBuilder(app, meta),
		WhoamiCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
