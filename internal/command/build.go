// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/curvenotego/internal/config"
	"github.com/staranto/curvenotego/internal/meta"
	"github.com/staranto/curvenotego/internal/models"
)

var ErrNoProjects = errors.New("no project ids found")

// ProjectFile is the subset of a local curvenote.yml that build reads.
type ProjectFile struct {
	Project struct {
		ID string `yaml:"id"`
	} `yaml:"project"`
	Site struct {
		Projects []struct {
			ID string `yaml:"id"`
		} `yaml:"projects"`
	} `yaml:"site"`
}

// IDs returns the project ids in file order, duplicates included.
func (pf ProjectFile) IDs() []string {
	var ids []string
	if pf.Project.ID != "" {
		ids = append(ids, pf.Project.ID)
	}
	for _, p := range pf.Site.Projects {
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func readProjectFile(path string) (ProjectFile, error) {
	var pf ProjectFile
	b, err := os.ReadFile(path)
	if err != nil {
		return pf, fmt.Errorf("failed to read project file: %w", err)
	}
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return pf, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return pf, nil
}

func BuildCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path := cmd.String("config")
	if !filepath.IsAbs(path) && m.StartingDir != "" {
		path = filepath.Join(m.StartingDir, path)
	}
	pf, err := readProjectFile(path)
	if err != nil {
		return err
	}
	ids := pf.IDs()

	// Extra ids may be pinned under build.projects in the config file.
	extra, err := config.GetStringSlice("projects", nil)
	if err != nil {
		return fmt.Errorf("invalid build.projects in %s: %w", config.Config.Source, err)
	}
	ids = append(ids, extra...)
	if len(ids) == 0 {
		return fmt.Errorf("%w in %s", ErrNoProjects, path)
	}

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	outDir := cmd.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	written := map[string]bool{}
	for _, id := range ids {
		t, err := models.NewProject(s, id)
		if err != nil {
			return err
		}
		if _, err := t.Get(ctx); err != nil {
			return fmt.Errorf("failed to resolve project %s: %w", id, err)
		}
		p, err := t.Data()
		if err != nil {
			return err
		}
		if p.ID == "" {
			p.ID = id
		}
		if written[p.ID] {
			continue
		}

		b, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal project %s: %w", p.ID, err)
		}
		target := filepath.Join(outDir, p.ID+".json")
		if err := os.WriteFile(target, append(b, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		log.WithField("size", humanize.Bytes(uint64(len(b)+1))).Debugf("wrote %s", target)
		written[p.ID] = true
	}

	fmt.Fprintf(outWriter(cmd), "Built %s into %s\n", english.Plural(len(written), "project", ""), outDir)
	return nil
}

func BuildCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "resolve the projects of a local project file",
		UsageText: "curvenote build [--config curvenote.yml] [--out _build]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "local project file",
				Value: "curvenote.yml",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory",
				Value: "_build",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
		},
		Action: BuildCommandAction,
	}
}
