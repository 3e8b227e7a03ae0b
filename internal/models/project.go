// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"net/url"
	"strings"

	"github.com/staranto/curvenotego/internal/session"
	"github.com/staranto/curvenotego/internal/store"
	"github.com/staranto/curvenotego/internal/transfer"
)

const KindProject = "project"

type Project struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Team         string            `json:"team,omitempty" yaml:"team,omitempty"`
	Visibility   string            `json:"visibility" yaml:"visibility"`
	DateCreated  string            `json:"date_created,omitempty" yaml:"date_created,omitempty"`
	DateModified string            `json:"date_modified,omitempty" yaml:"date_modified,omitempty"`
	Links        map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
}

// ProjectBinding reads /projects/{id}.
type ProjectBinding struct{}

func (ProjectBinding) Kind() string { return KindProject }

func (ProjectBinding) URL(id string) string { return "/projects/" + url.PathEscape(id) }

func (ProjectBinding) IDOf(p Project) string { return p.ID }

// Normalize lowercases the project name and visibility and uses the name as
// the title when the title is empty. Visibility defaults to private.
func (ProjectBinding) Normalize(id string, p Project) Project {
	p.ID = id
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		p.Title = p.Name
	}
	p.Description = strings.TrimSpace(p.Description)
	p.Team = strings.TrimSpace(p.Team)
	p.Visibility = strings.ToLower(strings.TrimSpace(p.Visibility))
	if p.Visibility == "" {
		p.Visibility = "private"
	}
	return p
}

func (ProjectBinding) Select(st store.State, id string) (Project, bool) {
	return store.Select[Project](st, KindProject, id)
}

func (ProjectBinding) Receive(p Project) store.Action {
	return store.Receive(KindProject, p.ID, p)
}

// NewProject returns a transfer for the project with the given id.
func NewProject(s *session.Session, id string) (*transfer.Transfer[string, Project], error) {
	return transfer.New[string, Project](s, ProjectBinding{}, id)
}
