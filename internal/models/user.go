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

const KindUser = "user"

type User struct {
	ID          string            `json:"id" yaml:"id"`
	Username    string            `json:"username" yaml:"username"`
	DisplayName string            `json:"display_name" yaml:"display_name"`
	Affiliation string            `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Location    string            `json:"location,omitempty" yaml:"location,omitempty"`
	Website     string            `json:"website,omitempty" yaml:"website,omitempty"`
	Links       map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
}

// UserBinding reads /users/{id}.
type UserBinding struct{}

func (UserBinding) Kind() string { return KindUser }

func (UserBinding) URL(id string) string { return "/users/" + url.PathEscape(id) }

func (UserBinding) IDOf(u User) string { return u.ID }

// Normalize trims the text fields and falls back to the username when no
// display name is set.
func (UserBinding) Normalize(id string, u User) User {
	u.ID = id
	u.Username = strings.TrimSpace(u.Username)
	u.DisplayName = strings.TrimSpace(u.DisplayName)
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	u.Affiliation = strings.TrimSpace(u.Affiliation)
	u.Location = strings.TrimSpace(u.Location)
	u.Website = strings.TrimSpace(u.Website)
	return u
}

func (UserBinding) Select(st store.State, id string) (User, bool) {
	return store.Select[User](st, KindUser, id)
}

func (UserBinding) Receive(u User) store.Action {
	return store.Receive(KindUser, u.ID, u)
}

// MeBinding reads /my/user, the user the session token belongs to. The id is
// unknown until the response arrives, so the store is never consulted; the
// result is still received so later UserBinding lookups hit the cache.
type MeBinding struct {
	UserBinding
}

func (MeBinding) URL(string) string { return "/my/user" }

func (MeBinding) Select(store.State, string) (User, bool) { return User{}, false }

// NewUser returns a transfer for the user with the given id.
func NewUser(s *session.Session, id string) (*transfer.Transfer[string, User], error) {
	return transfer.New[string, User](s, UserBinding{}, id)
}

// NewMe returns a transfer for the authenticated user.
func NewMe(s *session.Session) (*transfer.Transfer[string, User], error) {
	return transfer.New[string, User](s, MeBinding{}, "")
}
