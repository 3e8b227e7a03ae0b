// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/staranto/curvenotego/internal/session"
	"github.com/staranto/curvenotego/internal/store"
)

var (
	ErrNotLoaded    = errors.New(`must call "Get" first`)
	ErrFetchFailed  = errors.New("not found or you do not have access")
	ErrUnconfigured = errors.New("transfer requires a session and a binding")
)

// Binding supplies everything entity specific about a Transfer.
type Binding[ID comparable, D any] interface {
	// Kind names the entity in log lines, errors and store keys.
	Kind() string
	// URL is the API path for id.
	URL(id ID) string
	// IDOf extracts the identifier carried by a DTO.
	IDOf(d D) ID
	// Normalize turns a decoded or cached DTO into its canonical form. It
	// must be idempotent since cached entries pass through it again.
	Normalize(id ID, d D) D
	// Select looks id up in a store snapshot.
	Select(st store.State, id ID) (D, bool)
	// Receive maps a normalized DTO to the action that syncs it into the
	// store. Return store.Nop() to skip syncing.
	Receive(d D) store.Action
}

// FetchError is returned when the API answers a Get with anything but 200.
type FetchError struct {
	Kind    string
	URL     string
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: not found (%s) or you do not have access", e.Kind, e.URL)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// Transfer is the accessor for one entity. It starts unloaded and becomes
// loaded after a successful Get or SetData; it never goes back.
type Transfer[ID comparable, D any] struct {
	session *session.Session
	binding Binding[ID, D]
	id      ID
	data    *D
}

// New binds id to s through b.
func New[ID comparable, D any](s *session.Session, b Binding[ID, D], id ID) (*Transfer[ID, D], error) {
	if s == nil || b == nil {
		return nil, ErrUnconfigured
	}
	return &Transfer[ID, D]{
		session: s,
		binding: b,
		id:      id,
	}, nil
}

func (t *Transfer[ID, D]) ID() ID { return t.id }

func (t *Transfer[ID, D]) Kind() string { return t.binding.Kind() }

// Loaded reports whether Data will succeed.
func (t *Transfer[ID, D]) Loaded() bool { return t.data != nil }

// Data returns the loaded DTO.
func (t *Transfer[ID, D]) Data() (D, error) {
	if t.data == nil {
		var zero D
		return zero, fmt.Errorf("%s: %w", t.binding.Kind(), ErrNotLoaded)
	}
	return *t.data, nil
}

// SetData adopts d's identifier when it carries one, stores its normalized
// form and syncs it into the session store. This is the only place transfer
// state meets store state.
func (t *Transfer[ID, D]) SetData(d D) {
	var zero ID
	if id := t.binding.IDOf(d); id != zero {
		t.id = id
	}
	normalized := t.binding.Normalize(t.id, d)
	t.data = &normalized
	t.session.Store().Dispatch(t.binding.Receive(normalized))
}

// Get loads the entity, preferring the session store over the network. On
// any error the transfer is left as it was.
func (t *Transfer[ID, D]) Get(ctx context.Context) (*Transfer[ID, D], error) {
	url := t.binding.URL(t.id)
	logger := t.session.Log().WithField("kind", t.binding.Kind()).WithField("url", url)

	if cached, ok := t.binding.Select(t.session.Store().State(), t.id); ok {
		logger.Debug("loading from cache")
		t.SetData(cached)
		return t, nil
	}

	logger.Debug("fetching")
	resp, err := t.session.Get(ctx, url, nil)
	if err != nil {
		return t, fmt.Errorf("%s: %w", t.binding.Kind(), err)
	}
	if resp.Status != http.StatusOK {
		return t, &FetchError{
			Kind:    t.binding.Kind(),
			URL:     url,
			Status:  resp.Status,
			Message: resp.Body.Get("message").String(),
		}
	}

	var d D
	if err := resp.Decode(&d); err != nil {
		return t, fmt.Errorf("%s: %w", t.binding.Kind(), err)
	}
	t.SetData(d)

	return t, nil
}
