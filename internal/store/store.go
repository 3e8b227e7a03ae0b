// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sync"
	"sync/atomic"
)

// State is a read-only snapshot of the store. A State obtained from
// Store.State is never mutated by later dispatches.
type State struct {
	kinds map[string]map[any]any
}

// Lookup returns the raw entry for kind and id.
func (s State) Lookup(kind string, id any) (any, bool) {
	entities, ok := s.kinds[kind]
	if !ok {
		return nil, false
	}
	v, ok := entities[id]
	return v, ok
}

// Len returns the number of entries held for kind.
func (s State) Len(kind string) int {
	return len(s.kinds[kind])
}

// Kinds returns the entity kinds with at least one entry.
func (s State) Kinds() []string {
	kinds := make([]string, 0, len(s.kinds))
	for k, v := range s.kinds {
		if len(v) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Select is the typed selector used by entity bindings. It reports false when
// the entry is missing or holds a different type.
func Select[D any](s State, kind string, id any) (D, bool) {
	var zero D
	v, ok := s.Lookup(kind, id)
	if !ok {
		return zero, false
	}
	d, ok := v.(D)
	if !ok {
		return zero, false
	}
	return d, true
}

// Action is a state transition. Actions are built with Receive or Nop.
type Action interface {
	reduce(State) State
}

type receive struct {
	kind string
	id   any
	dto  any
}

// Receive returns an action storing dto under kind and id, replacing any
// previous entry.
func Receive(kind string, id any, dto any) Action {
	return receive{kind: kind, id: id, dto: dto}
}

func (r receive) reduce(s State) State {
	// Copy-on-write: only the touched kind is cloned.
	kinds := make(map[string]map[any]any, len(s.kinds)+1)
	for k, v := range s.kinds {
		kinds[k] = v
	}
	entities := make(map[any]any, len(s.kinds[r.kind])+1)
	for id, v := range s.kinds[r.kind] {
		entities[id] = v
	}
	entities[r.id] = r.dto
	kinds[r.kind] = entities
	return State{kinds: kinds}
}

type nop struct{}

// Nop returns an action that leaves the state untouched. Bindings that do not
// sync into the store return it from Receive.
func Nop() Action { return nop{} }

func (nop) reduce(s State) State { return s }

// Store is the process-wide entity cache owned by a session.
type Store struct {
	mu    sync.Mutex
	state atomic.Pointer[State]
}

// New returns an empty store.
func New() *Store {
	s := &Store{}
	s.state.Store(&State{kinds: map[string]map[any]any{}})
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	return *s.state.Load()
}

// Dispatch applies a to the current state. A nil action is ignored.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := a.reduce(*s.state.Load())
	s.state.Store(&next)
}
