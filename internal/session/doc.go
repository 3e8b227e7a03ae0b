// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package session owns the connection to the Curvenote API: base URLs, the
// bearer token and client headers, raw GET/POST calls, and the entity store
// shared by every transfer built on the session.
package session
