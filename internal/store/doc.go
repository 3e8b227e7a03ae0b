// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package store holds fetched entities keyed by kind and id. Reads go through
// selector functions over an immutable State snapshot and writes go through
// dispatched Actions. Entries are never evicted.
package store
