// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package models defines the Curvenote entities the CLI reads and the
// bindings that plug them into transfer.Transfer.
package models
