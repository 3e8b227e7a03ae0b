// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders fetched entities as text tables, JSON, YAML, or the
// raw API document.
package output
