// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package transfer provides get-or-fetch access to a single remote entity.
// A cached copy in the session store always wins over the network and is
// never revalidated, so a long running process can observe stale data.
package transfer
