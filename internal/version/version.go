// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version of curvenote. It is overridden at
// link time with -ldflags "-X .../internal/version.Version=...".
package version

// Version is reported by -v/--version and sent as X-Client-Version.
var Version = "0.1.0-dev"

// ClientName is sent as X-Client-Name on every API request.
const ClientName = "Go Client"
