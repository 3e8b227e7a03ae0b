// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/staranto/curvenotego/internal/command"
	mylog "github.com/staranto/curvenotego/internal/log"
	"github.com/staranto/curvenotego/internal/version"
)

var ctx = context.Background()

func main() {
	mylog.InitLogger()
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain runs the app and returns the process exit code: 1 when the app
// cannot be set up, 2 when the command fails.
func realMain(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	return 0
}
