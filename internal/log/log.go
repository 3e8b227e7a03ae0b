// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/staranto/curvenotego/internal/config"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// CURVENOTE_LOG env variable, falling back to the "log" config key.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("CURVENOTE_LOG"))
	if level == "" {
		level, _ = config.GetString("log", "ERROR")
		level = strings.ToUpper(level)
	}
	log.SetHandler(NewHandler(os.Stderr))

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// New returns a standalone logger writing through CustomHandler at the given
// level. It does not touch the global Apex logger.
func New(w io.Writer, level log.Level) *log.Logger {
	return &log.Logger{
		Handler: NewHandler(w),
		Level:   level,
	}
}

// CustomHandler formats log messages and writes them to W. Stdout is left
// alone so command output can be piped.
type CustomHandler struct {
	mu sync.Mutex
	W  io.Writer
}

// NewHandler returns a CustomHandler writing to w, or stderr if w is nil.
func NewHandler(w io.Writer) *CustomHandler {
	if w == nil {
		w = os.Stderr
	}
	return &CustomHandler{W: w}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.W, b.String())
	return err
}
