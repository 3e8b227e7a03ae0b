// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.DebugLevel)

	logger.WithField("url", "https://api.example.com/users/u1").
		WithField("kind", "user").
		Debug("fetching")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, " D fetching")
	// Fields are sorted by name.
	assert.True(t, strings.HasSuffix(line, "kind=user url=https://api.example.com/users/u1"), line)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), " W shown")
}

func TestInitLogger_EnvLevel(t *testing.T) {
	t.Setenv("CURVENOTE_LOG", "debug")
	InitLogger()
	defer log.SetLevel(log.ErrorLevel)

	l, ok := log.Log.(*log.Logger)
	if assert.True(t, ok) {
		assert.Equal(t, log.DebugLevel, l.Level)
	}
}

func TestInitLogger_BadLevelFallsBackToError(t *testing.T) {
	t.Setenv("CURVENOTE_LOG", "chatty")
	InitLogger()

	l, ok := log.Log.(*log.Logger)
	if assert.True(t, ok) {
		assert.Equal(t, log.ErrorLevel, l.Level)
	}
}
