// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator FlagValidatorType
		value     string
		wantErr   bool
	}{
		{"output text", OutputValidator, "text", false},
		{"output json", OutputValidator, "json", false},
		{"output csv", OutputValidator, "csv", true},
		{"jammed", JammedFlagValidator, "--output", true},
		{"not jammed", JammedFlagValidator, "id,name", false},
		{"filter ok", FilterValidator, "name^demo,visibility=public", false},
		{"filter bad", FilterValidator, "name", true},
		{"url https", URLValidator, "https://api.curvenote.com", false},
		{"url http port", URLValidator, "http://127.0.0.1:8080", false},
		{"url no scheme", URLValidator, "api.curvenote.com", true},
		{"url ftp", URLValidator, "ftp://api.curvenote.com", true},
		{"url no host", URLValidator, "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlagValidators_Chain(t *testing.T) {
	assert.NoError(t, FlagValidators("text", JammedFlagValidator, OutputValidator))
	assert.Error(t, FlagValidators("--text", OutputValidator, JammedFlagValidator))
}
