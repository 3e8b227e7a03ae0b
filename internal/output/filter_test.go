// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		spec    string
		want    []Filter
		wantErr bool
	}{
		{spec: "", want: nil},
		{spec: "name=paper", want: []Filter{{Key: "name", Operand: "=", Target: "paper"}}},
		{spec: "name!^th", want: []Filter{{Key: "name", Negate: true, Operand: "^", Target: "th"}}},
		{
			spec: "visibility~PUBLIC,count>2",
			want: []Filter{
				{Key: "visibility", Operand: "~", Target: "PUBLIC"},
				{Key: "count", Operand: ">", Target: "2"},
			},
		},
		{spec: "name/^pa.*r$", want: []Filter{{Key: "name", Operand: "/", Target: "^pa.*r$"}}},
		{spec: "nooperator", wantErr: true},
		{spec: "=paper", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseFilters(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	item := gjson.Parse(`{"name":"paper","count":3,"public":true,"tags":["a","b"],"links":{"self":"x"},"team":null}`)
	attrs := []Attr{{Key: "links.self", OutputKey: "url"}}

	tests := []struct {
		spec string
		want bool
	}{
		{"name=paper", true},
		{"name!=paper", false},
		{"name~PAPER", true},
		{"name^pa", true},
		{"name@ape", true},
		{"name/^p.*r$", true},
		{"name/[", false},
		{"count=3", true},
		{"count>2", true},
		{"count<3", false},
		{"count!>5", true},
		{"public=true", true},
		{"tags@a", true},
		{"tags!@a", false},
		{"tags@z", false},
		{"links@self", true},
		{"url=x", true},
		{"missing=x", false},
		{"team=", false},
		{"name=paper,count>5", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			filters, err := ParseFilters(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Match(item, attrs, filters))
		})
	}
}

func TestSpit_Filters(t *testing.T) {
	filters, err := ParseFilters("visibility=public")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Spit(&buf, []byte(projects), Options{
		Format:  "json",
		Attrs:   ParseAttrs("id"),
		Filters: filters,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, buf.String())
}
