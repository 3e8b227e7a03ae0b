// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Operators are one of = ^ ~ < > @ or /, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// ParseFilters parses a comma-separated list of filter expressions such as
// "visibility=public,name^demo".
func ParseFilters(spec string) ([]Filter, error) {
	var filters []Filter
	for _, fs := range strings.Split(spec, ",") {
		if strings.TrimSpace(fs) == "" {
			continue
		}
		parts := filterRegex.FindStringSubmatch(fs)
		if parts == nil || parts[1] == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, fs)
		}
		op := strings.TrimPrefix(parts[2], "!")
		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  op != parts[2],
			Operand: op,
			Target:  parts[3],
		})
	}
	return filters, nil
}

// Match reports whether item passes every filter. A filter key is an attr
// title, or a path into the item when no attr carries that title.
func Match(item gjson.Result, attrs []Attr, filters []Filter) bool {
	for _, f := range filters {
		path := f.Key
		for _, a := range attrs {
			if a.OutputKey == f.Key {
				path = a.Key
				break
			}
		}

		v := item.Get(path)
		if !v.Exists() || v.Type == gjson.Null {
			return false
		}

		var ok bool
		switch {
		case v.Type == gjson.Number:
			ok = matchNumber(v.Num, f)
		case v.IsArray() && f.Operand == "@":
			ok = f.Negate
			for _, e := range v.Array() {
				if e.String() == f.Target {
					ok = !f.Negate
					break
				}
			}
		case v.IsObject() && f.Operand == "@":
			_, found := v.Map()[f.Target]
			ok = found != f.Negate
		default:
			ok = matchString(v.String(), f)
		}
		if !ok {
			return false
		}
	}
	return true
}

func matchNumber(value float64, f Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(f.Target), 64)
	if err != nil {
		return matchString(strconv.FormatFloat(value, 'f', -1, 64), f)
	}

	switch f.Operand {
	case "=":
		return (value == tgt) == !f.Negate
	case ">":
		return (value > tgt) == !f.Negate
	case "<":
		return (value < tgt) == !f.Negate
	default:
		return matchString(strconv.FormatFloat(value, 'f', -1, 64), f)
	}
}

func matchString(value string, f Filter) bool {
	switch f.Operand {
	case "=":
		return (value == f.Target) == !f.Negate
	case "~":
		return strings.EqualFold(value, f.Target) == !f.Negate
	case "^":
		return strings.HasPrefix(value, f.Target) == !f.Negate
	case ">":
		return (value > f.Target) == !f.Negate
	case "<":
		return (value < f.Target) == !f.Negate
	case "@":
		return strings.Contains(value, f.Target) == !f.Negate
	case "/":
		matched, err := regexp.MatchString(f.Target, value)
		if err != nil {
			return false
		}
		return matched == !f.Negate
	}
	return false
}
