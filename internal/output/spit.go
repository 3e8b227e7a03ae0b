// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/staranto/curvenotego/internal/config"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "raw", "yaml"}

// Attr selects one value from each row. Key is a gjson path into the entity
// document and OutputKey is the column title and output key.
type Attr struct {
	Key       string
	OutputKey string
}

// ParseAttrs parses a comma-separated "key[:title]" list. The title defaults
// to the last segment of the key.
func ParseAttrs(spec string) []Attr {
	var attrs []Attr
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, title, _ := strings.Cut(part, ":")
		if title == "" {
			title = key[strings.LastIndex(key, ".")+1:]
		}
		attrs = append(attrs, Attr{Key: key, OutputKey: title})
	}
	return attrs
}

// Options controls Spit.
type Options struct {
	Format  string
	Attrs   []Attr
	Filters []Filter
	Titles  bool
	Color   bool
}

// Spit renders raw, a JSON object or array of objects, to w.
func Spit(w io.Writer, raw []byte, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	if opts.Format == "raw" {
		_, err := w.Write(append(raw, '\n'))
		return err
	}

	doc := gjson.ParseBytes(raw)
	var items []gjson.Result
	if doc.IsArray() {
		items = doc.Array()
	} else {
		items = []gjson.Result{doc}
	}

	rows := make([]yaml.MapSlice, 0, len(items))
	for _, item := range items {
		if !Match(item, opts.Attrs, opts.Filters) {
			continue
		}
		row := make(yaml.MapSlice, 0, len(opts.Attrs))
		for _, attr := range opts.Attrs {
			row = append(row, yaml.MapItem{Key: attr.OutputKey, Value: item.Get(attr.Key).Value()})
		}
		rows = append(rows, row)
	}
	log.Debugf("rows: %d, attrs: %v", len(rows), opts.Attrs)

	switch opts.Format {
	case "json":
		out := make([]map[string]interface{}, 0, len(rows))
		for _, row := range rows {
			m := make(map[string]interface{}, len(row))
			for _, item := range row {
				m[item.Key.(string)] = item.Value
			}
			out = append(out, m)
		}
		jsonOutput, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = w.Write(append(jsonOutput, '\n'))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		TableWriter(rows, opts, w)
		return nil
	}
}

// TableWriter renders the rows in a tabular form honoring color, titles and
// padding options.
func TableWriter(resultSet []yaml.MapSlice, opts Options, w io.Writer) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, item := range result {
			row = append(row, InterfaceToString(item.Value, "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		var headers []string
		for _, attr := range opts.Attrs {
			headers = append(headers, attr.OutputKey)
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Nothing we show is fractional; ids and counts only.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
