// Package commands implements the datamodel CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/pkg/datamodel"
)

// modelColumns is the column layout shared by the table, show, and
// guess commands: the model name followed by the six type categories
// in promotion order.
func modelColumns() []string {
	cols := []string{"model"}
	for _, c := range datamodel.Categories() {
		cols = append(cols, c.String())
	}
	return cols
}

// modelRow builds the size row for one model, keyed by column name.
func modelRow(m datamodel.Model) map[string]any {
	row := map[string]any{"model": m.String()}
	for _, c := range datamodel.Categories() {
		row[c.String()] = m.SizeOf(c)
	}
	return row
}

// renderRows writes rows in the renderer's effective mode.
func renderRows(r *output.Renderer, cols []string, rows []map[string]any) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderJSON(r.Out(), cols, rows)
	case output.ModeCSV:
		return renderCSV(r.Out(), cols, rows)
	case output.ModeMarkdown:
		return renderMarkdown(r.Out(), cols, rows)
	default:
		return renderText(r.Out(), cols, rows)
	}
}

func renderText(w io.Writer, cols []string, rows []map[string]any) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = formatValue(r[col])
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, cols []string, rows []map[string]any) error {
	// Re-key columns for JSON: "long long" becomes "long_long".
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		obj := make(map[string]any, len(cols))
		for _, col := range cols {
			obj[jsonKey(col)] = r[col]
		}
		out = append(out, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, cols []string, rows []map[string]any) error {
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))

	for _, r := range rows {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = escapeCSV(formatValue(r[col]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, cols []string, rows []map[string]any) error {
	_, _ = fmt.Fprintln(w, "| "+strings.Join(cols, " | ")+" |")

	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	_, _ = fmt.Fprintln(w, "| "+strings.Join(sep, " | ")+" |")

	for _, r := range rows {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = formatValue(r[col])
		}
		_, _ = fmt.Fprintln(w, "| "+strings.Join(values, " | ")+" |")
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func jsonKey(col string) string {
	return strings.ReplaceAll(col, " ", "_")
}
