package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes f to w in the named format: "table" (default), "markdown",
// "csv", or "json".
func Render(w io.Writer, f *Frame, format string) error {
	switch format {
	case "json":
		return renderJSON(w, f)
	case "csv":
		return renderCSV(w, f)
	case "md", "markdown":
		return renderMarkdown(w, f)
	default:
		return RenderTable(w, f, 0)
	}
}

// RenderTable writes f as a bordered table. A non-zero maxWidth constrains
// the rendered row length (e.g. to the terminal width).
func RenderTable(w io.Writer, f *Frame, maxWidth int) error {
	if f.NumRows() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if maxWidth > 0 {
		t.SetAllowedRowLength(maxWidth)
	}

	cols := f.Columns()
	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = headerLabel(f, col)
	}
	t.AppendHeader(headerRow)

	for i := 0; i < f.NumRows(); i++ {
		row := make(table.Row, len(cols))
		for j, col := range cols {
			values, _ := f.Column(col)
			row[j] = formatValue(values[i])
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", f.NumRows())
	return nil
}

// headerLabel appends the column's unit, when present, to its name.
func headerLabel(f *Frame, col string) string {
	if unit, ok := f.Unit(col); ok && unit != "" {
		return fmt.Sprintf("%s [%s]", col, unit)
	}
	return col
}

func renderJSON(w io.Writer, f *Frame) error {
	rows := make([]map[string]any, 0, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		row, err := f.Row(i)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderCSV(w io.Writer, f *Frame) error {
	cols := f.Columns()
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))
	for i := 0; i < f.NumRows(); i++ {
		values := make([]string, len(cols))
		for j, col := range cols {
			colValues, _ := f.Column(col)
			values[j] = escapeCSV(formatValue(colValues[i]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, f *Frame) error {
	if f.NumRows() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	cols := f.Columns()
	labels := make([]string, len(cols))
	seps := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = headerLabel(f, col)
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(labels, " | "))
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for i := 0; i < f.NumRows(); i++ {
		values := make([]string, len(cols))
		for j, col := range cols {
			colValues, _ := f.Column(col)
			values[j] = formatValue(colValues[i])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	_, _ = fmt.Fprintf(w, "(%d rows)\n", f.NumRows())
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
