package frame

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	f := weatherFrame(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, "table"))

	out := buf.String()
	assert.Contains(t, out, "temp [K]", "unit appears in the header")
	assert.Contains(t, out, "precip [mm]")
	assert.Contains(t, out, "291.5")
	assert.Contains(t, out, "(3 rows)")
}

func TestRenderTableEmpty(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, "table"))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	f := weatherFrame(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, "markdown"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "| lon | lat | temp [K] | precip [mm] |", lines[0])
	assert.Equal(t, "| --- | --- | --- | --- |", lines[1])
	assert.Len(t, lines, 2+3+1)
}

func TestRenderCSV(t *testing.T) {
	f, err := New([]Column{
		{Name: "name", Values: []any{"plain", `quo"ted`, "com,ma"}},
		{Name: "n", Values: []any{1, 2, 3}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "name,n", lines[0])
	assert.Equal(t, "plain,1", lines[1])
	assert.Equal(t, `"quo""ted",2`, lines[2])
	assert.Equal(t, `"com,ma",3`, lines[3])
}

func TestRenderJSON(t *testing.T) {
	f := weatherFrame(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, "json"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, 290.0, rows[0]["temp"])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", formatValue(nil))
	assert.Equal(t, "bytes", formatValue([]byte("bytes")))
	assert.Equal(t, "text", formatValue("text"))
	assert.Equal(t, "42", formatValue(42))
}
