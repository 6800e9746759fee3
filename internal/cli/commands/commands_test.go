package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciframe-io/sciframe/internal/config"
)

// execute runs a command against a buffer and returns its combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCatCommand(t *testing.T) {
	cmd := NewCatCommand()

	assert.Equal(t, "cat <file>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("preview"))
}

func TestCatCommand(t *testing.T) {
	path := writeFile(t, "notes.txt", "alpha\nbeta\ngamma")

	out, err := execute(t, NewCatCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "gamma")
}

func TestCatCommandPreview(t *testing.T) {
	path := writeFile(t, "notes.txt", "alpha\nbeta")

	out, err := execute(t, NewCatCommand(), "--preview", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0: alpha")
	assert.Contains(t, out, "1: beta")
}

func TestCatCommandMissingFile(t *testing.T) {
	_, err := execute(t, NewCatCommand(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestNewFindCommand(t *testing.T) {
	cmd := NewFindCommand()

	assert.Equal(t, "find <pattern>... -f <file>...", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("file"))
}

func TestFindCommand(t *testing.T) {
	path := writeFile(t, "log.txt", "ok start\nerror: disk full\nok end")

	out, err := execute(t, NewFindCommand(), "error", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "(1 rows)")
}

func TestFindCommandRequiresFile(t *testing.T) {
	_, err := execute(t, NewFindCommand(), "error")
	assert.Error(t, err)
}

func TestNewFormatCommand(t *testing.T) {
	cmd := NewFormatCommand()

	for _, flag := range []string{"set", "in-place", "write"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestFormatCommand(t *testing.T) {
	path := writeFile(t, "greet.txt", "Hello {name}, welcome to {place}.")

	out, err := execute(t, NewFormatCommand(), path, "--set", "name=Ada", "--set", "place=Oslo")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello Ada, welcome to Oslo.")

	// The pure mode leaves the source untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{name}")
}

func TestFormatCommandInPlace(t *testing.T) {
	path := writeFile(t, "greet.txt", "Hello {name}.")

	_, err := execute(t, NewFormatCommand(), path, "--set", "name=Ada", "--in-place")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada.", string(data))
}

func TestFormatCommandWrite(t *testing.T) {
	path := writeFile(t, "greet.txt", "Hello {name}.")
	outPath := filepath.Join(filepath.Dir(path), "out.txt")

	_, err := execute(t, NewFormatCommand(), path, "--set", "name=Ada", "--write", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada.", string(data))
}

func TestFormatCommandErrors(t *testing.T) {
	path := writeFile(t, "greet.txt", "Hello {name}.")

	_, err := execute(t, NewFormatCommand(), path, "--set", "no-equals")
	assert.Error(t, err)

	_, err = execute(t, NewFormatCommand(), path, "--in-place", "--write", "out.txt")
	assert.Error(t, err)
}

func TestNewSeedCommand(t *testing.T) {
	cmd := NewSeedCommand()

	assert.Equal(t, "seed <file>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("save"))
}

const seedFile = `---
name: readings
dimensions: [city]
units:
  temp: K
---
city,temp
oslo,270.5
lima,292.1
`

func TestSeedCommand(t *testing.T) {
	path := writeFile(t, "readings.csv", seedFile)

	out, err := execute(t, NewSeedCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "oslo")
	assert.Contains(t, out, "TEMP [K]")
	assert.Contains(t, out, "(2 rows)")
}

func TestSeedSaveAndFrames(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("readings.csv", []byte(seedFile), 0o644))

	_, err := execute(t, NewSeedCommand(), "readings.csv", "--save")
	require.NoError(t, err)

	out, err := execute(t, NewFramesCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "readings")

	out, err = execute(t, NewFramesCommand(), "show", "readings")
	require.NoError(t, err)
	assert.Contains(t, out, "oslo")

	out, err = execute(t, NewFramesCommand(), "rm", "readings")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed frame readings")

	_, err = execute(t, NewFramesCommand(), "rm", "readings")
	assert.Error(t, err)
}

func TestNewQueryCommand(t *testing.T) {
	cmd := NewQueryCommand()

	assert.Equal(t, "query <sql>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("save"))
}

func TestQueryCommandNoTarget(t *testing.T) {
	_, err := execute(t, NewQueryCommand(), "SELECT 1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no target configured")
}

func TestQueryCommandDuckDB(t *testing.T) {
	cfg := &config.Config{
		Output: "csv",
		Target: &config.TargetConfig{Type: "duckdb", Path: ":memory:"},
	}
	cfg.ApplyDefaults()

	cmd := NewQueryCommand()
	cmd.SetContext(WithConfig(context.Background(), cfg))

	out, err := execute(t, cmd, "SELECT 42 AS answer")
	require.NoError(t, err)
	assert.Contains(t, out, "answer")
	assert.Contains(t, out, "42")
}

func TestNewFramesCommand(t *testing.T) {
	cmd := NewFramesCommand()

	assert.Equal(t, "frames", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "rm")
}
