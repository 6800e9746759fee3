// Package seed loads tabular seed files into frames. A seed file is a CSV
// body with an optional leading YAML frontmatter block declaring the frame
// name, dimension columns, units, and metadata:
//
//	---
//	name: weather
//	dimensions: [lon, lat]
//	units: {temp: K}
//	meta: {source: station-12}
//	---
//	lon,lat,temp
//	-71.1,42.3,290.0
package seed

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sciframe-io/sciframe/internal/editor"
	"github.com/sciframe-io/sciframe/internal/frame"
)

// Frontmatter is the YAML block at the top of a seed file. Unknown fields
// cause parse errors.
type Frontmatter struct {
	Name       string            `yaml:"name"`
	Dimensions []string          `yaml:"dimensions"`
	Units      map[string]string `yaml:"units"`
	Meta       map[string]any    `yaml:"meta"`
}

// frontmatterPattern matches a leading --- ... --- block.
var frontmatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)

// LoadFile loads a seed file (plain or compressed, per the editor's source
// handling) into a frame. When the frontmatter declares no name, the file's
// base name without extension is used.
func LoadFile(path string, opts ...editor.Option) (*frame.Frame, error) {
	ed, err := editor.FromFile(path, opts...)
	if err != nil {
		return nil, err
	}

	f, err := Parse(ed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed %s: %w", path, err)
	}
	if f.Name() == "" {
		base := filepath.Base(path)
		f.SetName(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return f, nil
}

// Parse builds a frame from seed content held by an editor.
func Parse(ed *editor.Editor) (*frame.Frame, error) {
	content := ed.String()

	var fm Frontmatter
	if m := frontmatterPattern.FindStringSubmatch(content); m != nil {
		parsed, err := parseFrontmatter(m[1])
		if err != nil {
			return nil, err
		}
		fm = *parsed
		content = frontmatterPattern.ReplaceAllString(content, "")
	}

	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV body: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("seed has no header row")
	}

	header := records[0]
	cols := make([]frame.Column, len(header))
	for i, name := range header {
		values := make([]any, 0, len(records)-1)
		for _, record := range records[1:] {
			values = append(values, parseValue(record[i]))
		}
		cols[i] = frame.Column{Name: strings.TrimSpace(name), Values: values}
	}

	opts := []frame.Option{frame.WithName(fm.Name)}
	if fm.Meta != nil {
		opts = append(opts, frame.WithMeta(fm.Meta))
	}
	if len(fm.Dimensions) > 0 {
		opts = append(opts, frame.WithDimensions(fm.Dimensions...))
	}
	if len(fm.Units) > 0 {
		opts = append(opts, frame.WithUnits(fm.Units))
	}
	return frame.New(cols, opts...)
}

// parseFrontmatter decodes the YAML block, rejecting unknown fields.
func parseFrontmatter(content string) (*Frontmatter, error) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("invalid frontmatter YAML: %w", err)
	}
	for key := range raw {
		switch key {
		case "name", "dimensions", "units", "meta":
		default:
			return nil, fmt.Errorf("unknown frontmatter field %q", key)
		}
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(content), &fm); err != nil {
		return nil, fmt.Errorf("invalid frontmatter YAML: %w", err)
	}
	return &fm, nil
}

// parseValue infers a cell's type: int, then float, then bool, else string.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
