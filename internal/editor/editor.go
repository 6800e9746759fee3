// Package editor provides an in-memory, line-oriented view over text.
// An Editor abstracts over how the text was obtained (plain or compressed
// files, strings, readers, line slices, other editors) and supports indexed
// access, mutation, placeholder formatting, substring search, and round-trip
// writing.
package editor

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnsupportedSource is returned by New when the source value is not one
// of the supported kinds.
var ErrUnsupportedSource = errors.New("unsupported editor source")

// Editor holds an ordered sequence of text lines. The zero value is an empty
// editor. Lines are joined with "\n" on output, so an unmodified editor
// reproduces its source text exactly.
type Editor struct {
	lines    []string
	encoding string
}

// Option configures construction from files and readers.
type Option func(*options)

type options struct {
	encoding string
}

// WithEncoding sets the character encoding used to decode file and reader
// sources (IANA name, e.g. "iso-8859-1"). The default is UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// New constructs an Editor from any supported source kind:
//
//   - *Editor: deep copy
//   - string: a filesystem path if one exists at that value, otherwise raw text
//   - []string: pre-split lines
//   - io.Reader: stream contents
//
// Any other dynamic type returns ErrUnsupportedSource. Prefer the named
// constructors when the source kind is known statically.
func New(src any, opts ...Option) (*Editor, error) {
	switch v := src.(type) {
	case *Editor:
		return FromEditor(v), nil
	case string:
		if isFilePath(v) {
			return FromFile(v, opts...)
		}
		return FromString(v), nil
	case []string:
		return FromLines(v), nil
	case io.Reader:
		return FromReader(v, opts...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
}

// FromFile loads an editor from a file. Files ending in ".gz" or ".bz2" are
// decompressed transparently; everything else is read as plain text.
func FromFile(path string, opts ...Option) (*Editor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(f)
	}

	return FromReader(r, opts...)
}

// FromReader loads an editor by reading r to EOF.
func FromReader(r io.Reader, opts ...Option) (*Editor, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.encoding != "" {
		dec, err := decoderFor(o.encoding)
		if err != nil {
			return nil, err
		}
		r = transform.NewReader(r, dec)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	return &Editor{lines: splitLines(string(data)), encoding: o.encoding}, nil
}

// FromString builds an editor over raw text.
func FromString(text string) *Editor {
	return &Editor{lines: splitLines(text)}
}

// FromLines builds an editor over a pre-split line sequence. The slice is
// copied, so later mutation of lines does not affect the editor.
func FromLines(lines []string) *Editor {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Editor{lines: cp}
}

// FromEditor returns an independent deep copy of other.
func FromEditor(other *Editor) *Editor {
	return other.Copy()
}

// Copy returns an editor with the same line content and independent storage.
func (e *Editor) Copy() *Editor {
	cp := make([]string, len(e.lines))
	copy(cp, e.lines)
	return &Editor{lines: cp, encoding: e.encoding}
}

// Len returns the number of lines.
func (e *Editor) Len() int {
	return len(e.lines)
}

// String joins all lines with newlines. For an unmodified editor this is
// byte-identical to the source text.
func (e *Editor) String() string {
	return strings.Join(e.lines, "\n")
}

// Lines returns a copy of the line sequence. Ranging over the result yields
// lines in order; each call starts from line 0.
func (e *Editor) Lines() []string {
	cp := make([]string, len(e.lines))
	copy(cp, e.lines)
	return cp
}

// Line returns a single-line editor holding line i.
func (e *Editor) Line(i int) (*Editor, error) {
	if err := e.check(i); err != nil {
		return nil, err
	}
	return &Editor{lines: []string{e.lines[i]}, encoding: e.encoding}, nil
}

// Slice returns an editor holding the inclusive line range [i, j] in source
// order.
func (e *Editor) Slice(i, j int) (*Editor, error) {
	if err := e.check(i); err != nil {
		return nil, err
	}
	if err := e.check(j); err != nil {
		return nil, err
	}
	if j < i {
		return nil, fmt.Errorf("invalid line range [%d, %d]", i, j)
	}
	cp := make([]string, j-i+1)
	copy(cp, e.lines[i:j+1])
	return &Editor{lines: cp, encoding: e.encoding}, nil
}

// SetLine replaces the text of line i.
func (e *Editor) SetLine(i int, text string) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.lines[i] = text
	return nil
}

// DeleteLine removes line i, shifting subsequent lines down by one.
func (e *Editor) DeleteLine(i int) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
	return nil
}

// Contains reports whether probe is a string occurring as a literal
// substring of at least one line. Non-string probes return false.
func (e *Editor) Contains(probe any) bool {
	s, ok := probe.(string)
	if !ok {
		return false
	}
	for _, line := range e.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// Write serializes the current lines, joined by newline, to path, creating
// or overwriting the file.
func (e *Editor) Write(path string) error {
	if err := os.WriteFile(path, []byte(e.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// previewEdge is how many leading and trailing lines Preview shows for
// large editors.
const previewEdge = 20

// Preview returns a numbered, possibly truncated listing of the editor's
// content. It never fails, regardless of line count.
func (e *Editor) Preview() string {
	n := len(e.lines)
	width := len(fmt.Sprint(n))

	var b strings.Builder
	writeLine := func(i int) {
		fmt.Fprintf(&b, "%*d: %s\n", width, i, e.lines[i])
	}

	if n <= 2*previewEdge {
		for i := range e.lines {
			writeLine(i)
		}
		return b.String()
	}

	for i := 0; i < previewEdge; i++ {
		writeLine(i)
	}
	fmt.Fprintf(&b, "%*s\n", width+1, "...")
	for i := n - previewEdge; i < n; i++ {
		writeLine(i)
	}
	return b.String()
}

func (e *Editor) check(i int) error {
	if i < 0 || i >= len(e.lines) {
		return fmt.Errorf("line %d out of range [0, %d)", i, len(e.lines))
	}
	return nil
}

// splitLines splits on "\n" only. Keeping carriage returns and empty
// trailing segments intact makes String() an exact inverse.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// isFilePath reports whether s plausibly names an existing file. Text with
// newlines is never a path.
func isFilePath(s string) bool {
	if s == "" || strings.ContainsRune(s, '\n') {
		return false
	}
	info, err := os.Stat(s)
	return err == nil && !info.IsDir()
}

func decoderFor(name string) (transform.Transformer, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// ianaindex maps some registered but unimplemented names to nil.
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc.NewDecoder(), nil
}
