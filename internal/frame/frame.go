// Package frame provides a column-oriented table for multi-featured,
// explicitly multi-dimensional data. A Frame carries a unique id, free-form
// metadata, named dimension columns, and per-column units on top of its
// tabular content. Columns may be declared required through a Schema.
package frame

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
)

// Column is a named, ordered sequence of values.
type Column struct {
	Name   string
	Values []any
}

// Frame is a table whose columns all have equal length. Dimensions describe
// the extent of the space the data occupies (e.g. coordinates); the
// remaining columns are features, measured or derived quantities at points
// in that space.
type Frame struct {
	name  string
	uid   uuid.UUID
	meta  map[string]any
	cols  []string
	data  map[string][]any
	dims  []string
	units map[string]string
}

// Option configures Frame construction.
type Option func(*Frame) error

// WithName sets the frame name.
func WithName(name string) Option {
	return func(f *Frame) error {
		f.name = name
		return nil
	}
}

// WithUID sets an explicit unique id. Without this option a random id is
// generated.
func WithUID(id uuid.UUID) Option {
	return func(f *Frame) error {
		f.uid = id
		return nil
	}
}

// WithMeta sets the metadata mapping. The frame owns the map afterwards.
func WithMeta(meta map[string]any) Option {
	return func(f *Frame) error {
		f.meta = meta
		return nil
	}
}

// WithDimensions declares which columns are dimensions. Every name must
// refer to an existing column.
func WithDimensions(names ...string) Option {
	return func(f *Frame) error {
		for _, name := range names {
			if _, ok := f.data[name]; !ok {
				return fmt.Errorf("dimension %q is not a column", name)
			}
		}
		f.dims = slices.Clone(names)
		return nil
	}
}

// WithUnits attaches units to columns. Every key must refer to an existing
// column.
func WithUnits(units map[string]string) Option {
	return func(f *Frame) error {
		for name := range units {
			if _, ok := f.data[name]; !ok {
				return fmt.Errorf("unit refers to unknown column %q", name)
			}
		}
		f.units = units
		return nil
	}
}

// New builds a frame from ordered columns. All columns must have distinct
// names and equal lengths.
func New(cols []Column, opts ...Option) (*Frame, error) {
	f := &Frame{
		uid:   uuid.New(),
		data:  make(map[string][]any, len(cols)),
		units: map[string]string{},
	}

	rows := -1
	for _, col := range cols {
		if _, ok := f.data[col.Name]; ok {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if rows >= 0 && len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", col.Name, len(col.Values), rows)
		}
		rows = len(col.Values)
		f.cols = append(f.cols, col.Name)
		f.data[col.Name] = slices.Clone(col.Values)
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.meta == nil {
		f.meta = map[string]any{}
	}
	return f, nil
}

// Name returns the frame name.
func (f *Frame) Name() string { return f.name }

// SetName renames the frame.
func (f *Frame) SetName(name string) { f.name = name }

// UID returns the frame's unique id.
func (f *Frame) UID() uuid.UUID { return f.uid }

// Meta returns the frame's owned metadata mapping. Mutations are visible to
// the frame but never to copies derived from it.
func (f *Frame) Meta() map[string]any { return f.meta }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.data[f.cols[0]])
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return slices.Clone(f.cols) }

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]any, error) {
	values, ok := f.data[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return values, nil
}

// Row returns row i as a column-name-to-value mapping.
func (f *Frame) Row(i int) (map[string]any, error) {
	if i < 0 || i >= f.NumRows() {
		return nil, fmt.Errorf("row %d out of range [0, %d)", i, f.NumRows())
	}
	row := make(map[string]any, len(f.cols))
	for _, name := range f.cols {
		row[name] = f.data[name][i]
	}
	return row, nil
}

// Dimensions returns the names of the dimension columns, in declaration
// order.
func (f *Frame) Dimensions() []string { return slices.Clone(f.dims) }

// Features returns the names of all non-dimension columns, in column order.
func (f *Frame) Features() []string {
	features := make([]string, 0, len(f.cols))
	for _, name := range f.cols {
		if !slices.Contains(f.dims, name) {
			features = append(features, name)
		}
	}
	return features
}

// Unit returns the unit attached to a column, if any.
func (f *Frame) Unit(name string) (string, bool) {
	u, ok := f.units[name]
	return u, ok
}

// Units returns a copy of the column-to-unit mapping.
func (f *Frame) Units() map[string]string {
	units := make(map[string]string, len(f.units))
	for k, v := range f.units {
		units[k] = v
	}
	return units
}

// AddColumn appends a column. Its length must match the current row count
// unless the frame has no columns yet.
func (f *Frame) AddColumn(name string, values []any) error {
	if _, ok := f.data[name]; ok {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(f.cols) > 0 && len(values) != f.NumRows() {
		return fmt.Errorf("column %q has %d values, want %d", name, len(values), f.NumRows())
	}
	f.cols = append(f.cols, name)
	f.data[name] = slices.Clone(values)
	return nil
}

// renameColumn moves a column to a new name, preserving order, dimension
// membership, and units. Used by schema alias resolution.
func (f *Frame) renameColumn(from, to string) error {
	values, ok := f.data[from]
	if !ok {
		return fmt.Errorf("unknown column %q", from)
	}
	if _, exists := f.data[to]; exists {
		return fmt.Errorf("cannot rename %q: column %q already exists", from, to)
	}
	delete(f.data, from)
	f.data[to] = values
	f.cols[slices.Index(f.cols, from)] = to
	if i := slices.Index(f.dims, from); i >= 0 {
		f.dims[i] = to
	}
	if u, ok := f.units[from]; ok {
		delete(f.units, from)
		f.units[to] = u
	}
	return nil
}

// Copy returns a frame with the same content, identity, and an owned,
// deep-copied metadata record. Mutating the copy's data, meta, units, or
// dimensions never affects the original.
func (f *Frame) Copy() *Frame {
	cp := &Frame{
		name:  f.name,
		uid:   f.uid,
		meta:  copyMeta(f.meta),
		cols:  slices.Clone(f.cols),
		data:  make(map[string][]any, len(f.data)),
		dims:  slices.Clone(f.dims),
		units: make(map[string]string, len(f.units)),
	}
	for name, values := range f.data {
		cp.data[name] = slices.Clone(values)
	}
	for k, v := range f.units {
		cp.units[k] = v
	}
	return cp
}

// Head returns a copy restricted to the first n rows.
func (f *Frame) Head(n int) *Frame {
	if n > f.NumRows() {
		n = f.NumRows()
	}
	cp := f.Copy()
	for name, values := range cp.data {
		cp.data[name] = values[:n]
	}
	return cp
}

// Select returns a copy holding only the named columns, in the given order.
// Dimension membership and units are kept for columns that survive.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cp := &Frame{
		name:  f.name,
		uid:   f.uid,
		meta:  copyMeta(f.meta),
		data:  make(map[string][]any, len(names)),
		units: map[string]string{},
	}
	for _, name := range names {
		values, ok := f.data[name]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		cp.cols = append(cp.cols, name)
		cp.data[name] = slices.Clone(values)
		if u, ok := f.units[name]; ok {
			cp.units[name] = u
		}
	}
	for _, dim := range f.dims {
		if slices.Contains(cp.cols, dim) {
			cp.dims = append(cp.dims, dim)
		}
	}
	return cp, nil
}

// Equal reports whether two frames have identical columns, values,
// dimensions, and units. Name, uid, and metadata are identity, not content,
// and are ignored.
func (f *Frame) Equal(other *Frame) bool {
	return slices.Equal(f.cols, other.cols) &&
		slices.Equal(f.dims, other.dims) &&
		reflect.DeepEqual(f.data, other.data) &&
		reflect.DeepEqual(f.Units(), other.Units())
}

func copyMeta(meta map[string]any) map[string]any {
	cp := make(map[string]any, len(meta))
	for k, v := range meta {
		cp[k] = v
	}
	return cp
}
