package frame

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Generator describes how a field's dimensions are produced: a function
// label and the fixed parameters defining the space. The descriptor is
// carried as metadata only; dimension values are never materialized here.
type Generator struct {
	Fn     string
	Params []float64
}

// Field is a frame of values whose dimensions are implicit: instead of
// storing dimension columns, the field stores a Generator describing them.
type Field struct {
	*Frame
	gen Generator
}

// NewField builds a field from its value columns and a dimension generator.
func NewField(values []Column, gen Generator, opts ...Option) (*Field, error) {
	if gen.Fn == "" {
		return nil, fmt.Errorf("field requires a dimension generator function label")
	}
	f, err := New(values, opts...)
	if err != nil {
		return nil, err
	}
	return &Field{Frame: f, gen: gen}, nil
}

// Generator returns the dimension generator descriptor.
func (f *Field) Generator() Generator {
	return Generator{Fn: f.gen.Fn, Params: slices.Clone(f.gen.Params)}
}

// FieldCollection holds an ordered set of fields under one identity.
type FieldCollection struct {
	name   string
	uid    uuid.UUID
	meta   map[string]any
	fields []*Field
}

// NewFieldCollection creates a collection holding the given fields.
func NewFieldCollection(name string, fields ...*Field) *FieldCollection {
	return &FieldCollection{
		name:   name,
		uid:    uuid.New(),
		meta:   map[string]any{},
		fields: slices.Clone(fields),
	}
}

// Name returns the collection name.
func (c *FieldCollection) Name() string { return c.name }

// UID returns the collection's unique id.
func (c *FieldCollection) UID() uuid.UUID { return c.uid }

// Meta returns the collection's metadata mapping.
func (c *FieldCollection) Meta() map[string]any { return c.meta }

// Len returns the number of fields.
func (c *FieldCollection) Len() int { return len(c.fields) }

// Field returns the i-th field in insertion order.
func (c *FieldCollection) Field(i int) *Field { return c.fields[i] }

// AddField builds a field from a generator label, its parameters, and value
// columns, and appends it to the collection.
func (c *FieldCollection) AddField(fn string, params []float64, values []Column) error {
	field, err := NewField(values, Generator{Fn: fn, Params: params})
	if err != nil {
		return fmt.Errorf("failed to add field: %w", err)
	}
	c.fields = append(c.fields, field)
	return nil
}
