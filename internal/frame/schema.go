package frame

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies column values for schema validation.
type Kind int

const (
	KindAny Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "any"
	}
}

// kindOf maps a value to its Kind. Unknown types report KindAny and pass
// any kind constraint.
func kindOf(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case bool:
		return KindBool
	default:
		return KindAny
	}
}

// ColumnSpec describes one required column: what it holds, which kinds its
// values may have, and alternate names it may arrive under.
type ColumnSpec struct {
	Description string
	Kinds       []Kind
	Aliases     []string
}

// Schema maps required column names to their specs. Frames validated
// against a schema are guaranteed to carry every required column, with
// aliased columns renamed to their canonical names.
type Schema map[string]ColumnSpec

// MissingColumnError is returned when a frame lacks required columns.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Columns, ", "))
}

// Validate checks that f carries every required column, renaming aliases to
// canonical names first. Value kinds are checked against the spec's Kinds
// when given. The returned error names every missing column at once.
func (s Schema) Validate(f *Frame) error {
	var missing []string
	for name, spec := range s {
		if _, err := f.Column(name); err == nil {
			continue
		}
		found := false
		for _, alias := range spec.Aliases {
			if _, err := f.Column(alias); err == nil {
				if err := f.renameColumn(alias, name); err != nil {
					return err
				}
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnError{Columns: missing}
	}

	for name, spec := range s {
		if len(spec.Kinds) == 0 {
			continue
		}
		values, _ := f.Column(name)
		for i, v := range values {
			if v == nil {
				continue
			}
			if k := kindOf(v); k != KindAny && !containsKind(spec.Kinds, k) {
				return fmt.Errorf("column %q row %d: value kind %s not in %v", name, i, k, spec.Kinds)
			}
		}
	}
	return nil
}

// Describe returns the schema itself as a frame: one row per required
// column with its description, kinds, and aliases.
func (s Schema) Describe() *Frame {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	descs := make([]any, len(names))
	kinds := make([]any, len(names))
	aliases := make([]any, len(names))
	cols := make([]any, len(names))
	for i, name := range names {
		spec := s[name]
		cols[i] = name
		descs[i] = spec.Description
		kinds[i] = kindNames(spec.Kinds)
		aliases[i] = strings.Join(spec.Aliases, ", ")
	}

	f, _ := New([]Column{
		{Name: "column", Values: cols},
		{Name: "description", Values: descs},
		{Name: "kinds", Values: kinds},
		{Name: "aliases", Values: aliases},
	})
	return f
}

func kindNames(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k || c == KindAny {
			return true
		}
	}
	return false
}
