package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coordSchema = Schema{
	"x": {Description: "x coordinate", Kinds: []Kind{KindFloat}, Aliases: []string{"X", "xcoord"}},
	"y": {Description: "y coordinate", Kinds: []Kind{KindFloat}},
	"label": {
		Description: "point label",
		Kinds:       []Kind{KindString},
	},
}

func TestSchemaValidateOK(t *testing.T) {
	f, err := New([]Column{
		{Name: "x", Values: []any{1.0, 2.0}},
		{Name: "y", Values: []any{3.0, 4.0}},
		{Name: "label", Values: []any{"a", "b"}},
	})
	require.NoError(t, err)

	assert.NoError(t, coordSchema.Validate(f))
}

func TestSchemaValidateMissing(t *testing.T) {
	f, err := New([]Column{{Name: "x", Values: []any{1.0}}})
	require.NoError(t, err)

	err = coordSchema.Validate(f)
	require.Error(t, err)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"label", "y"}, missing.Columns, "all missing columns reported at once, sorted")
	assert.Contains(t, err.Error(), "missing required column(s)")
}

func TestSchemaAliasResolution(t *testing.T) {
	f, err := New([]Column{
		{Name: "xcoord", Values: []any{1.0}},
		{Name: "y", Values: []any{2.0}},
		{Name: "label", Values: []any{"a"}},
	})
	require.NoError(t, err)

	require.NoError(t, coordSchema.Validate(f))
	assert.Equal(t, []string{"x", "y", "label"}, f.Columns(), "alias renamed in place")
}

func TestSchemaKindCheck(t *testing.T) {
	f, err := New([]Column{
		{Name: "x", Values: []any{"not a float"}},
		{Name: "y", Values: []any{2.0}},
		{Name: "label", Values: []any{"a"}},
	})
	require.NoError(t, err)

	assert.Error(t, coordSchema.Validate(f))
}

func TestSchemaKindCheckSkipsNil(t *testing.T) {
	f, err := New([]Column{
		{Name: "x", Values: []any{nil}},
		{Name: "y", Values: []any{nil}},
		{Name: "label", Values: []any{nil}},
	})
	require.NoError(t, err)

	assert.NoError(t, coordSchema.Validate(f))
}

func TestSchemaDescribe(t *testing.T) {
	info := coordSchema.Describe()

	assert.Equal(t, []string{"column", "description", "kinds", "aliases"}, info.Columns())
	assert.Equal(t, 3, info.NumRows())

	names, err := info.Column("column")
	require.NoError(t, err)
	assert.Equal(t, []any{"label", "x", "y"}, names)
}
