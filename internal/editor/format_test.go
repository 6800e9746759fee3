package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPure(t *testing.T) {
	ed := FromString(testText)

	formatted := ed.Format(map[string]string{"tmp": "new"})
	assert.Equal(t, "Example text, new,\nused to test the editor.", formatted.String())
	assert.Equal(t, testText, ed.String(), "Format must not mutate the receiver")
	assert.NotSame(t, ed, formatted)
}

func TestFormatIdentityNoOp(t *testing.T) {
	ed := FromString(testText)

	assert.Same(t, ed, ed.Format(nil))
	assert.Same(t, ed, ed.Format(map[string]string{}))
	assert.Equal(t, testText, ed.String())
}

func TestFormatInPlace(t *testing.T) {
	ed := FromString(testText)

	back := ed.FormatInPlace(map[string]string{"tmp": "new"})
	assert.Same(t, ed, back)
	assert.Equal(t, "Example text, new,\nused to test the editor.", ed.String())
}

func TestFormatUnknownPlaceholderLeftIntact(t *testing.T) {
	ed := FromString("{a} and {b}")

	formatted := ed.Format(map[string]string{"a": "1"})
	assert.Equal(t, "1 and {b}", formatted.String())
}

func TestFormatMultiplePlaceholders(t *testing.T) {
	ed := FromString("{x} {y}\n{x}")

	formatted := ed.Format(map[string]string{"x": "1", "y": "2"})
	assert.Equal(t, "1 2\n1", formatted.String())
}

func TestFormatChaining(t *testing.T) {
	ed := FromString("{a} {b}")

	got := ed.FormatInPlace(map[string]string{"a": "1"}).
		FormatInPlace(map[string]string{"b": "2"})
	require.Same(t, ed, got)
	assert.Equal(t, "1 2", ed.String())
}
