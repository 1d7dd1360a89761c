package ansicsi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStyle(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{
			name:     "default resets everything",
			style:    Style{},
			expected: "\x1b[0m",
		},
		{
			name:     "bold",
			style:    Style{Bold: true},
			expected: "\x1b[0;1m",
		},
		{
			name:     "bold underline inverse",
			style:    Style{Bold: true, Underline: true, Inverse: true},
			expected: "\x1b[0;1;4;7m",
		},
		{
			name:     "palette foreground",
			style:    Style{Foreground: PaletteColor(196)},
			expected: "\x1b[0;38;5;196m",
		},
		{
			name:     "rgb background",
			style:    Style{Background: RGBColor(40, 44, 52)},
			expected: "\x1b[0;48;2;40;44;52m",
		},
		{
			name: "everything at once",
			style: Style{
				Foreground:    RGBColor(1, 2, 3),
				Background:    PaletteColor(8),
				Faint:         true,
				Italic:        true,
				Blink:         true,
				Invisible:     true,
				Strikethrough: true,
			},
			expected: "\x1b[0;2;3;5;8;9;38;2;1;2;3;48;5;8m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(&buf).SetStyle(tc.style))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestStyleIsDefault(t *testing.T) {
	assert.True(t, Style{}.IsDefault())
	assert.False(t, Style{Bold: true}.IsDefault())
	assert.False(t, Style{Foreground: PaletteColor(0)}.IsDefault())
}

func TestStyleHashAndEquals(t *testing.T) {
	a := Style{Bold: true, Foreground: PaletteColor(2)}
	b := Style{Bold: true, Foreground: PaletteColor(2)}
	c := Style{Bold: true, Foreground: PaletteColor(3)}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equals(b))

	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equals(c))
}
