package ansicsi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name     string
		op       func(*Writer) error
		expected string
	}{
		{"up", func(w *Writer) error { return w.CursorUp(3) }, "\x1b[3A"},
		{"down", func(w *Writer) error { return w.CursorDown(2) }, "\x1b[2B"},
		{"forward", func(w *Writer) error { return w.CursorForward(7) }, "\x1b[7C"},
		{"back", func(w *Writer) error { return w.CursorBack(1) }, "\x1b[1D"},
		{"next line", func(w *Writer) error { return w.CursorNextLine(4) }, "\x1b[4E"},
		{"prev line", func(w *Writer) error { return w.CursorPrevLine(5) }, "\x1b[5F"},
		{"column", func(w *Writer) error { return w.CursorColumn(42) }, "\x1b[42G"},
		{"position", func(w *Writer) error { return w.CursorPosition(3, 5) }, "\x1b[3;5H"},
		{"scroll up", func(w *Writer) error { return w.ScrollUp(2) }, "\x1b[2S"},
		{"scroll down", func(w *Writer) error { return w.ScrollDown(6) }, "\x1b[6T"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.op(NewWriter(&buf)))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestRepeatCountNormalization(t *testing.T) {
	// Terminals read an explicit 0 as "use default", which is not the
	// same as 1 everywhere, so 0 and negative counts must come out as 1.
	tests := []struct {
		name     string
		op       func(*Writer) error
		expected string
	}{
		{"up zero", func(w *Writer) error { return w.CursorUp(0) }, "\x1b[1A"},
		{"down negative", func(w *Writer) error { return w.CursorDown(-3) }, "\x1b[1B"},
		{"column zero", func(w *Writer) error { return w.CursorColumn(0) }, "\x1b[1G"},
		{"position zero", func(w *Writer) error { return w.CursorPosition(0, 0) }, "\x1b[1;1H"},
		{"next line zero", func(w *Writer) error { return w.CursorNextLine(0) }, "\x1b[1E"},
		{"scroll up zero", func(w *Writer) error { return w.ScrollUp(0) }, "\x1b[1S"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.op(NewWriter(&buf)))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestEraseDisplay(t *testing.T) {
	tests := []struct {
		mode     EraseDisplayMode
		expected string
	}{
		{EraseDisplayToEnd, "\x1b[0J"},
		{EraseDisplayToStart, "\x1b[1J"},
		{EraseDisplayAll, "\x1b[2J"},
		{EraseDisplayAllAndScrollback, "\x1b[3J"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf).EraseDisplay(tc.mode))
		assert.Equal(t, tc.expected, buf.String())
	}
}

func TestEraseDisplayOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	assert.ErrorIs(t, w.EraseDisplay(4), ErrInvalidParameter)
	assert.ErrorIs(t, w.EraseDisplay(-1), ErrInvalidParameter)
	assert.Zero(t, buf.Len(), "invalid mode must not reach the terminal")
}

func TestEraseLine(t *testing.T) {
	tests := []struct {
		mode     EraseLineMode
		expected string
	}{
		{EraseLineToEnd, "\x1b[0K"},
		{EraseLineToStart, "\x1b[1K"},
		{EraseLineAll, "\x1b[2K"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf).EraseLine(tc.mode))
		assert.Equal(t, tc.expected, buf.String())
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, NewWriter(&buf).EraseLine(3), ErrInvalidParameter)
	assert.Zero(t, buf.Len())
}

func TestSaveRestoreCursor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.SaveCursor())
	require.NoError(t, w.RestoreCursor())
	assert.Equal(t, "\x1b[s\x1b[u", buf.String())
}

func TestSetResetMode(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.SetMode(4))
	require.NoError(t, w.ResetMode(4))
	assert.Equal(t, "\x1b[4h\x1b[4l", buf.String())
}

func TestSetCursorStyle(t *testing.T) {
	tests := []struct {
		style    CursorStyle
		expected string
	}{
		{CursorStyleBlinkingBlock, "\x1b[1 q"},
		{CursorStyleSteadyBlock, "\x1b[2 q"},
		{CursorStyleBlinkingUnderline, "\x1b[3 q"},
		{CursorStyleSteadyUnderline, "\x1b[4 q"},
		{CursorStyleBlinkingBar, "\x1b[5 q"},
		{CursorStyleSteadyBar, "\x1b[6 q"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf).SetCursorStyle(tc.style))
		assert.Equal(t, tc.expected, buf.String())
	}
}

func TestSetCursorStyleOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	assert.ErrorIs(t, w.SetCursorStyle(0), ErrInvalidParameter)
	assert.ErrorIs(t, w.SetCursorStyle(7), ErrInvalidParameter)
	assert.Zero(t, buf.Len())
}

func TestDeviceStatusReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).DeviceStatusReport())
	assert.Equal(t, "\x1b[6n", buf.String())
}

type failWriter struct {
	err error
}

func (f *failWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func TestWriteErrorPropagates(t *testing.T) {
	sinkErr := errors.New("sink gone")
	w := NewWriter(&failWriter{err: sinkErr})

	assert.ErrorIs(t, w.CursorUp(1), sinkErr)
	assert.ErrorIs(t, w.EraseDisplay(EraseDisplayAll), sinkErr)
	assert.ErrorIs(t, w.SGR(Bold), sinkErr)
	assert.ErrorIs(t, w.SaveCursor(), sinkErr)
}
