// Package ansicsi formats ANSI/VT100 CSI (Control Sequence Introducer)
// control sequences for cursor movement, erasure, scrolling, terminal
// modes, text rendition and cursor-position reporting.
//
// Sequences are written to any io.Writer through a single Writer wrapper.
// Every sequence starts with ESC (0x1b) followed by '[' and ends with a
// final byte that selects the operation; the parameter grammar is the one
// terminal emulators actually parse, so the byte output of each method is
// exact and stable.
//
// Reference: https://vt100.net/docs/vt510-rm/chapter4.html and
// https://en.wikipedia.org/wiki/ANSI_escape_code#CSI_(Control_Sequence_Introducer)_sequences
package ansicsi

import (
	"errors"
	"fmt"
	"io"
)

// CSI is the two byte prefix opening most terminal control sequences.
const CSI = "\x1b["

// ErrInvalidParameter reports a discrete parameter outside its defined
// range (erase modes, cursor styles). Nothing is written to the terminal
// when it is returned; swallowing the value silently would leave the
// caller guessing why nothing happened.
var ErrInvalidParameter = errors.New("ansicsi: invalid parameter")

// EraseDisplayMode selects what part of the screen ED clears.
type EraseDisplayMode int

const (
	// EraseDisplayToEnd clears from the cursor to the end of the screen.
	EraseDisplayToEnd EraseDisplayMode = iota
	// EraseDisplayToStart clears from the cursor to the beginning of the
	// screen.
	EraseDisplayToStart
	// EraseDisplayAll clears the entire screen.
	EraseDisplayAll
	// EraseDisplayAllAndScrollback also drops lines saved in the
	// scrollback buffer. xterm extension, widely supported.
	EraseDisplayAllAndScrollback
)

// EraseLineMode selects what part of the current line EL clears. The
// cursor position does not change.
type EraseLineMode int

const (
	EraseLineToEnd EraseLineMode = iota
	EraseLineToStart
	EraseLineAll
)

// CursorStyle is a DECSCUSR cursor shape.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota + 1
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Writer emits CSI sequences to an underlying byte sink. It is stateless;
// the zero cost of constructing one means it can be created per call site
// or kept for the life of the program. Writes are not retried: the first
// I/O error is returned as-is and the sequence may be partially written.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w, conventionally the process's standard output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// nz normalizes a repeat count. Terminals interpret an explicit 0 as "use
// the default", which some emulators treat differently from an explicit
// 1, so zero and negative counts are pinned to 1 before the sequence is
// built.
func nz(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (w *Writer) csi(format string, args ...any) error {
	_, err := fmt.Fprintf(w.w, CSI+format, args...)
	return err
}

// CursorUp moves the cursor up n rows (CUU).
func (w *Writer) CursorUp(n int) error {
	return w.csi("%dA", nz(n))
}

// CursorDown moves the cursor down n rows (CUD).
func (w *Writer) CursorDown(n int) error {
	return w.csi("%dB", nz(n))
}

// CursorForward moves the cursor right n columns (CUF).
func (w *Writer) CursorForward(n int) error {
	return w.csi("%dC", nz(n))
}

// CursorBack moves the cursor left n columns (CUB).
func (w *Writer) CursorBack(n int) error {
	return w.csi("%dD", nz(n))
}

// CursorNextLine moves the cursor to the first column, n rows down (CNL).
func (w *Writer) CursorNextLine(n int) error {
	return w.csi("%dE", nz(n))
}

// CursorPrevLine moves the cursor to the first column, n rows up (CPL).
func (w *Writer) CursorPrevLine(n int) error {
	return w.csi("%dF", nz(n))
}

// CursorColumn moves the cursor to absolute column n (CHA). Columns are
// 1-based.
func (w *Writer) CursorColumn(n int) error {
	return w.csi("%dG", nz(n))
}

// CursorPosition moves the cursor to the absolute 1-based row and column
// (CUP). (1,1) is the top left corner.
func (w *Writer) CursorPosition(row, col int) error {
	return w.csi("%d;%dH", nz(row), nz(col))
}

// EraseDisplay clears part of the screen (ED). Mode 0 is a valid value
// with its own meaning, so no normalization happens here; a mode outside
// 0..3 returns ErrInvalidParameter and writes nothing.
func (w *Writer) EraseDisplay(mode EraseDisplayMode) error {
	if mode < EraseDisplayToEnd || mode > EraseDisplayAllAndScrollback {
		return fmt.Errorf("%w: erase display mode %d", ErrInvalidParameter, mode)
	}
	return w.csi("%dJ", int(mode))
}

// EraseLine clears part of the current line (EL). A mode outside 0..2
// returns ErrInvalidParameter and writes nothing.
func (w *Writer) EraseLine(mode EraseLineMode) error {
	if mode < EraseLineToEnd || mode > EraseLineAll {
		return fmt.Errorf("%w: erase line mode %d", ErrInvalidParameter, mode)
	}
	return w.csi("%dK", int(mode))
}

// ScrollUp scrolls the scroll region up n lines, adding blank lines at
// the bottom (SU).
func (w *Writer) ScrollUp(n int) error {
	return w.csi("%dS", nz(n))
}

// ScrollDown scrolls the scroll region down n lines, adding blank lines
// at the top (SD).
func (w *Writer) ScrollDown(n int) error {
	return w.csi("%dT", nz(n))
}

// SaveCursor saves the current cursor position (SCP).
func (w *Writer) SaveCursor() error {
	return w.csi("s")
}

// RestoreCursor moves the cursor back to the last saved position (RCP).
func (w *Writer) RestoreCursor() error {
	return w.csi("u")
}

// SetMode sets terminal mode n (SM). The mode number is written verbatim;
// see https://vt100.net/docs/vt510-rm/SM.html for the defined values.
func (w *Writer) SetMode(n int) error {
	return w.csi("%dh", n)
}

// ResetMode resets terminal mode n (RM).
func (w *Writer) ResetMode(n int) error {
	return w.csi("%dl", n)
}

// SetCursorStyle changes the cursor shape (DECSCUSR). Note the space
// before the final 'q'; it is part of the sequence. A style outside 1..6
// returns ErrInvalidParameter and writes nothing.
func (w *Writer) SetCursorStyle(s CursorStyle) error {
	if s < CursorStyleBlinkingBlock || s > CursorStyleSteadyBar {
		return fmt.Errorf("%w: cursor style %d", ErrInvalidParameter, s)
	}
	return w.csi("%d q", int(s))
}

// DeviceStatusReport asks the terminal for its cursor position (DSR 6).
// The terminal answers asynchronously on its input stream with
// ESC [ row ; col R; use Reporter to send the query and parse the reply
// in one step.
func (w *Writer) DeviceStatusReport() error {
	return w.csi("6n")
}
