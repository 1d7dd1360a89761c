package ansicsi

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	xterm "golang.org/x/term"

	"github.com/hnimtadd/ansicsi/logger"
	"github.com/hnimtadd/ansicsi/term"
)

var (
	// ErrNoReply means the input stream ended before a complete cursor
	// report arrived. This is distinct from a reply of (0,0); absence of
	// a reply is never folded into a zero position.
	ErrNoReply = errors.New("ansicsi: input closed before cursor report arrived")

	// ErrTimeout means the terminal did not answer the DSR query within
	// the caller's deadline. Typical cause: the output sink is not
	// actually connected to a terminal emulator.
	ErrTimeout = errors.New("ansicsi: timed out waiting for cursor report")
)

// Position is a cursor position reported by the terminal. Row and Col
// are 1-based; (1,1) is the top left corner.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Reporter asks a terminal where its cursor is. It writes the DSR query
// to Output and parses the reply the emulator sends back on Input,
// `ESC [ row ; col R` in ASCII digits.
//
// When Input is a real terminal, local echo is suppressed while the reply
// is in flight so the report bytes are not painted on screen, and the
// previous line-discipline settings are restored before Position returns,
// on every exit path.
type Reporter struct {
	// Output is where the query goes, conventionally the process's
	// standard output. If it implements Flush, the query is flushed
	// before the reply is awaited.
	Output io.Writer

	// Input carries the terminal's reply, conventionally standard input.
	Input io.Reader

	// Logger receives a debug record per reply byte that is skipped
	// during parsing. Nil means no logging.
	Logger logger.Logger
}

type flusher interface {
	Flush() error
}

// reply scanner states. The reply is two decimal values: digits before
// the ';' are the row, digits after it up to the terminating 'R' are the
// column.
type scanState int

const (
	scanRow scanState = iota
	scanCol
)

// Position sends the DSR query and waits for the terminal's answer.
//
// The timeout is mandatory: a terminal that is not really there never
// answers, and an unbounded block here hangs the caller. A non-positive
// timeout is rejected with ErrInvalidParameter; an expired one yields
// ErrTimeout. On timeout the in-flight read on Input is abandoned — its
// goroutine exits as soon as the stream produces another byte or closes.
func (r *Reporter) Position(timeout time.Duration) (Position, error) {
	if timeout <= 0 {
		return Position{}, fmt.Errorf("%w: non-positive timeout %v", ErrInvalidParameter, timeout)
	}

	log := r.Logger
	if log == nil {
		log = logger.Nop
	}

	// Suppress echo while the reply is in flight. Only possible (and
	// only needed) when the input really is a terminal; plain readers
	// in tests take the direct path.
	if f, ok := r.Input.(*os.File); ok && xterm.IsTerminal(int(f.Fd())) {
		snap, err := term.DisableEcho(int(f.Fd()))
		if err != nil {
			return Position{}, fmt.Errorf("ansicsi: disable echo: %w", err)
		}
		defer snap.Restore()
	}

	w := NewWriter(r.Output)
	if err := w.DeviceStatusReport(); err != nil {
		return Position{}, err
	}
	if f, ok := r.Output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return Position{}, err
		}
	}

	type outcome struct {
		pos Position
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		pos, err := scanReply(r.Input, log)
		done <- outcome{pos: pos, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case out := <-done:
		return out.pos, out.err
	case <-timer.C:
		return Position{}, ErrTimeout
	}
}

// scanReply consumes input one byte at a time until the terminating 'R'.
// Digits accumulate a decimal value; ';' commits it as the row and starts
// the column. Everything else — including the ESC '[' framing of the
// reply itself — is skipped without disturbing the accumulator.
func scanReply(input io.Reader, log logger.Logger) (Position, error) {
	var (
		pos   Position
		state = scanRow
		acc   int
		buf   [1]byte
	)
	for {
		n, err := input.Read(buf[:])
		if n > 0 {
			b := buf[0]
			switch {
			case b >= '0' && b <= '9':
				acc = acc*10 + int(b-'0')
			case b == ';' && state == scanRow:
				pos.Row = acc
				acc = 0
				state = scanCol
			case b == 'R':
				pos.Col = acc
				return pos, nil
			default:
				log.Debug("skipping byte in cursor report", "byte", b)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Position{}, ErrNoReply
			}
			return Position{}, err
		}
	}
}
