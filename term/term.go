// Package term controls the host terminal's line discipline, as far as
// this library needs it: turning local echo off while a terminal reply is
// read back, and putting things back exactly as they were.
package term

import (
	"errors"

	"golang.org/x/sys/unix"
)

// ErrRestored reports a second Restore on the same snapshot. A snapshot
// is consumed by its first Restore; reapplying it later could clobber
// settings some other code changed in between.
var ErrRestored = errors.New("term: snapshot already restored")

// Snapshot captures the terminal settings in force when echo was
// disabled. It is owned by the caller for as long as echo stays off and
// must be restored exactly once.
type Snapshot struct {
	fd       int
	state    unix.Termios
	restored bool
}

// DisableEcho captures the current line-discipline settings of fd and
// reapplies them with the echo flag cleared. The returned snapshot
// restores the terminal to the captured state.
func DisableEcho(fd int) (*Snapshot, error) {
	tio, err := unix.IoctlGetTermios(fd, getTermios)
	if err != nil {
		return nil, err
	}
	saved := *tio

	tio.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, setTermios, tio); err != nil {
		return nil, err
	}

	return &Snapshot{fd: fd, state: saved}, nil
}

// Restore reapplies the captured settings verbatim. The snapshot is spent
// afterwards; a second call returns ErrRestored without touching the
// terminal.
func (s *Snapshot) Restore() error {
	if s.restored {
		return ErrRestored
	}
	s.restored = true
	return unix.IoctlSetTermios(s.fd, setTermios, &s.state)
}

// WithoutEcho runs fn with local echo suppressed on fd, restoring the
// previous settings on every exit path, fn panicking included. A restore
// failure is only reported when fn itself succeeded.
func WithoutEcho(fd int, fn func() error) (err error) {
	snap, err := DisableEcho(fd)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := snap.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}
