package style

import (
	"fmt"
	"io"
)

const reset = "\x1b[0m"

// Writer writes styled text to an underlying stream, tracking the
// active terminal state and emitting only the escape sequences the
// transition between states requires.
type Writer struct {
	w   io.Writer
	cur State
}

// NewWriter wraps w with a style-tracking writer. The terminal is
// assumed to start with no attributes set.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, cur: Plain()}
}

// WriteString writes plain text under the currently active state.
func (sw *Writer) WriteString(s string) error {
	_, err := io.WriteString(sw.w, s)
	return err
}

// Apply switches the terminal to the requested state. Depending on the
// difference from the current state it emits nothing, only the added
// attributes, or a full reset followed by the new state.
func (sw *Writer) Apply(next State) error {
	d := Between(sw.cur, next)
	switch d.Kind {
	case NoChange:
		return nil
	case AddOnly:
		if err := sw.emit(d.Add); err != nil {
			return err
		}
	case MustReset:
		if err := sw.WriteString(reset); err != nil {
			return err
		}
		if err := sw.emit(next); err != nil {
			return err
		}
	}
	sw.cur = next
	return nil
}

// Reset clears every active attribute. It emits nothing when the state
// is already plain.
func (sw *Writer) Reset() error {
	if sw.cur.IsPlain() {
		return nil
	}
	sw.cur = Plain()
	return sw.WriteString(reset)
}

// Current returns the state the writer believes is active.
func (sw *Writer) Current() State {
	return sw.cur
}

func (sw *Writer) emit(s State) error {
	if s.bold {
		if err := sw.WriteString("\x1b[1m"); err != nil {
			return err
		}
	}
	if s.underline {
		if err := sw.WriteString("\x1b[4m"); err != nil {
			return err
		}
	}
	if s.fg >= 0 {
		if err := sw.WriteString(fmt.Sprintf("\x1b[38;5;%dm", s.fg)); err != nil {
			return err
		}
	}
	if s.bg >= 0 {
		if err := sw.WriteString(fmt.Sprintf("\x1b[48;5;%dm", s.bg)); err != nil {
			return err
		}
	}
	return nil
}
