package ansicsi

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Style aggregates SGR attributes so a full text rendition can be applied
// with one sequence instead of one write per attribute. The zero Style is
// the terminal default rendition.
//
// Styles are plain values; compare them with Equals (or Hash) to skip
// re-emitting a rendition that is already in effect.
type Style struct {
	Foreground Color
	Background Color

	Bold          bool
	Faint         bool
	Italic        bool
	Underline     bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
}

// IsDefault reports whether the style carries no attributes at all.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// Hash returns a stable hash of the style, for callers keeping styles in
// sets or maps keyed by rendition.
func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure only fails on types it cannot walk; Style is all
		// value fields, so this is unreachable.
		panic(fmt.Sprintf("ansicsi: failed to hash style: %v", err))
	}
	return hashed
}

// Equals reports whether two styles render identically.
func (s Style) Equals(other Style) bool {
	return s == other
}

// sequence builds the combined SGR parameter list. The list always leads
// with 0 so the style fully replaces whatever rendition was in effect.
func (s Style) sequence() string {
	var sb strings.Builder
	sb.WriteString(CSI)
	sb.WriteByte('0')

	attrs := []struct {
		on   bool
		code Code
	}{
		{s.Bold, Bold},
		{s.Faint, Faint},
		{s.Italic, Italic},
		{s.Underline, Underline},
		{s.Blink, SlowBlink},
		{s.Inverse, Inverse},
		{s.Invisible, Invisible},
		{s.Strikethrough, Strikethrough},
	}
	for _, a := range attrs {
		if a.on {
			fmt.Fprintf(&sb, ";%d", int(a.code))
		}
	}

	if s.Foreground.Type != ColorTypeNone {
		sb.WriteByte(';')
		sb.WriteString(s.Foreground.params(38))
	}
	if s.Background.Type != ColorTypeNone {
		sb.WriteByte(';')
		sb.WriteString(s.Background.params(48))
	}

	sb.WriteByte('m')
	return sb.String()
}

// SetStyle applies the whole style as a single SGR sequence, resetting
// any attributes the style does not carry.
func (w *Writer) SetStyle(s Style) error {
	_, err := w.w.Write([]byte(s.sequence()))
	return err
}
