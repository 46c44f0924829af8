// Package basictext implements Basic Text: a checkable subset of Unicode
// for plain text, built on Stream-Safe NFC with boundary, escape-sequence,
// and control-character rules layered on top. See internal/transducer for
// the pipeline that enforces it and internal/classify for the underlying
// scalar tables.
package basictext

import (
	"github.com/musher-dev/basictext/internal/transducer"
)

// Text is an owned, immutable Basic Text string: a validated sequence of
// Unicode scalar values satisfying every rule in §3. Since a Go string is
// already an immutable, UTF-8-based value type, Text is defined directly
// over string rather than wrapping a scalar slice. A Text returned by
// FromUnicodeStrict or FromUnicodeLossy always holds valid Basic Text; a
// plain conversion such as Text(s) is not checked. The zero value is the
// empty Basic Text string.
type Text string

// FromUnicodeStrict validates s as Basic Text without modification. It
// succeeds only if s is already in Basic Text form; otherwise it returns
// the specific rule violated and the byte offset into s where it occurs.
func FromUnicodeStrict(s string) (Text, error) {
	c := transducer.New(transducer.Strict, transducer.Options{})
	var out []rune
	for _, sv := range s {
		produced, err := c.Push(sv)
		if err != nil {
			return "", err
		}
		out = append(out, produced...)
	}
	produced, err := c.End(false)
	if err != nil {
		return "", err
	}
	return Text(string(append(out, produced...))), nil
}

// FromUnicodeLossy always succeeds: it applies the Lossy transducer to s,
// repairing boundary violations with U+034F, substituting or stripping
// disallowed scalars, and eliding escape sequences. No trailing newline is
// appended since this produces a string, not a stream.
func FromUnicodeLossy(s string, opts ...transducer.Option) Text {
	c := transducer.New(transducer.Lossy, transducer.NewOptions(opts...))
	var out []rune
	for _, sv := range s {
		produced, _ := c.Push(sv)
		out = append(out, produced...)
	}
	produced, _ := c.End(false)
	return Text(string(append(out, produced...)))
}

// Runes returns the validated scalar sequence underlying t.
func (t Text) Runes() []rune {
	return []rune(t)
}

// String renders the Basic Text value as a Go string.
func (t Text) String() string {
	return string(t)
}

// Len reports the number of scalar values in t, not its byte length.
func (t Text) Len() int {
	return len([]rune(t))
}

// Text values compare for canonical equivalence with Go's native ==,
// since every Text is already Stream-Safe NFC by construction.
