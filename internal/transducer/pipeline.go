package transducer

import (
	"github.com/musher-dev/basictext/internal/classify"
	"github.com/musher-dev/basictext/internal/escseq"
)

// drain carries a batch of post-NFC scalars through the remaining pipeline
// stages: newline conditioning (step 5), escape-sequence elision or
// rejection (step 6), and Main-table substitution (step 7).
func (c *Core) drain(scalars []rune, offset int) ([]rune, error) {
	var out []rune
	for _, sv := range scalars {
		conditioned, err := c.newlineStage(sv, offset)
		if err != nil {
			return nil, err
		}
		for _, r := range conditioned {
			o, err := c.escStage(r, offset)
			if err != nil {
				return nil, err
			}
			out = append(out, o...)
		}
	}
	return out, nil
}

// newlineStage implements step 5. A lone U+000D is held back one scalar so
// a following U+000A collapses into it rather than producing two newlines;
// in Strict mode U+000D/U+000C/U+0085/U+2028/U+2029 are rejections, never
// silent conditioning.
func (c *Core) newlineStage(sv rune, offset int) ([]rune, error) {
	if c.pendingCR {
		c.pendingCR = false
		if sv == 0x000A {
			return []rune{0x000A}, nil
		}
		rest, err := c.newlineStage(sv, offset)
		if err != nil {
			return nil, err
		}
		return append([]rune{0x000A}, rest...), nil
	}

	switch sv {
	case 0x000D:
		if c.mode == Strict {
			return nil, c.reject(classify.ErrCrOrCrlf, "carriage return", sv, []rune{0x000A}, offset)
		}
		c.pendingCR = true
		return nil, nil
	case 0x000C:
		if c.mode == Strict {
			return nil, c.reject(classify.ErrFf, "form feed", sv, []rune{0x0020}, offset)
		}
		return []rune{0x0020}, nil
	case 0x0085:
		if c.mode == Strict {
			return nil, c.reject(classify.ErrNel, "next line", sv, []rune{0x000A}, offset)
		}
		if c.opts.NELCompat {
			return []rune{0x000A}, nil
		}
		return []rune{0x0020}, nil
	case 0x2028, 0x2029:
		if c.mode == Strict {
			return nil, c.reject(classify.ErrLsPs, "line or paragraph separator", sv, []rune{0x000A}, offset)
		}
		if c.opts.LSPSCompat {
			return []rune{0x000A}, nil
		}
		return []rune{0x0020}, nil
	default:
		return []rune{sv}, nil
	}
}

// escStage implements step 6. Non-ESC scalars fall straight through to the
// Main table; a U+001B opens an escape-sequence buffer that accumulates
// until escapeComplete reports the candidate closed, at which point it is
// resolved as a whole.
func (c *Core) escStage(sv rune, offset int) ([]rune, error) {
	if len(c.esc) == 0 {
		if sv != 0x1B {
			return c.mainStage(sv, offset)
		}
		c.esc = append(c.esc, sv)
		return nil, nil
	}

	c.esc = append(c.esc, sv)
	if !escapeComplete(c.esc) {
		return nil, nil
	}
	return c.resolveEscape(offset)
}

// resolveEscape matches the buffered candidate against the five families,
// disposes of the matched prefix, and re-feeds any unconsumed trailing
// scalars (the bare-ESC family can decline to consume a following scalar)
// back through escStage so they get a fresh chance to start a new
// candidate or reach the Main table.
func (c *Core) resolveEscape(offset int) ([]rune, error) {
	buf := c.esc
	c.esc = nil

	family, n, ok := escseq.Recognize(buf, 0)
	if !ok {
		n = 0
	}

	var out []rune
	if n > 0 {
		matched := buf[:n]
		disposed, err := c.disposeEscape(family, matched, offset)
		if err != nil {
			return nil, err
		}
		for _, r := range disposed {
			c.recordEmitted(r)
		}
		out = append(out, disposed...)
	}

	for _, sv := range buf[n:] {
		r, err := c.escStage(sv, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, r...)
	}
	return out, nil
}

// disposeEscape applies the Color Escape Sequences option and mode to a
// fully matched escape sequence: SGR passes through unchanged when the
// option is set, everything else is stripped (Lossy) or rejected (Strict).
func (c *Core) disposeEscape(family escseq.Family, matched []rune, offset int) ([]rune, error) {
	if family == escseq.FamilySGR && c.opts.ColorEscapes {
		return matched, nil
	}
	if c.mode == Strict {
		return nil, c.reject(classify.ErrEscapeSequence, "recognized "+family.String()+" escape sequence", matched[0], nil, offset)
	}
	return nil, nil
}

// escapeComplete reports whether buf (a run of one or more leading ESC
// scalars followed by whatever has been read since) can already be
// resolved without seeing another scalar. It mirrors the five families'
// grammars closely enough to avoid holding a sequence open forever: CSI
// and SGR candidates close on a final byte in 0x40..0x7E, OSC candidates
// close on a BEL/CAN terminator, LEC closes once its optional trailing
// byte slot has been filled, and a bare ESC candidate closes as soon as
// any scalar follows it.
func escapeComplete(buf []rune) bool {
	i := 0
	for i < len(buf) && buf[i] == 0x1B {
		i++
	}
	rest := buf[i:]
	if len(rest) == 0 {
		return false
	}
	switch rest[0] {
	case '[':
		if len(rest) >= 2 && rest[1] == '[' {
			return len(rest) >= 3
		}
		if len(rest) == 1 {
			return false
		}
		last := rest[len(rest)-1]
		return last >= 0x40 && last <= 0x7E
	case ']':
		last := rest[len(rest)-1]
		return last == 0x07 || last == 0x18
	default:
		return true
	}
}

// mainStage implements step 7. Main-table rows in this implementation
// match exactly one scalar, so classify.MainAction is consulted once per
// literal scalar that reaches this stage.
func (c *Core) mainStage(sv rune, offset int) ([]rune, error) {
	row, _ := classify.MainAction([]rune{sv})
	action := row.Lossy
	if c.mode == Strict {
		action = row.Strict
	}

	switch a := action.(type) {
	case classify.Passthrough:
		c.recordEmitted(sv)
		return []rune{sv}, nil
	case classify.Replace:
		for _, r := range a.Seq {
			c.recordEmitted(r)
		}
		return a.Seq, nil
	case classify.Variation:
		for _, r := range a.Seq {
			c.recordEmitted(r)
		}
		return a.Seq, nil
	case classify.Newline:
		c.recordEmitted(0x000A)
		return []rune{0x000A}, nil
	case classify.Space:
		c.recordEmitted(0x0020)
		return []rune{0x0020}, nil
	case classify.Strip:
		return nil, nil
	case classify.Error:
		return nil, c.reject(a.Kind, a.Message, sv, mainAlternative(row), offset)
	default:
		c.recordEmitted(sv)
		return []rune{sv}, nil
	}
}

func mainAlternative(row classify.MainRow) []rune {
	if repl, ok := row.Lossy.(classify.Replace); ok {
		return repl.Seq
	}
	return nil
}

func (c *Core) recordEmitted(sv rune) {
	c.hasEmitted = true
	c.lastEmitted = sv
}

// CheckFlush reports whether the stream is currently sitting at a valid
// Basic Text substring boundary, per the Buffered Basic Text stream
// invariant: no escape-sequence or CR/CRLF resolution left hanging, and
// the last emitted scalar is not a BT-non-ender. It does not flush the
// normalizer's pending buffer — that buffer is genuinely incomplete, not
// a boundary — and it never mutates state.
func (c *Core) CheckFlush() error {
	if len(c.esc) > 0 {
		return &Error{Kind: classify.ErrEscapeSequence, Message: "flush boundary falls inside an open escape sequence", ByteOffset: c.byteOffset}
	}
	if c.pendingCR {
		return &Error{Kind: classify.ErrCrOrCrlf, Message: "flush boundary falls on an unresolved carriage return", ByteOffset: c.byteOffset}
	}
	if c.hasEmitted && classify.IsBTNonEnder(c.lastEmitted) {
		return &Error{Kind: classify.ErrNonEnderAtEnd, Message: "flush boundary ends on a BT-non-ender", Scalar: c.lastEmitted, ByteOffset: c.byteOffset}
	}
	return nil
}
