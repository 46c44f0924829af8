// Package transducer implements the Transducer Core from spec.md §4.5:
// the nine-step pipeline (start-boundary guard, Pre-NFC substitution,
// Stream-Safe, toNFC, newline conditioning, escape-sequence elision or
// rejection, Main-table substitution, end-boundary guard, BOM handling)
// in the order spec.md requires, since the CJK-compatibility replacement
// changes what Stream-Safe and NFC see and the Main table's rules apply to
// the post-NFC form.
package transducer

import (
	"unicode/utf8"

	"github.com/musher-dev/basictext/internal/classify"
	"github.com/musher-dev/basictext/internal/normalize"
	"github.com/musher-dev/basictext/internal/streamsafe"
)

// Mode selects which disposition table (Lossy or Strict) the core applies.
type Mode int

const (
	Lossy Mode = iota
	Strict
)

// Core is the single-pass transducer state machine. One Core is scoped to
// exactly one conversion; it is not safe for concurrent use.
type Core struct {
	mode Mode
	opts Options

	atStart    bool
	byteOffset int
	pendingCR  bool // a lone U+000D held back to see if a U+000A follows it

	ss  *streamsafe.Inserter
	nrm *normalize.Normalizer
	esc []rune // raw scalars buffered while a possible escape sequence is still open

	lastEmitted   rune
	hasEmitted    bool
	bomPrepended  bool
}

// New returns a fresh Core for the given mode and options.
func New(mode Mode, opts Options) *Core {
	return &Core{
		mode:    mode,
		opts:    opts,
		atStart: true,
		ss:      streamsafe.New(),
		nrm:     normalize.New(),
	}
}

// Push feeds one input scalar through the pipeline and returns the output
// scalars produced so far (possibly none, if output is being withheld at a
// normalization or escape-sequence boundary). In Strict mode, Push returns
// an error for the scalar that breaks a rule; the Core keeps no record of
// it, and later Push/End calls process their input as usual.
func (c *Core) Push(sv rune) ([]rune, error) {
	startOffset := c.byteOffset
	c.byteOffset += utf8.RuneLen(sv)

	// Step 9 (partial): a leading BOM is consumed silently in Lossy mode
	// before it ever reaches the Main table, since "strip the first
	// scalar" is a stream-level rule, not a per-scalar classification.
	// Every other occurrence — mid-stream in Lossy, or anywhere at all in
	// Strict, including the very first scalar — falls through to the
	// ordinary pipeline and is disposed of by the Main table's own
	// U+FEFF row alongside every other disallowed-scalar class.
	if sv == 0xFEFF && c.mode == Lossy && c.atStart {
		c.atStart = false
		return nil, nil
	}

	// Step 1: start-boundary guard, checked once against the first
	// incoming scalar exactly as received (before any substitution).
	var prefix []rune
	if c.atStart {
		c.atStart = false
		if classify.IsBTNonStarter(sv) {
			if c.mode == Strict {
				return nil, c.reject(classify.ErrNonStarterAtStart, "scalar at start of stream is a BT-non-starter", sv, []rune{streamsafe.CGJ, sv}, startOffset)
			}
			prefix = []rune{streamsafe.CGJ}
		}
	}

	// Step 2: Pre-NFC substitution.
	preNFC := classify.PreNFCAction(sv)
	action := preNFC.Lossy
	if c.mode == Strict {
		action = preNFC.Strict
	}

	var afterPreNFC []rune
	switch a := action.(type) {
	case classify.Passthrough:
		afterPreNFC = []rune{sv}
	case classify.Replace:
		afterPreNFC = a.Seq
	case classify.Variation:
		afterPreNFC = a.Seq
	case classify.Error:
		return nil, c.reject(a.Kind, a.Message, sv, preNFCAlternative(preNFC), startOffset)
	default:
		afterPreNFC = []rune{sv}
	}

	// Step 3: Stream-Safe Text Process, applied to each scalar Pre-NFC
	// produced, in order.
	var afterSS []rune
	for _, r := range afterPreNFC {
		afterSS = append(afterSS, c.ss.Push(r)...)
	}

	// Step 4: toNFC (Stabilized-Strings), incremental and
	// boundary-buffered.
	var afterNFC []rune
	for _, r := range afterSS {
		afterNFC = append(afterNFC, c.nrm.Push(r)...)
	}

	out, err := c.drain(afterNFC, startOffset)
	if err != nil {
		return nil, err
	}
	return c.finalize(append(prefix, out...)), nil
}

// End finalizes the conversion: flushes the normalizer's pending buffer,
// resolves any still-open escape-sequence candidate, and applies the
// end-boundary guard (BT-non-ender check, trailing newline requirement).
// streamForm is true for adapters (where a trailing U+000A is required);
// it is false for one-shot string conversion (spec.md §4.7 doesn't append
// a trailing newline for string-form results).
func (c *Core) End(streamForm bool) ([]rune, error) {
	flushed := c.nrm.End()

	out, err := c.drain(flushed, c.byteOffset)
	if err != nil {
		return nil, err
	}

	if c.pendingCR {
		c.pendingCR = false
		tail, err := c.drain([]rune{0x000A}, c.byteOffset)
		if err != nil {
			return nil, err
		}
		out = append(out, tail...)
	}

	if len(c.esc) > 0 {
		tail, err := c.resolveEscape(c.byteOffset)
		if err != nil {
			return nil, err
		}
		out = append(out, tail...)
	}

	if !c.hasEmitted {
		return out, nil
	}

	if classify.IsBTNonEnder(c.lastEmitted) {
		if c.mode == Strict {
			return nil, c.reject(classify.ErrNonEnderAtEnd, "last emitted scalar is a BT-non-ender", c.lastEmitted, nil, c.byteOffset)
		}
		out = append(out, streamsafe.CGJ)
		c.lastEmitted = streamsafe.CGJ
	}

	if streamForm && c.lastEmitted != 0x000A {
		if c.mode == Strict {
			return nil, c.reject(classify.ErrMissingTrailingNewline, "stream does not end with a trailing newline", c.lastEmitted, []rune{0x000A}, c.byteOffset)
		}
		out = append(out, 0x000A)
		c.lastEmitted = 0x000A
	}

	return c.finalize(out), nil
}

// finalize applies the two strict-output-only compatibility passes
// uniformly across every chunk of output this core ever returns, so a
// CRLF Compatibility stream never mixes converted and unconverted
// newlines and a BOM Compatibility prefix is emitted exactly once.
func (c *Core) finalize(out []rune) []rune {
	if c.opts.CRLFCompat {
		out = crlfConvert(out)
	}
	if c.opts.BOMCompat && !c.bomPrepended && len(out) > 0 {
		out = append([]rune{0xFEFF}, out...)
		c.bomPrepended = true
	}
	return out
}

func preNFCAlternative(row classify.PreNFCRow) []rune {
	if repl, ok := row.Lossy.(classify.Replace); ok {
		return repl.Seq
	}
	if v, ok := row.Lossy.(classify.Variation); ok {
		return v.Seq
	}
	return nil
}

func (c *Core) reject(kind classify.ErrorKind, msg string, sv rune, alt []rune, offset int) error {
	return &Error{Kind: kind, Message: msg, Scalar: sv, Alternative: alt, ByteOffset: offset}
}

func crlfConvert(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == 0x000A {
			out = append(out, 0x000D, 0x000A)
			continue
		}
		out = append(out, r)
	}
	return out
}
