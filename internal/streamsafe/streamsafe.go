// Package streamsafe implements UAX15-D4's Stream-Safe Text Process: it
// inserts U+034F (Combining Grapheme Joiner) whenever a run of consecutive
// non-starters would otherwise exceed 30, bounding the amount of lookback a
// normalizer ever needs. This must run after Pre-NFC substitution and
// before NFC composition (spec.md §4.3, §9 pass-ordering note).
package streamsafe

import "github.com/musher-dev/basictext/internal/classify"

// Limit is the maximum run length of consecutive non-starters the
// Inserter allows before splicing in a CGJ.
const Limit = 30

// CGJ is U+034F COMBINING GRAPHEME JOINER, the boundary separator this
// package inserts.
const CGJ = rune(0x034F)

// Inserter applies the Stream-Safe Text Process to a scalar stream,
// one scalar at a time. It holds only a small non-starter counter — no
// unbounded lookback — matching the bounded-resource guarantee spec.md
// §5 requires.
type Inserter struct {
	count int
}

// New returns a fresh Inserter with its non-starter counter at zero.
func New() *Inserter {
	return &Inserter{}
}

// Push feeds sv through the inserter and returns the scalars to emit
// before (and including) sv: normally just []rune{sv}, or
// []rune{CGJ, sv} if sv would have extended a non-starter run past Limit.
func (in *Inserter) Push(sv rune) []rune {
	if !classify.IsNonStarter(sv) {
		in.count = 0
		return []rune{sv}
	}

	if in.count >= Limit {
		in.count = 1
		return []rune{CGJ, sv}
	}

	in.count++
	return []rune{sv}
}

// Reset clears the non-starter counter so that a fresh Stream-Safe window
// begins.
func (in *Inserter) Reset() {
	in.count = 0
}
