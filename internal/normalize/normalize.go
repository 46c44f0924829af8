// Package normalize applies toNFC under the Stabilized-Strings policy: it
// withholds output until a normalization-form boundary (a starter that
// cannot combine with anything already buffered) is found, so an
// already-stable prefix is never revisited once a boundary closes over it.
// This must run after the Stream-Safe Inserter, per spec.md's pass
// ordering (§4.4, §9).
package normalize

import (
	"golang.org/x/text/unicode/norm"

	"github.com/musher-dev/basictext/internal/classify"
)

// Normalizer buffers a single pending segment — bounded in practice by the
// Stream-Safe limit, since a CGJ insertion is itself a non-combining
// starter with respect to whatever follows it — and renormalizes it as a
// whole whenever a new segment boundary opens.
type Normalizer struct {
	pending []rune
}

// New returns a fresh Normalizer with an empty pending buffer.
func New() *Normalizer {
	return &Normalizer{}
}

// Push feeds sv through the normalizer. It returns the normalized form of
// the previously pending segment if sv opens a new NFC segment boundary
// (per classify.NFCBoundaryBefore, the same test norm.Iter uses to decide
// where a stream can be cut), or nil if sv merely extends the segment
// still being accumulated. A bare ccc()==0 test would wrongly cut between
// two composable starters — e.g. the Hangul jamo pair U+1100 U+1161,
// which only compose into their precomposed syllable if normalized
// together — so every starter is no longer treated as a boundary on its
// own.
func (n *Normalizer) Push(sv rune) []rune {
	if len(n.pending) > 0 && classify.NFCBoundaryBefore(sv) {
		out := n.flush()
		n.pending = append(n.pending, sv)
		return out
	}
	n.pending = append(n.pending, sv)
	return nil
}

// End flushes and normalizes whatever segment is still pending at
// end-of-input.
func (n *Normalizer) End() []rune {
	return n.flush()
}

func (n *Normalizer) flush() []rune {
	if len(n.pending) == 0 {
		return nil
	}
	segment := string(n.pending)
	n.pending = nil
	return []rune(norm.NFC.String(segment))
}
