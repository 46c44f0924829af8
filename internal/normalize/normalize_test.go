package normalize

import "testing"

func push(n *Normalizer, runes []rune) []rune {
	var out []rune
	for _, r := range runes {
		out = append(out, n.Push(r)...)
	}
	return out
}

// TestNormalizer_ComposesConsecutiveHangulJamo confirms two consecutive
// starters that can combine (a leading consonant jamo followed by a vowel
// jamo) are still buffered together and composed into the precomposed
// Hangul syllable, rather than each starter flushing the one before it.
func TestNormalizer_ComposesConsecutiveHangulJamo(t *testing.T) {
	n := New()
	input := []rune{0x1100, 0x1161} // HANGUL CHOSEONG KIYEOK, HANGUL JUNGSEONG A
	out := append(push(n, input), n.End()...)

	want := []rune{0xAC00} // precomposed syllable GA
	if len(out) != len(want) || out[0] != want[0] {
		t.Fatalf("got %U, want %U (the two jamo should compose into one syllable)", out, want)
	}
}

// TestNormalizer_FlushesBetweenNonComposingStarters confirms two ordinary
// Latin letters, which never combine under NFC, still flush independently
// segment by segment.
func TestNormalizer_FlushesBetweenNonComposingStarters(t *testing.T) {
	n := New()
	first := n.Push('a')
	if first != nil {
		t.Fatalf("first scalar pushed should not flush anything yet, got %v", first)
	}
	second := n.Push('b')
	if len(second) != 1 || second[0] != 'a' {
		t.Fatalf("pushing a second non-combining starter should flush the first, got %v", second)
	}
	rest := n.End()
	if len(rest) != 1 || rest[0] != 'b' {
		t.Fatalf("End() should flush the still-pending second letter, got %v", rest)
	}
}

// TestNormalizer_ComposesCombiningMark confirms a base letter followed by
// a combining mark (a non-starter, ccc != 0) stays in the same segment and
// composes into its precomposed form.
func TestNormalizer_ComposesCombiningMark(t *testing.T) {
	n := New()
	input := []rune{'e', 0x0301} // LATIN SMALL LETTER E, COMBINING ACUTE ACCENT
	out := append(push(n, input), n.End()...)

	want := []rune{0x00E9} // LATIN SMALL LETTER E WITH ACUTE
	if len(out) != len(want) || out[0] != want[0] {
		t.Fatalf("got %U, want %U", out, want)
	}
}
