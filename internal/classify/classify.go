// Package classify answers constant-time questions about a single Unicode
// scalar value or a short scalar sequence: its category, canonical
// combining class, grapheme-cluster-break value, and its Pre-NFC/Main
// table action. All tables here are immutable and initialized once; there
// is no runtime mutation.
package classify

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Category is the coarse classification of a scalar used by the
// transducer's control/format handling.
type Category int

const (
	CategoryOther Category = iota
	CategoryC0
	CategoryC1
	CategoryDEL
	CategoryTAB
	CategoryLF
	CategoryCR
	CategoryFF
	CategoryNEL
	CategoryLS
	CategoryPS
	CategoryBOM
	CategoryORC
	CategoryIA
	CategoryNoncharacter
	CategoryPrivateUse
	CategoryTag
	CategoryDeprecatedFormat
	CategoryExplicitBidi
	CategoryDiscouraged
	CategoryCJKCompatIdeograph
)

// CategoryOf classifies a single scalar value.
func CategoryOf(sv rune) Category {
	switch {
	case sv == 0x09:
		return CategoryTAB
	case sv == 0x0A:
		return CategoryLF
	case sv == 0x0D:
		return CategoryCR
	case sv == 0x0C:
		return CategoryFF
	case sv == 0x85:
		return CategoryNEL
	case sv == 0x2028:
		return CategoryLS
	case sv == 0x2029:
		return CategoryPS
	case sv == 0xFEFF:
		return CategoryBOM
	case sv == 0xFFFC:
		return CategoryORC
	case sv >= 0xFFF9 && sv <= 0xFFFB:
		return CategoryIA
	case sv >= 0x00 && sv <= 0x1F:
		return CategoryC0
	case sv == 0x7F:
		return CategoryDEL
	case sv >= 0x80 && sv <= 0x9F:
		return CategoryC1
	case isNoncharacter(sv):
		return CategoryNoncharacter
	case isPrivateUse(sv):
		return CategoryPrivateUse
	case sv >= 0xE0000 && sv <= 0xE007F:
		return CategoryTag
	case isExplicitBidi(sv):
		return CategoryExplicitBidi
	case isDeprecatedFormat(sv):
		return CategoryDeprecatedFormat
	case isDiscouraged(sv):
		return CategoryDiscouraged
	case isCJKCompatIdeograph(sv):
		return CategoryCJKCompatIdeograph
	default:
		return CategoryOther
	}
}

// CCC returns the canonical combining class of sv, delegated to
// golang.org/x/text/unicode/norm so the value tracks that module's
// declared Unicode version rather than a hand-maintained table.
func CCC(sv rune) uint8 {
	return properties(sv).CCC()
}

// NFCBoundaryBefore reports whether sv starts a new NFC segment that
// cannot combine with whatever scalar sequence precedes it — the same
// per-rune test norm.Iter itself consults to decide where to cut a
// stream into independently normalizable segments. A bare ccc()==0 check
// is not equivalent: a Hangul vowel jamo (e.g. U+1161) has ccc 0 but is
// not a boundary, since it still composes with a preceding leading
// consonant jamo into a precomposed syllable.
func NFCBoundaryBefore(sv rune) bool {
	return properties(sv).BoundaryBefore()
}

func properties(sv rune) norm.Properties {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], sv)
	return norm.NFC.Properties(buf[:n])
}

// IsNonStarter reports whether sv is a non-starter (ccc != 0).
func IsNonStarter(sv rune) bool {
	return CCC(sv) != 0
}

// IsBTNonStarter reports whether sv is a BT-non-starter: a non-starter, or
// GCB in {ZWJ, SpacingMark, Extend} and not U+034F itself (the CGJ is
// explicitly exempted so it never re-triggers the boundary guard it was
// inserted to satisfy).
func IsBTNonStarter(sv rune) bool {
	if sv == 0x034F {
		return false
	}
	if IsNonStarter(sv) {
		return true
	}
	switch GCB(sv) {
	case GCBZWJ, GCBSpacingMark, GCBExtend:
		return true
	default:
		return false
	}
}

// IsBTNonEnder reports whether sv is a BT-non-ender: GCB in {ZWJ, Prepend}.
func IsBTNonEnder(sv rune) bool {
	switch GCB(sv) {
	case GCBZWJ, GCBPrepend:
		return true
	default:
		return false
	}
}
