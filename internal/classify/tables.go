package classify

// runeRange is an inclusive [lo, hi] scalar range used by the curated
// tables below. Tables are searched with a short linear scan, so their
// order does not matter; none of them are large enough to justify a
// binary search.
type runeRange struct {
	lo, hi rune
}

func (rr runeRange) contains(sv rune) bool { return sv >= rr.lo && sv <= rr.hi }

func inRanges(sv rune, ranges []runeRange) bool {
	for _, rr := range ranges {
		if rr.contains(sv) {
			return true
		}
	}
	return false
}

// noncharacters: U+FDD0..U+FDEF, and the last two scalars of every plane
// (U+xFFFE, U+xFFFF for x in 0..0x10).
func isNoncharacter(sv rune) bool {
	if sv >= 0xFDD0 && sv <= 0xFDEF {
		return true
	}
	if sv&0xFFFE == 0xFFFE {
		return true
	}
	return false
}

var privateUseRanges = []runeRange{
	{0xE000, 0xF8FF},
	{0xF0000, 0xFFFFD},
	{0x100000, 0x10FFFD},
}

func isPrivateUse(sv rune) bool { return inRanges(sv, privateUseRanges) }

// Explicit bidirectional formatting characters: LRE, RLE, PDF, LRO, RLO,
// LRI, RLI, FSI, PDI. The Main table disallows all of these outright.
var explicitBidiScalars = map[rune]struct{}{
	0x202A: {}, // LRE
	0x202B: {}, // RLE
	0x202C: {}, // PDF
	0x202D: {}, // LRO
	0x202E: {}, // RLO
	0x2066: {}, // LRI
	0x2067: {}, // RLI
	0x2068: {}, // FSI
	0x2069: {}, // PDI
}

func isExplicitBidi(sv rune) bool {
	_, ok := explicitBidiScalars[sv]
	return ok
}

// Deprecated format characters (U+206A..U+206F, the deprecated "Arabic
// form shaping" / "national digit shapes" formatting block).
var deprecatedFormatRanges = []runeRange{
	{0x206A, 0x206F},
}

func isDeprecatedFormat(sv rune) bool { return inRanges(sv, deprecatedFormatRanges) }

// Khmer discouraged scalars: the two invisible Khmer vowel-inherent
// signs the Unicode Standard explicitly discourages.
var discouragedScalars = map[rune]struct{}{
	0x17B4: {},
	0x17B5: {},
}

func isDiscouraged(sv rune) bool {
	_, ok := discouragedScalars[sv]
	return ok
}

// CJK Compatibility Ideographs: the block plus its supplementary-plane
// extension. Not every scalar in these ranges has a standardized variation
// sequence target catalogued below (see cjkCompatVariation in prenfc.go);
// those without one get an IncompleteVariationTable Error in both modes.
var cjkCompatIdeographRanges = []runeRange{
	{0xF900, 0xFAFF},
	{0x2F800, 0x2FA1F},
}

func isCJKCompatIdeograph(sv rune) bool { return inRanges(sv, cjkCompatIdeographRanges) }
