package classify

// PreNFCRow is a Pre-NFC table entry: the action Lossy mode applies and
// the action Strict mode applies. For CJK Compatibility Ideographs the
// standardized-variation substitution is unconditional (both modes carry
// the same Variation action, since the spec prose describes it without a
// mode split) when the scalar is catalogued; an uncatalogued ideograph is
// unconditional too, in the other direction — both modes carry the same
// Error action, since an incomplete lookup table is a fatal condition, not
// a mode-dependent repair. For the other Pre-NFC rows (singleton letters,
// ligatures, mathematical-alphanumeric folding) Lossy replaces and Strict
// rejects.
type PreNFCRow struct {
	Lossy  Action
	Strict Action
}

// PreNFCAction implements spec step 2.
func PreNFCAction(sv rune) PreNFCRow {
	if isCJKCompatIdeograph(sv) {
		if seq, ok := cjkCompatVariation[sv]; ok {
			return PreNFCRow{Lossy: Variation{Seq: seq}, Strict: Variation{Seq: seq}}
		}
		err := Error{Kind: ErrIncompleteVariationTable, Message: "CJK compatibility ideograph has no catalogued standardized-variation entry"}
		return PreNFCRow{Lossy: err, Strict: err}
	}

	if seq, ok := singletonLetters[sv]; ok {
		return PreNFCRow{
			Lossy:  Replace{Seq: seq},
			Strict: Error{Kind: ErrSingletonLetter, Message: "singleton letter or angle bracket requires NFC-equivalent substitution"},
		}
	}

	if seq, ok := ligatures[sv]; ok {
		return PreNFCRow{
			Lossy:  Replace{Seq: seq},
			Strict: Error{Kind: ErrLigatureOrDeprecatedForm, Message: "ligature or deprecated form requires decomposition"},
		}
	}

	if seq, ok := mathAlphanumericFold(sv); ok {
		return PreNFCRow{
			Lossy:  Replace{Seq: seq},
			Strict: Error{Kind: ErrSingletonLetter, Message: "mathematical alphanumeric symbol requires base-letter substitution"},
		}
	}

	return PreNFCRow{Lossy: Passthrough{}, Strict: Passthrough{}}
}

// cjkCompatVariation maps a handful of catalogued CJK Compatibility
// Ideographs to their Unicode-standardized variation sequence (base CJK
// ideograph + U+FE00 VARIATION SELECTOR-1). The full StandardizedVariants.txt
// table has on the order of a thousand rows; this is a representative
// curated subset (see DESIGN.md) rather than the complete table. A CJK
// Compatibility Ideograph not present here is a fatal error in both modes
// (see PreNFCAction) rather than a silent passthrough of an ideograph that
// was never checked against its standardized variation.
var cjkCompatVariation = map[rune][]rune{
	0xF900: {0x8C48, 0xFE00},
	0xF901: {0x66F4, 0xFE00},
	0xF902: {0x8ECA, 0xFE00},
	0xF903: {0x8CC8, 0xFE00},
	0xF904: {0x6ED1, 0xFE00},
	0xF905: {0x4E32, 0xFE00},
	0xF906: {0x53E5, 0xFE00},
	0xF907: {0x9F9C, 0xFE00},
	0xF908: {0x9F9C, 0xFE01},
	0xF909: {0x5951, 0xFE00},
}

// singletonLetters maps the OHM SIGN / KELVIN SIGN / ANGSTROM SIGN and the
// angle brackets to their canonical Latin/CJK equivalents. In Strict mode
// these trigger ErrSingletonLetter (the transducer core attaches the kind
// when it turns this into a rejection).
var singletonLetters = map[rune][]rune{
	0x2126: {0x03A9}, // OHM SIGN -> GREEK CAPITAL LETTER OMEGA
	0x212A: {0x004B}, // KELVIN SIGN -> LATIN CAPITAL LETTER K
	0x212B: {0x00C5}, // ANGSTROM SIGN -> LATIN CAPITAL LETTER A WITH RING ABOVE
	0x2329: {0x3008}, // LEFT-POINTING ANGLE BRACKET -> CJK ANGLE BRACKET
	0x232A: {0x3009}, // RIGHT-POINTING ANGLE BRACKET -> CJK ANGLE BRACKET
}

// ligatures maps the Latin ligature block U+FB00..U+FB06 and U+0149 to
// their compatibility decompositions. In Strict mode these trigger
// ErrLigatureOrDeprecatedForm.
var ligatures = map[rune][]rune{
	0xFB00: {0x0066, 0x0066},         // LATIN SMALL LIGATURE FF
	0xFB01: {0x0066, 0x0069},         // LATIN SMALL LIGATURE FI
	0xFB02: {0x0066, 0x006C},         // LATIN SMALL LIGATURE FL
	0xFB03: {0x0066, 0x0066, 0x0069}, // LATIN SMALL LIGATURE FFI
	0xFB04: {0x0066, 0x0066, 0x006C}, // LATIN SMALL LIGATURE FFL
	0xFB05: {0x017F, 0x0074},         // LATIN SMALL LIGATURE LONG S T
	0xFB06: {0x0073, 0x0074},         // LATIN SMALL LIGATURE ST
	0x0149: {0x02BC, 0x006E},         // LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
}

// mathAlphanumericFold algorithmically decomposes a scalar in the
// Mathematical Alphanumeric Symbols block (U+1D400..U+1D7FF) to its base
// Latin letter or digit, per the block's documented 13-style layout of
// Latin letters (U+1D400..U+1D6A3) and its digits (U+1D7CE..U+1D7FF). The
// dotless i/j and the Greek letters (U+1D6A4..U+1D7CB) are not folded.
// The letters that live in the pre-existing Letterlike Symbols block
// instead (e.g. U+212C SCRIPT CAPITAL B) lie outside this block and are
// not covered by the arithmetic; they fall through to Passthrough,
// matching spec.md's instruction not to guess undocumented mappings.
func mathAlphanumericFold(sv rune) ([]rune, bool) {
	switch {
	case sv >= 0x1D400 && sv <= 0x1D6A3:
		return mathLetterFold(sv)
	case sv >= 0x1D7CE && sv <= 0x1D7FF:
		return mathDigitFold(sv)
	default:
		return nil, false
	}
}

func mathLetterFold(sv rune) ([]rune, bool) {
	// Each style group spans 52 letters: A-Z then a-z. The "script" and
	// "fraktur" groups have holes whose letters were reassigned to
	// Letterlike Symbols, and are not decomposed here.
	const groupSize = 52
	offset := sv - 0x1D400
	group := offset / groupSize
	within := offset % groupSize

	// Groups 3 (script) and 5 (fraktur) have known holes; without the
	// full per-group hole table we decline to fold those groups rather
	// than emit a wrong letter. The reserved positions in the other
	// groups (italic, double-struck) fold by the same arithmetic.
	if group == 3 || group == 5 {
		return nil, false
	}

	var base rune
	if within < 26 {
		base = 'A' + within
	} else {
		base = 'a' + (within - 26)
	}
	return []rune{base}, true
}

func mathDigitFold(sv rune) ([]rune, bool) {
	const groupSize = 10
	offset := sv - 0x1D7CE
	within := offset % groupSize
	return []rune{'0' + within}, true
}
