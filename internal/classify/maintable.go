package classify

// MainRow is a Main table entry: the action Lossy mode applies and the
// action Strict mode applies, mirroring PreNFCRow. Lossy mode must never
// surface a Unicode-validity error (spec.md §7), so every disallowed-
// scalar row pairs a Strip (or Replace) in Lossy with an Error in Strict.
type MainRow struct {
	Lossy  Action
	Strict Action
}

// tibetanExpansions holds the Open-Question-resolved three-scalar
// expansions for U+0F77 and U+0F79 (see DESIGN.md: the most recent spec
// source is authoritative over older two-scalar revisions).
var tibetanExpansions = map[rune][]rune{
	0x0F77: {0x0FB2, 0x0F71, 0x0F80},
	0x0F79: {0x0FB3, 0x0F71, 0x0F80},
}

// ligatureOrDeprecatedScalars are the single-scalar Main-table rows that
// trigger ErrLigatureOrDeprecatedForm in Strict mode. (U+0F77/U+0F79 are
// handled separately above since they carry a Lossy replacement; these
// have no Unicode-recommended substitution and are simply stripped.)
var ligatureOrDeprecatedScalars = map[rune]struct{}{
	0x17A3: {}, // KHMER INDEPENDENT VOWEL QAQ (deprecated)
	0x17A4: {}, // KHMER INDEPENDENT VOWEL QAA (deprecated)
	0x0673: {}, // ARABIC LETTER ALEF WITH WAVY HAMZA BELOW (deprecated)
	0x2DF5: {}, // COMBINING CYRILLIC LETTER A (deprecated combining form)
	0x111C4: {}, // SHARADA SIGN JIHVAMULIYA (deprecated)
}

// MainAction implements spec step 7. It inspects seq[0] only: every Main
// table row in this implementation is a single-scalar match, so the
// matched length returned is always 1 for a non-empty seq, 0 otherwise.
// (The escape-sequence families are recognized and disposed of separately
// by internal/escseq before this table is consulted.)
func MainAction(seq []rune) (MainRow, int) {
	if len(seq) == 0 {
		return MainRow{Lossy: Passthrough{}, Strict: Passthrough{}}, 0
	}
	sv := seq[0]

	if expansion, ok := tibetanExpansions[sv]; ok {
		return MainRow{
			Lossy:  Replace{Seq: expansion},
			Strict: Error{Kind: ErrLigatureOrDeprecatedForm, Message: "Tibetan vowel sign requires three-scalar expansion"},
		}, 1
	}

	if _, ok := ligatureOrDeprecatedScalars[sv]; ok {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrLigatureOrDeprecatedForm, Message: "deprecated or ligature-equivalent scalar"},
		}, 1
	}

	if isDiscouraged(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrDiscouragedScalar, Message: "Khmer discouraged scalar"},
		}, 1
	}

	if isNoncharacter(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrNoncharacter, Message: "noncharacter scalar"},
		}, 1
	}

	if isPrivateUse(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrPrivateUse, Message: "private-use scalar"},
		}, 1
	}

	if sv >= 0xE0000 && sv <= 0xE007F {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrTagCharacter, Message: "tag character"},
		}, 1
	}

	if sv == 0xFEFF {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrBomMidstream, Message: "byte order mark"},
		}, 1
	}

	if sv == 0xFFFC {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrObjectReplacement, Message: "object replacement character"},
		}, 1
	}

	if sv >= 0xFFF9 && sv <= 0xFFFB {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrInterlinearAnnotation, Message: "interlinear annotation character"},
		}, 1
	}

	if isExplicitBidi(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrExplicitBidi, Message: "explicit bidirectional formatting character"},
		}, 1
	}

	if isDeprecatedFormat(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrDeprecatedScalar, Message: "deprecated format character"},
		}, 1
	}

	if isDisallowedControl(sv) {
		return MainRow{
			Lossy:  Strip{},
			Strict: Error{Kind: ErrDisallowedControl, Message: "disallowed control character"},
		}, 1
	}

	return MainRow{Lossy: Passthrough{}, Strict: Passthrough{}}, 1
}

// isDisallowedControl reports C0/C1/DEL controls that are not otherwise
// given dedicated newline-conditioning treatment (TAB/LF/CR/FF/NEL all
// pass through this check untouched; they are handled by the transducer's
// newline-conditioning step and by their own dedicated error kinds).
func isDisallowedControl(sv rune) bool {
	switch sv {
	case 0x09, 0x0A, 0x0D, 0x0C, 0x85:
		return false
	}
	switch {
	case sv <= 0x1F:
		return true
	case sv == 0x7F:
		return true
	case sv >= 0x80 && sv <= 0x9F:
		return true
	default:
		return false
	}
}
