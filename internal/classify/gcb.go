package classify

// GraphemeBreak is the subset of Unicode's Grapheme_Cluster_Break property
// values the Basic Text classes need. Every other GCB value (and every
// scalar not in one of the curated tables below) collapses to GCBOther.
type GraphemeBreak int

const (
	GCBOther GraphemeBreak = iota
	GCBZWJ
	GCBSpacingMark
	GCBExtend
	GCBPrepend
)

// GCB returns the Grapheme_Cluster_Break value needed by the BT-non-starter
// and BT-non-ender tests.
//
// Most Extend scalars already have a nonzero canonical combining class and
// are already caught by IsNonStarter; the curated extendExtra table below
// only needs to cover the Extend scalars CCC misses (variation selectors,
// ZWNJ, emoji modifiers, tag characters). Coverage is intentionally not
// exhaustive against the full Unicode Character Database — see DESIGN.md.
func GCB(sv rune) GraphemeBreak {
	switch {
	case sv == 0x200D:
		return GCBZWJ
	case inRanges(sv, prependRanges):
		return GCBPrepend
	case inRanges(sv, spacingMarkRanges):
		return GCBSpacingMark
	case inRanges(sv, extendExtraRanges):
		return GCBExtend
	default:
		return GCBOther
	}
}

var prependRanges = []runeRange{
	{0x0600, 0x0605},
	{0x06DD, 0x06DD},
	{0x070F, 0x070F},
	{0x0890, 0x0891},
	{0x08E2, 0x08E2},
	{0x0D4E, 0x0D4E},
	{0x110BD, 0x110BD},
	{0x110CD, 0x110CD},
	{0x111C2, 0x111C3},
	{0x1193F, 0x1193F},
	{0x11941, 0x11941},
	{0x11A3A, 0x11A3A},
	{0x11A84, 0x11A89},
	{0x11D46, 0x11D46},
	{0x11F02, 0x11F02},
}

// spacingMarkRanges covers the major Indic/Southeast-Asian spacing
// combining marks: scalars that are GCB=SpacingMark (so they count as
// BT-non-starter) despite having ccc=0 (so CCC alone would miss them).
var spacingMarkRanges = []runeRange{
	{0x0903, 0x0903},
	{0x093B, 0x093B},
	{0x093E, 0x0940},
	{0x0949, 0x094C},
	{0x094E, 0x094F},
	{0x0982, 0x0983},
	{0x09BE, 0x09C0},
	{0x09C7, 0x09C8},
	{0x09CB, 0x09CC},
	{0x09D7, 0x09D7},
	{0x0A03, 0x0A03},
	{0x0A3E, 0x0A40},
	{0x0A83, 0x0A83},
	{0x0ABE, 0x0AC0},
	{0x0AC9, 0x0AC9},
	{0x0ACB, 0x0ACC},
	{0x0B02, 0x0B03},
	{0x0B3E, 0x0B3E},
	{0x0B40, 0x0B40},
	{0x0B47, 0x0B48},
	{0x0B4B, 0x0B4C},
	{0x0B57, 0x0B57},
	{0x0BBE, 0x0BBF},
	{0x0BC1, 0x0BC2},
	{0x0BC6, 0x0BC8},
	{0x0BCA, 0x0BCC},
	{0x0BD7, 0x0BD7},
	{0x0C01, 0x0C03},
	{0x0C41, 0x0C44},
	{0x0C82, 0x0C83},
	{0x0CBE, 0x0CBE},
	{0x0CC0, 0x0CC4},
	{0x0CC7, 0x0CC8},
	{0x0CCA, 0x0CCB},
	{0x0CD5, 0x0CD6},
	{0x0D02, 0x0D03},
	{0x0D3E, 0x0D40},
	{0x0D46, 0x0D48},
	{0x0D4A, 0x0D4C},
	{0x0D57, 0x0D57},
	{0x0D82, 0x0D83},
	{0x0DCF, 0x0DD1},
	{0x0DD8, 0x0DDF},
	{0x0DF2, 0x0DF3},
	{0x0F3E, 0x0F3F},
	{0x0F7F, 0x0F7F},
	{0x102B, 0x102C},
	{0x1038, 0x1038},
	{0x103B, 0x103C},
	{0x1056, 0x1057},
	{0x1062, 0x1064},
	{0x1067, 0x106D},
	{0x1083, 0x1084},
	{0x1087, 0x108C},
	{0x108F, 0x108F},
	{0x109A, 0x109C},
	{0x1715, 0x1715},
	{0x1734, 0x1734},
	{0x17B6, 0x17B6},
	{0x17BE, 0x17C5},
	{0x17C7, 0x17C8},
	{0x1923, 0x1926},
	{0x1929, 0x192B},
	{0x1930, 0x1931},
	{0x1933, 0x1938},
	{0x1A19, 0x1A1A},
	{0x1A55, 0x1A55},
	{0x1A57, 0x1A57},
	{0xA823, 0xA824},
	{0xA827, 0xA827},
	{0xAA7D, 0xAA7D},
}

// extendExtraRanges covers the Extend scalars that have ccc=0 (so they are
// not already caught as non-starters): variation selectors, ZWNJ, emoji
// skin-tone modifiers, and tag characters.
var extendExtraRanges = []runeRange{
	{0x200C, 0x200C}, // ZWNJ
	{0x180B, 0x180D}, // Mongolian free variation selectors
	{0xFE00, 0xFE0F}, // variation selectors 1-16
	{0xE0020, 0xE007E}, // tag characters
	{0xE0100, 0xE01EF}, // variation selectors 17-256
	{0x1F3FB, 0x1F3FF}, // emoji skin tone modifiers
}
