// Package escseq recognizes the escape-sequence families the Basic Text
// transducer must elide or reject: SGR, CSI, OSC, LEC, and ESC, all rooted
// at one or more U+001B scalars. Grounded on the teacher's internal/ansi
// ECMA-48 scanner, generalized from "strip everything" into the spec's
// five tabled grammars with an explicit longest-match tie-break order.
package escseq

// Family identifies which escape-sequence grammar matched.
type Family int

const (
	FamilyNone Family = iota
	FamilySGR
	FamilyCSI
	FamilyOSC
	FamilyLEC
	FamilyESC
)

func (f Family) String() string {
	switch f {
	case FamilySGR:
		return "SGR"
	case FamilyCSI:
		return "CSI"
	case FamilyOSC:
		return "OSC"
	case FamilyLEC:
		return "LEC"
	case FamilyESC:
		return "ESC"
	default:
		return "none"
	}
}

// families lists the five recognized grammars in tie-break priority
// order: on equal-length matches, the earlier entry wins.
var families = []Family{FamilySGR, FamilyCSI, FamilyOSC, FamilyLEC, FamilyESC}

// Recognize attempts to match the longest escape-sequence family starting
// at runes[i]. runes[i] must be U+001B or Recognize returns ok=false.
// On success it returns the winning family and the total number of runes
// consumed, including the leading run of one or more ESC scalars.
func Recognize(runes []rune, i int) (family Family, length int, ok bool) {
	if i < 0 || i >= len(runes) || runes[i] != 0x1B {
		return FamilyNone, 0, false
	}

	j := i
	for j < len(runes) && runes[j] == 0x1B {
		j++
	}
	escCount := j - i

	lengths := map[Family]int{
		FamilySGR: matchSGR(runes, j),
		FamilyCSI: matchCSI(runes, j),
		FamilyOSC: matchOSC(runes, j),
		FamilyLEC: matchLEC(runes, j),
		FamilyESC: matchESC(runes, j),
	}

	bestFamily := FamilyNone
	bestLen := -1
	for _, fam := range families {
		n := lengths[fam]
		if n < 0 {
			continue
		}
		if n > bestLen {
			bestLen = n
			bestFamily = fam
		}
	}

	if bestFamily == FamilyNone {
		return FamilyNone, 0, false
	}
	return bestFamily, escCount + bestLen, true
}

// Each matchX function returns the number of runes matched after the
// leading ESC run (starting at index j), or -1 if that family does not
// match at all at this position.

// matchSGR: [ (0x20..0x3F)* 0x6D
func matchSGR(r []rune, j int) int {
	if j >= len(r) || r[j] != '[' {
		return -1
	}
	k := j + 1
	for k < len(r) && r[k] >= 0x20 && r[k] <= 0x3F {
		k++
	}
	if k < len(r) && r[k] == 0x6D {
		return k - j + 1
	}
	return -1
}

// matchCSI: [ (0x20..0x3F)* (0x40..0x7E)?  — final byte optional.
func matchCSI(r []rune, j int) int {
	if j >= len(r) || r[j] != '[' {
		return -1
	}
	k := j + 1
	for k < len(r) && r[k] >= 0x20 && r[k] <= 0x3F {
		k++
	}
	if k < len(r) && r[k] >= 0x40 && r[k] <= 0x7E {
		k++
	}
	return k - j
}

// matchOSC: ] (^{0x07,0x18,0x1B})* (0x07|0x18)?
func matchOSC(r []rune, j int) int {
	if j >= len(r) || r[j] != ']' {
		return -1
	}
	k := j + 1
	for k < len(r) && r[k] != 0x07 && r[k] != 0x18 && r[k] != 0x1B {
		k++
	}
	if k < len(r) && (r[k] == 0x07 || r[k] == 0x18) {
		k++
	}
	return k - j
}

// matchLEC: [ [ (0x00..0x7F)?
func matchLEC(r []rune, j int) int {
	if j+1 >= len(r) || r[j] != '[' || r[j+1] != '[' {
		return -1
	}
	k := j + 2
	if k < len(r) && r[k] >= 0x00 && r[k] <= 0x7F {
		k++
	}
	return k - j
}

// matchESC: (0x40..0x7E)? — always matches, possibly zero-length (a bare
// ESC rooted sequence with nothing recognizable following it).
func matchESC(r []rune, j int) int {
	if j < len(r) && r[j] >= 0x40 && r[j] <= 0x7E {
		return 1
	}
	return 0
}
