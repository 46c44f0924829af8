package classify

import "testing"

func TestCCC_CombiningDiaeresis(t *testing.T) {
	if got := CCC(0x0308); got == 0 {
		t.Errorf("CCC(U+0308) = 0, want nonzero (combining diaeresis above)")
	}
}

func TestCCC_Starter(t *testing.T) {
	if got := CCC('a'); got != 0 {
		t.Errorf("CCC('a') = %d, want 0", got)
	}
}

func TestIsBTNonStarter(t *testing.T) {
	tests := []struct {
		name string
		sv   rune
		want bool
	}{
		{"combining diaeresis", 0x0308, true},
		{"plain ascii letter", 'a', false},
		{"ZWJ", 0x200D, true},
		{"CGJ itself is exempt", 0x034F, false},
		{"devanagari spacing sign", 0x0903, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBTNonStarter(tt.sv); got != tt.want {
				t.Errorf("IsBTNonStarter(%U) = %v, want %v", tt.sv, got, tt.want)
			}
		})
	}
}

func TestIsBTNonEnder(t *testing.T) {
	tests := []struct {
		name string
		sv   rune
		want bool
	}{
		{"ZWJ", 0x200D, true},
		{"arabic prepend", 0x0600, true},
		{"plain ascii letter", 'a', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBTNonEnder(tt.sv); got != tt.want {
				t.Errorf("IsBTNonEnder(%U) = %v, want %v", tt.sv, got, tt.want)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		sv   rune
		want Category
	}{
		{0x09, CategoryTAB},
		{0x0A, CategoryLF},
		{0x0D, CategoryCR},
		{0x0C, CategoryFF},
		{0x85, CategoryNEL},
		{0xFEFF, CategoryBOM},
		{0xFFFC, CategoryORC},
		{0x00, CategoryC0},
		{0x7F, CategoryDEL},
		{0x80, CategoryC1},
		{0xFFFE, CategoryNoncharacter},
		{0xE000, CategoryPrivateUse},
		{0xE0041, CategoryTag},
		{0x202A, CategoryExplicitBidi},
		{0xF900, CategoryCJKCompatIdeograph},
		{'a', CategoryOther},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.sv); got != tt.want {
			t.Errorf("CategoryOf(%U) = %v, want %v", tt.sv, got, tt.want)
		}
	}
}

func TestPreNFCAction_Angstrom(t *testing.T) {
	row := PreNFCAction(0x212B)
	repl, ok := row.Lossy.(Replace)
	if !ok || len(repl.Seq) != 1 || repl.Seq[0] != 0x00C5 {
		t.Fatalf("PreNFCAction(ANGSTROM SIGN).Lossy = %#v, want Replace{[0x00C5]}", row.Lossy)
	}
	errAction, ok := row.Strict.(Error)
	if !ok || errAction.Kind != ErrSingletonLetter {
		t.Fatalf("PreNFCAction(ANGSTROM SIGN).Strict = %#v, want Error{Kind: SingletonLetter}", row.Strict)
	}
}

func TestPreNFCAction_CatalogedCJKCompatIdeograph(t *testing.T) {
	row := PreNFCAction(0xF900)
	lossy, ok := row.Lossy.(Variation)
	if !ok || len(lossy.Seq) != 2 || lossy.Seq[0] != 0x8C48 || lossy.Seq[1] != 0xFE00 {
		t.Fatalf("PreNFCAction(U+F900).Lossy = %#v, want Variation{[0x8C48, 0xFE00]}", row.Lossy)
	}
	strict, ok := row.Strict.(Variation)
	if !ok || len(strict.Seq) != 2 {
		t.Fatalf("PreNFCAction(U+F900).Strict = %#v, want the same Variation", row.Strict)
	}
}

func TestPreNFCAction_UncatalogedCJKCompatIdeographIsFatalInBothModes(t *testing.T) {
	row := PreNFCAction(0xF90A)

	lossyErr, ok := row.Lossy.(Error)
	if !ok || lossyErr.Kind != ErrIncompleteVariationTable {
		t.Fatalf("PreNFCAction(U+F90A).Lossy = %#v, want Error{Kind: IncompleteVariationTable}", row.Lossy)
	}

	strictErr, ok := row.Strict.(Error)
	if !ok || strictErr.Kind != ErrIncompleteVariationTable {
		t.Fatalf("PreNFCAction(U+F90A).Strict = %#v, want Error{Kind: IncompleteVariationTable}", row.Strict)
	}
}

func TestPreNFCAction_Passthrough(t *testing.T) {
	row := PreNFCAction('z')
	if _, ok := row.Lossy.(Passthrough); !ok {
		t.Errorf("PreNFCAction('z').Lossy = %#v, want Passthrough", row.Lossy)
	}
}

func TestMainAction_TibetanExpansion(t *testing.T) {
	row, n := MainAction([]rune{0x0F77})
	if n != 1 {
		t.Fatalf("matched length = %d, want 1", n)
	}
	repl, ok := row.Lossy.(Replace)
	want := []rune{0x0FB2, 0x0F71, 0x0F80}
	if !ok || len(repl.Seq) != len(want) {
		t.Fatalf("MainAction(U+0F77).Lossy = %#v, want Replace%v", row.Lossy, want)
	}
	for i, r := range want {
		if repl.Seq[i] != r {
			t.Fatalf("MainAction(U+0F77).Lossy.Seq = %v, want %v", repl.Seq, want)
		}
	}
}

func TestMainAction_DisallowedControl(t *testing.T) {
	row, _ := MainAction([]rune{0x01})
	if _, ok := row.Lossy.(Strip); !ok {
		t.Errorf("MainAction(U+0001).Lossy = %#v, want Strip", row.Lossy)
	}
	errAction, ok := row.Strict.(Error)
	if !ok || errAction.Kind != ErrDisallowedControl {
		t.Errorf("MainAction(U+0001).Strict = %#v, want Error{Kind: DisallowedControl}", row.Strict)
	}
}

func TestMainAction_BOM(t *testing.T) {
	row, _ := MainAction([]rune{0xFEFF})
	if _, ok := row.Lossy.(Strip); !ok {
		t.Errorf("MainAction(U+FEFF).Lossy = %#v, want Strip", row.Lossy)
	}
	errAction, ok := row.Strict.(Error)
	if !ok || errAction.Kind != ErrBomMidstream {
		t.Errorf("MainAction(U+FEFF).Strict = %#v, want Error{Kind: BomMidstream}", row.Strict)
	}
}

func TestMainAction_TabPassesThrough(t *testing.T) {
	row, _ := MainAction([]rune{0x09})
	if _, ok := row.Lossy.(Passthrough); !ok {
		t.Errorf("MainAction(TAB).Lossy = %#v, want Passthrough", row.Lossy)
	}
}
