package streamsafe

import (
	"strings"
	"testing"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// clusterCount counts grapheme clusters using an independent segmenter, so
// these tests aren't just checking the Inserter against its own counting
// logic.
func clusterCount(s string) int {
	n := 0
	g := graphemes.FromString(s)
	for g.Next() {
		n++
	}
	return n
}

// TestInserter_ShortRunIsSingleGraphemeCluster confirms a base letter plus a
// handful of combining marks, under the limit, is untouched by the
// Inserter and still forms exactly one grapheme cluster.
func TestInserter_ShortRunIsSingleGraphemeCluster(t *testing.T) {
	input := append([]rune{'A'}, repeatRune(0x0300, 5)...)
	out := push(New(), input)

	if string(out) != string(input) {
		t.Fatalf("short run should pass through unchanged, got %q want %q", string(out), string(input))
	}
	if got := clusterCount(string(out)); got != 1 {
		t.Errorf("clusterCount(%q) = %d, want 1", string(out), got)
	}
}

// TestInserter_CGJInsertionPreservesClusterAfterStripping confirms that
// stripping the inserted CGJs back out of a long, bounded run reconstructs
// a string with the same grapheme-cluster count an independent segmenter
// reports for the original, unbounded run: the Inserter adds scalars for
// normalization safety, it never changes what a user would perceive as one
// character.
func TestInserter_CGJInsertionPreservesClusterAfterStripping(t *testing.T) {
	input := append([]rune{'A'}, repeatRune(0x0300, 40)...)
	want := clusterCount(string(input))

	out := push(New(), input)
	stripped := strings.ReplaceAll(string(out), string(CGJ), "")

	if stripped != string(input) {
		t.Fatalf("stripping CGJ from the bounded output did not reconstruct the original run")
	}
	if got := clusterCount(stripped); got != want {
		t.Errorf("clusterCount after stripping CGJ = %d, want %d (same as the unbounded original)", got, want)
	}
}
