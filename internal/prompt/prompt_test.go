package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/musher-dev/basictext/internal/output"
	"github.com/musher-dev/basictext/internal/terminal"
)

func newTestPrompter(input string, out *bytes.Buffer) *Prompter {
	term := &terminal.Info{IsTTY: false, NoColor: true, Width: 80, Height: 24}
	w := output.NewWriter(out, out, term)
	return &Prompter{out: w, reader: bufio.NewReader(strings.NewReader(input))}
}

func TestConfirm_DefaultsOnEmptyInput(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompter("\n", &out)

	got, err := p.Confirm("Overwrite?", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected empty input to return the default value true")
	}
}

func TestConfirm_AcceptsYesVariants(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "YES\n"} {
		t.Run(input, func(t *testing.T) {
			var out bytes.Buffer
			p := newTestPrompter(input, &out)

			got, err := p.Confirm("Overwrite?", false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got {
				t.Errorf("input %q: expected true", input)
			}
		})
	}
}

func TestConfirm_RejectsOtherInput(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompter("n\n", &out)

	got, err := p.Confirm("Overwrite?", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("expected 'n' to override a true default")
	}
}

func TestSelect_ReturnsZeroBasedIndex(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompter("2\n", &out)

	got, err := p.Select("Pick one", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Select() = %d, want 1", got)
	}
}

func TestSelect_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompter("bogus\n5\n1\n", &out)

	got, err := p.Select("Pick one", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("Select() = %d, want 0", got)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Error("expected a warning about invalid selections to have been printed")
	}
}
