package transducer

import "testing"

func runLossy(in []rune, opts ...Option) ([]rune, error) {
	c := New(Lossy, NewOptions(opts...))
	var out []rune
	for _, sv := range in {
		o, err := c.Push(sv)
		if err != nil {
			return nil, err
		}
		out = append(out, o...)
	}
	o, err := c.End(true)
	if err != nil {
		return nil, err
	}
	return append(out, o...), nil
}

func runStrict(in []rune, opts ...Option) ([]rune, error) {
	c := New(Strict, NewOptions(opts...))
	var out []rune
	for _, sv := range in {
		o, err := c.Push(sv)
		if err != nil {
			return nil, err
		}
		out = append(out, o...)
	}
	o, err := c.End(true)
	if err != nil {
		return nil, err
	}
	return append(out, o...), nil
}

func TestCore_PlainASCIIRoundTrips(t *testing.T) {
	out, err := runLossy([]rune("hello world\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello world\n" {
		t.Errorf("got %q, want %q", string(out), "hello world\n")
	}
}

func TestCore_AppendsTrailingNewlineLossy(t *testing.T) {
	out, err := runLossy([]rune("no newline here"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 || out[len(out)-1] != 0x000A {
		t.Errorf("expected a trailing U+000A to be appended, got %q", string(out))
	}
}

func TestCore_StrictRejectsMissingTrailingNewline(t *testing.T) {
	_, err := runStrict([]rune("no newline here"))
	if err == nil {
		t.Fatal("expected an error for a stream missing its trailing newline")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "MissingTrailingNewline" {
		t.Errorf("got error %v, want MissingTrailingNewline", err)
	}
}

func TestCore_CRLFCollapsesToLF(t *testing.T) {
	out, err := runLossy([]rune("a\r\nb\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestCore_LoneCRBecomesLF(t *testing.T) {
	out, err := runLossy([]rune("a\rb\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestCore_StrictRejectsLoneCR(t *testing.T) {
	_, err := runStrict([]rune("a\rb\n"))
	if err == nil {
		t.Fatal("expected an error for a lone carriage return in strict mode")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "CrOrCrlf" {
		t.Errorf("got error %v, want CrOrCrlf", err)
	}
}

func TestCore_LossyElidesSGR(t *testing.T) {
	out, err := runLossy([]rune("\x1b[31mred\x1b[0m\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "red\n" {
		t.Errorf("got %q, want %q (SGR elided)", string(out), "red\n")
	}
}

func TestCore_ColorEscapesOptionPassesThroughSGR(t *testing.T) {
	out, err := runLossy([]rune("\x1b[31mred\x1b[0m\n"), WithColorEscapes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x1b[31mred\x1b[0m\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestCore_StrictRejectsEscapeSequence(t *testing.T) {
	_, err := runStrict([]rune("\x1b[31mred\x1b[0m\n"))
	if err == nil {
		t.Fatal("expected an error for an escape sequence in strict mode")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "EscapeSequence" {
		t.Errorf("got error %v, want EscapeSequence", err)
	}
}

func TestCore_LossyStripsDisallowedControl(t *testing.T) {
	out, err := runLossy([]rune("a\x01b\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "ab\n" {
		t.Errorf("got %q, want %q", string(out), "ab\n")
	}
}

func TestCore_StrictRejectsDisallowedControl(t *testing.T) {
	_, err := runStrict([]rune("a\x01b\n"))
	if err == nil {
		t.Fatal("expected an error for a disallowed control character")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "DisallowedControl" {
		t.Errorf("got error %v, want DisallowedControl", err)
	}
}

func TestCore_StripsLeadingBOMLossy(t *testing.T) {
	out, err := runLossy([]rune("﻿hello\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("got %q, want %q", string(out), "hello\n")
	}
}

func TestCore_StrictRejectsBOM(t *testing.T) {
	_, err := runStrict([]rune("﻿hello\n"))
	if err == nil {
		t.Fatal("expected an error for a byte order mark in strict mode")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "BomMidstream" {
		t.Errorf("got error %v, want BomMidstream", err)
	}
}

func TestCore_StripsMidstreamBOMLossy(t *testing.T) {
	out, err := runLossy([]rune("hi﻿there\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hithere\n" {
		t.Errorf("got %q, want %q (mid-stream BOM stripped)", string(out), "hithere\n")
	}
}

func TestCore_StrictRejectsMidstreamBOM(t *testing.T) {
	_, err := runStrict([]rune("hi﻿there\n"))
	if err == nil {
		t.Fatal("expected an error for a mid-stream byte order mark in strict mode")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "BomMidstream" {
		t.Errorf("got error %v, want BomMidstream", err)
	}
}

func TestCore_BOMCompatPrependsOnce(t *testing.T) {
	out, err := runLossy([]rune("hi\n"), WithBOMCompat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 || out[0] != 0xFEFF {
		t.Fatalf("expected a leading BOM, got %q", string(out))
	}
	count := 0
	for _, r := range out {
		if r == 0xFEFF {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one BOM in the output, got %d", count)
	}
}

func TestCore_CRLFCompatOption(t *testing.T) {
	out, err := runLossy([]rune("a\nb\n"), WithCRLFCompat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\r\nb\r\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestCore_StreamSafeBreaksLongCombiningRun(t *testing.T) {
	input := append([]rune("A"), make([]rune, 40)...)
	for i := 1; i < len(input); i++ {
		input[i] = 0x0300
	}
	input = append(input, '\n')

	out, err := runLossy(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run := 0
	maxRun := 0
	for _, r := range out {
		if r == 'A' || r == 0x000A {
			run = 0
			continue
		}
		if r == 0x034F {
			run = 1
			continue
		}
		run++
		if run > maxRun {
			maxRun = run
		}
	}
	if maxRun > 30 {
		t.Errorf("longest non-starter run in output = %d, want <= 30", maxRun)
	}
}

func TestCore_SingletonLetterReplacedLossy(t *testing.T) {
	out, err := runLossy([]rune{0x2126, 0x000A}) // OHM SIGN
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rune{0x03A9, 0x000A} // GREEK CAPITAL LETTER OMEGA
	if string(out) != string(want) {
		t.Errorf("got %q, want OHM SIGN folded to Greek Omega", string(out))
	}
}

func TestCore_SingletonLetterRejectedStrict(t *testing.T) {
	_, err := runStrict([]rune{0x2126, 0x000A})
	if err == nil {
		t.Fatal("expected an error for the OHM sign in strict mode")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != "SingletonLetter" {
		t.Errorf("got error %v, want SingletonLetter", err)
	}
}
