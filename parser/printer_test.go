package parser

import (
	"testing"

	"blc/term"
)

func TestPrintDeBruijnVar(t *testing.T) {
	got := PrintDeBruijn(term.Var{Index: 0})
	if want := "1"; got != want {
		t.Errorf("PrintDeBruijn(Var{0}) = %q, want %q", got, want)
	}
}

func TestPrintDeBruijnIdentity(t *testing.T) {
	got := PrintDeBruijn(term.Abs{Body: term.Var{Index: 0}})
	if want := "λ 1"; got != want {
		t.Errorf("PrintDeBruijn(identity) = %q, want %q", got, want)
	}
}

func TestPrintDeBruijnChurchTwoApplication(t *testing.T) {
	// λ λ 2 (2 1) — the shape of a Church numeral applying its function
	// argument twice to its base argument.
	two := term.Var{Index: 1}
	one := term.Var{Index: 0}
	body := term.App{Func: two, Arg: term.App{Func: two, Arg: one}}
	got := PrintDeBruijn(term.Abs{Body: term.Abs{Body: body}})
	if want := "λ λ 2 (2 1)"; got != want {
		t.Errorf("PrintDeBruijn = %q, want %q", got, want)
	}
}

func TestPrintDeBruijnParenthesisesAbstractionInFuncPosition(t *testing.T) {
	// (λ 1) 1 — an abstraction applied to a variable must be parenthesised
	// in function position, but the bare variable argument is not.
	inner := term.Abs{Body: term.Var{Index: 0}}
	got := PrintDeBruijn(term.App{Func: inner, Arg: term.Var{Index: 0}})
	if want := "(λ 1) 1"; got != want {
		t.Errorf("PrintDeBruijn = %q, want %q", got, want)
	}
}

func TestPrintBLCRoundTripsThroughParseBLC(t *testing.T) {
	tests := []string{
		"000010",     // λ λ 1 (nil / false)
		"0000110",    // λ λ 2 (true)
		"0100100010", // identity applied to identity
	}
	for _, bits := range tests {
		parsed, err := ParseBLC(bits)
		if err != nil {
			t.Fatalf("ParseBLC(%q) raised an error: %v", bits, err)
		}
		if got := PrintBLC(parsed); got != bits {
			t.Errorf("PrintBLC(ParseBLC(%q)) = %q, want %q", bits, got, bits)
		}
	}
}

func TestPrintBytesDecodesChurchByteList(t *testing.T) {
	// A term that BLC-prints as the codec's encoding of a single 0x00 byte
	// must decode back through PrintBytes to that same byte.
	parsed, err := ParseBLC(
		"00010110" + // PAIR_OPEN
			"00010110" + "000010" + "00010110" + "000010" + "00010110" + "000010" + "00010110" + "000010" +
			"00010110" + "000010" + "00010110" + "000010" + "00010110" + "000010" + "00010110" + "000010" +
			"000010" + // inner NIL terminating the byte's bit list
			"000010", // outer NIL terminating the byte list
	)
	if err != nil {
		t.Fatalf("ParseBLC raised an error: %v", err)
	}
	got, err := PrintBytes(parsed)
	if err != nil {
		t.Fatalf("PrintBytes raised an error: %v", err)
	}
	if len(got) != 1 || got[0] != 0x00 {
		t.Errorf("PrintBytes = %v, want [0]", got)
	}
}
