package parser

import (
	"fmt"
	"strings"

	"blc/codec"
	"blc/term"
)

// deBruijnPrinter implements term.Visitor and renders a term as the de
// Bruijn textual form described in spec.md §4.7: variables print as
// decimal k+1, abstractions as "λ E", and applications are parenthesised
// only where ambiguity would otherwise arise.
type deBruijnPrinter struct{}

func (deBruijnPrinter) VisitVar(t term.Var) any {
	return fmt.Sprintf("%d", t.Index+1)
}

func (p deBruijnPrinter) VisitAbs(t term.Abs) any {
	return "λ " + t.Body.Accept(p).(string)
}

func (p deBruijnPrinter) VisitApp(t term.App) any {
	return p.funcSide(t.Func) + " " + p.argSide(t.Arg)
}

// funcSide renders the function position of an application: variables and
// left-nested applications print bare, abstractions are parenthesised.
func (p deBruijnPrinter) funcSide(t term.Term) string {
	switch t.(type) {
	case term.Var, term.App:
		return t.Accept(p).(string)
	default:
		return "(" + t.Accept(p).(string) + ")"
	}
}

// argSide renders the argument position of an application: only variables
// print bare, everything else is parenthesised.
func (p deBruijnPrinter) argSide(t term.Term) string {
	switch t.(type) {
	case term.Var:
		return t.Accept(p).(string)
	default:
		return "(" + t.Accept(p).(string) + ")"
	}
}

// PrintDeBruijn renders t in the de Bruijn textual form used throughout
// spec.md's worked examples (e.g. "λ 1", "λ λ 2 (2 1)").
func PrintDeBruijn(t term.Term) string {
	return t.Accept(deBruijnPrinter{}).(string)
}

// blcPrinter implements term.Visitor and renders a term back to its
// canonical BLC bit string.
type blcPrinter struct{}

func (blcPrinter) VisitVar(t term.Var) any {
	return strings.Repeat("1", t.Index+1) + "0"
}

func (p blcPrinter) VisitAbs(t term.Abs) any {
	return "00" + t.Body.Accept(p).(string)
}

func (p blcPrinter) VisitApp(t term.App) any {
	return "01" + t.Func.Accept(p).(string) + t.Arg.Accept(p).(string)
}

// PrintBLC renders t as the canonical BLC bit string (spec.md §4.7).
func PrintBLC(t term.Term) string {
	return t.Accept(blcPrinter{}).(string)
}

// PrintBytes renders t as its BLC encoding and decodes that back to raw
// bytes via the byte codec (spec.md §4.7's third format). t must already
// be the Church-list-of-Church-bytes shape the codec expects; any other
// shape surfaces as the codec's own decode error.
func PrintBytes(t term.Term) ([]byte, error) {
	return codec.Decode(PrintBLC(t))
}
