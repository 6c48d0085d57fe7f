package parser

import (
	"strings"

	"blc/term"
)

// ParseBLC decodes a Binary Lambda Calculus bit string into a term.Term.
// The grammar is:
//
//	term := "00" term           -- abstraction
//	      | "01" term term      -- application
//	      | "1"^n "0"           -- variable, de Bruijn index n-1
//
// bits must consist only of '0'/'1' characters; any trailing bits after a
// complete term are ignored, matching the teacher's convention of decoding
// exactly one top-level term per call.
func ParseBLC(bits string) (term.Term, error) {
	t, _, err := parseBLCAt(bits, 0, 0)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// parseBLCAt decodes one term starting at bit offset pos, within a term
// nested depth binders deep (depth tracks how many abstractions enclose
// the current position, used to bounds-check variable indices).
//
// Returns the decoded term and the bit offset immediately following it.
func parseBLCAt(bits string, pos int, depth int) (term.Term, int, error) {
	if pos >= len(bits) {
		return nil, pos, createBLCError(ErrIncompleteStatement, pos, "expected a term, found end of input")
	}

	if strings.HasPrefix(bits[pos:], "00") {
		body, next, err := parseBLCAt(bits, pos+2, depth+1)
		if err != nil {
			return nil, next, err
		}
		return term.Abs{Body: body}, next, nil
	}

	if strings.HasPrefix(bits[pos:], "01") {
		fn, next, err := parseBLCAt(bits, pos+2, depth)
		if err != nil {
			return nil, next, err
		}
		arg, next2, err := parseBLCAt(bits, next, depth)
		if err != nil {
			return nil, next2, err
		}
		return term.App{Func: fn, Arg: arg}, next2, nil
	}

	// Variable: a run of "1"s terminated by a "0". The run length is the
	// 1-indexed de Bruijn index. Neither "00" nor "01" matched above, so
	// this is the only remaining shape regardless of whether the run is
	// empty (a bare "0" here is a zero index, not incomplete input).
	count := 0
	i := pos
	for i < len(bits) && bits[i] == '1' {
		count++
		i++
	}
	if i >= len(bits) {
		return nil, i, createBLCError(ErrIncompleteStatement, i, "unterminated variable index")
	}
	// bits[i] == '0' terminates the run.
	index := count - 1
	if index < 0 {
		return nil, i + 1, createBLCError(ErrZeroBruijnIndex, pos, "variable index must be at least 1")
	}
	if index >= depth {
		return nil, i + 1, createBLCError(ErrBruijnIndexOutOfBounds, pos, "variable index exceeds enclosing binder depth")
	}
	return term.Var{Index: index}, i + 1, nil
}
