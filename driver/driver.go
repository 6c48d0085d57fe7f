// Package driver implements the output driver: it walks a normalized term
// as a lazy Church-encoded cons-list, extracting each element as a byte or
// a bit and emitting it, interleaving reduction with writes so that
// lazily-defined infinite streams still print their finite
// consumer-visible prefix (spec.md §4.6).
package driver

import (
	"fmt"
	"io"

	"blc/reducer"
	"blc/term"
)

// ErrorKind classifies a failure recognising the Church-list/boolean/byte
// shapes the driver expects while walking the output term.
type ErrorKind int

const (
	// ErrNotReducedToList is raised when weak-head reduction does not
	// yield an abstraction at all.
	ErrNotReducedToList ErrorKind = iota

	// ErrExpectedLamForPair is raised when a Church boolean's expected
	// two-binder abstraction is missing.
	ErrExpectedLamForPair

	// ErrExpectedAppTail is raised when a cons cell's selector
	// application A(V(0), head) is missing.
	ErrExpectedAppTail

	// ErrExpectedAppOrNil is raised when the body under the first
	// binder is neither a cons application nor the nil shape.
	ErrExpectedAppOrNil

	// ErrExpectedVar is raised when a cons cell's selector position does
	// not hold a variable at all.
	ErrExpectedVar

	// ErrBadVar is raised when a selector variable is present but
	// references the wrong binder.
	ErrBadVar

	// ErrListTerminatedTooEarly is raised when a byte's inner 8-element
	// list reaches nil before 8 elements have been consumed.
	ErrListTerminatedTooEarly

	// ErrNonBooleanValue is raised when a list element expected to be a
	// Church boolean is some other shape.
	ErrNonBooleanValue

	// ErrUndelimitedList is raised when a byte's 8-element list is not
	// terminated by nil immediately after its 8th element.
	ErrUndelimitedList
)

// DriveError is the error kind produced while walking the output term.
type DriveError struct {
	Kind    ErrorKind
	Message string
}

func (e DriveError) Error() string { return e.Message }

func driveErr(kind ErrorKind, msg string) error {
	return DriveError{Kind: kind, Message: msg}
}

// Mode selects how each list element is decoded and emitted.
type Mode int

const (
	// ModeBytes packs 8 Church booleans per emitted octet.
	ModeBytes Mode = iota

	// ModeBits emits one ASCII '0'/'1' per list element.
	ModeBits
)

// Run drives program as a lazy Church-encoded cons-list, writing decoded
// bytes or ASCII bits to out according to mode, stopping when nil is
// reached. Run is a straight-line loop: it alternates weak-head reduction
// and write calls on a single thread, with no suspension points.
func Run(out io.Writer, program term.Term, mode Mode) error {
	current := program
	for {
		head, tail, isNil, err := uncons(current)
		if err != nil {
			return err
		}
		if isNil {
			return nil
		}

		var emit byte
		switch mode {
		case ModeBytes:
			b, err := decodeByte(head)
			if err != nil {
				return err
			}
			emit = b
		case ModeBits:
			bit, err := decodeBool(head)
			if err != nil {
				return err
			}
			emit = '0'
			if bit {
				emit = '1'
			}
		}
		if _, err := out.Write([]byte{emit}); err != nil {
			return err
		}
		current = tail
	}
}

// uncons reduces current to weak-head normal form and recognises whether
// it has the shape of a cons cell — L(A(A(V(0), head), tail)) — or nil —
// L(L(V(0))) — per spec.md §4.6. Matching relies solely on de Bruijn index
// equality, never on names.
func uncons(current term.Term) (head term.Term, tail term.Term, isNil bool, err error) {
	whnf := reducer.EvalLazy(current)
	abs, ok := whnf.(term.Abs)
	if !ok {
		return nil, nil, false, driveErr(ErrNotReducedToList, "expected the list to weak-head-reduce to an abstraction")
	}

	body := reducer.EvalFull(abs.Body)

	if inner, ok := body.(term.Abs); ok {
		if v, ok := inner.Body.(term.Var); ok && v.Index == 0 {
			return nil, nil, true, nil
		}
		return nil, nil, false, driveErr(ErrExpectedAppOrNil, "expected the nil shape L(V(0)) under the second binder")
	}

	app, ok := body.(term.App)
	if !ok {
		return nil, nil, false, driveErr(ErrExpectedAppOrNil, "expected a cons application or a nil abstraction")
	}

	selectorApp, ok := app.Func.(term.App)
	if !ok {
		return nil, nil, false, driveErr(ErrExpectedAppTail, "expected the cons cell's selector application A(V(0), head)")
	}

	selectorVar, ok := selectorApp.Func.(term.Var)
	if !ok {
		return nil, nil, false, driveErr(ErrExpectedVar, "expected the cons cell's selector to be a bound variable")
	}
	if selectorVar.Index != 0 {
		return nil, nil, false, driveErr(ErrBadVar, "expected the cons cell's selector to reference the pair's own binder")
	}

	return selectorApp.Arg, app.Arg, false, nil
}

// decodeBool recognises a Church boolean: the two-binder abstraction
// L(L(V(1))) (true) or L(L(V(0))) (false).
func decodeBool(t term.Term) (bool, error) {
	normal := reducer.EvalFull(t)
	outer, ok := normal.(term.Abs)
	if !ok {
		return false, driveErr(ErrExpectedLamForPair, "expected a Church boolean's outer binder")
	}
	inner, ok := outer.Body.(term.Abs)
	if !ok {
		return false, driveErr(ErrExpectedLamForPair, "expected a Church boolean's second binder")
	}
	v, ok := inner.Body.(term.Var)
	if !ok {
		return false, driveErr(ErrNonBooleanValue, "expected a Church boolean's body to be a bound variable")
	}
	switch v.Index {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, driveErr(ErrNonBooleanValue, "Church boolean body referenced neither enclosing binder")
	}
}

// decodeByte recognises a byte as an 8-element Church list of Church
// booleans, most-significant bit first, terminated by nil.
func decodeByte(t term.Term) (byte, error) {
	var b byte
	current := t
	for i := 0; i < 8; i++ {
		head, tail, isNil, err := uncons(current)
		if err != nil {
			return 0, err
		}
		if isNil {
			return 0, driveErr(ErrListTerminatedTooEarly, fmt.Sprintf("byte's bit-list ended after %d of 8 elements", i))
		}
		bit, err := decodeBool(head)
		if err != nil {
			return 0, err
		}
		b <<= 1
		if bit {
			b |= 1
		}
		current = tail
	}

	_, _, isNil, err := uncons(current)
	if err != nil {
		return 0, err
	}
	if !isNil {
		return 0, driveErr(ErrUndelimitedList, "expected the byte's 8-bit list to be terminated by nil")
	}
	return b, nil
}
