// Package reducer implements beta reduction of lambda terms: reduction to
// weak-head normal form (the strategy the output driver uses to drive
// lazy, possibly-infinite Church lists) and full normal form (used when a
// term must be rendered in its entirety).
package reducer

import "blc/term"

// EvalLazy reduces t to weak-head normal form: the outermost redex at the
// spine of applications is reduced repeatedly until the head is a variable
// or an abstraction.
//
// The reduction walks the spine using an explicit Stack rather than
// recursion: each argument encountered while descending into the
// function position of an application is pushed; when the head of the
// spine turns out to be an abstraction, the top of the stack is popped and
// substituted into its body, and the walk continues from the substituted
// body. If the head is a variable with pending arguments still on the
// stack, those arguments are reapplied in their original order to produce
// the residual (stuck) application.
func EvalLazy(t term.Term) term.Term {
	var pending Stack
	current := t

	for {
		switch v := current.(type) {
		case term.App:
			pending.Push(v.Arg)
			current = v.Func

		case term.Abs:
			if arg, ok := pending.Pop(); ok {
				current = term.Substitute(v.Body, arg)
				continue
			}
			return rebuildSpine(current, pending)

		case term.Var:
			return rebuildSpine(current, pending)

		default:
			return current
		}
	}
}

// rebuildSpine reapplies any arguments left on pending to head, restoring
// the original left-to-right application order.
func rebuildSpine(head term.Term, pending Stack) term.Term {
	result := head
	for {
		arg, ok := pending.Pop()
		if !ok {
			return result
		}
		result = term.App{Func: result, Arg: arg}
	}
}

// EvalFull reduces t to full normal form: t is first weak-head-reduced,
// then every sub-term (an abstraction's body, or both sides of a residual
// application) is itself fully normalised.
//
// EvalFull does not detect non-termination; a term with no normal form
// causes EvalFull to loop forever, exactly as spec.md §4.5 prescribes —
// the caller (the output driver, in practice) is responsible for only
// requesting as much normalisation as it needs.
func EvalFull(t term.Term) term.Term {
	whnf := EvalLazy(t)
	switch v := whnf.(type) {
	case term.Abs:
		return term.Abs{Body: EvalFull(v.Body)}
	case term.App:
		return term.App{Func: EvalFull(v.Func), Arg: EvalFull(v.Arg)}
	default:
		return whnf
	}
}
