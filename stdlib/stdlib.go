// Package stdlib provides a standard combinator library as macro source:
// a block of textual definitions in the surface syntax (parser.ParseTextual
// understands them unmodified), giving programs named access to the usual
// untyped lambda calculus vocabulary — booleans, pairs, Church numerals,
// function composition, and a fixed-point combinator — without requiring
// every program to spell them out by hand. Definitions are grounded on the
// named-combinator library this evaluator's reference implementation
// shipped as sll.rs, translated term-for-term into the surface syntax.
package stdlib

// Prelude is a sequence of macro definitions, each terminated by a
// semicolon. It has no trailing expression of its own: callers prepend it
// to a program's source so that the program's final expression becomes the
// combined token stream's last segment (see parser.ParseTextual).
const Prelude = `` +
	`id = \x. x;` +
	`zero = \f. \x. x;` +
	`inc = \n. \f. \x. f (n f x);` +
	`plus = \x. \y. x inc y;` +
	`flip = \y. \x. x y;` +
	`true = \x. \y. x;` +
	`false = \x. \y. y;` +
	`pair = \x. \y. \f. f x y;` +
	`fst = \p. p true;` +
	`snd = \p. p false;` +
	`compose = \f. \g. \x. f (g x);` +
	`y = \f. (\x. f (x x)) (\x. f (x x));`

// WithPrelude prepends the prelude's macro definitions to source, so that
// source's own macro definitions and final expression can refer to any
// prelude name. source is used unmodified after the prelude.
func WithPrelude(source string) string {
	return Prelude + source
}
