package parser

import (
	"fmt"

	"blc/lexer"
	"blc/term"
	"blc/token"
)

// ParseTextual decodes a program written in the macro-enabled surface
// syntax into a term.Term:
//
//	program := (macro ";")* expr ";"
//	macro    := ident "=" expr
//	expr     := atom+                      -- left-associative application
//	atom     := "\" ident "." expr         -- abstraction
//	          | ident                      -- variable reference
//	          | "(" expr ")"
//	ident    := [A-Za-z_][A-Za-z0-9_]*
func ParseTextual(source string) (term.Term, error) {
	tokens, err := lexer.New(source).Scan()
	if err != nil {
		return nil, CreateSyntaxError(0, 0, fmt.Sprintf("lexing failed: %s", err))
	}

	finalExprTokens, err := preprocess(tokens)
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: finalExprTokens}
	t, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.isFinished() {
		tok := p.peek()
		return nil, CreateSyntaxError(tok.Line, tok.Column, "unexpected trailing input after program expression")
	}
	return t, nil
}

// preprocess implements the macro preprocessor (spec.md §4.3): it
// sequentially accumulates `name = body ;` definitions, textually
// substituting each already-defined macro into each later body (and into
// the final expression), wrapping every substitution in parentheses.
// Macros are not recursive: a macro's own name is not available inside its
// own body. Later definitions shadow earlier ones textually, because each
// substitution step consults only the macros resolved so far.
//
// Returns the token stream of the fully-substituted final expression
// (terminated by EOF), ready for parseExpression.
func preprocess(tokens []token.Token) ([]token.Token, error) {
	if n := len(tokens); n >= 2 && tokens[n-2].TokenType != token.SEMICOLON {
		tok := tokens[n-2]
		return nil, CreateSyntaxError(tok.Line, tok.Column, "expected ';' after the final expression")
	}
	segments := splitOnSemicolons(tokens)
	if len(segments) == 0 {
		return nil, CreateSyntaxError(0, 0, "empty program: expected an expression")
	}

	macros := map[string][]token.Token{}
	for i, segment := range segments[:len(segments)-1] {
		if len(segment) < 2 || segment[0].TokenType != token.IDENTIFIER || segment[1].TokenType != token.EQUALS {
			tok := segmentPosition(segment)
			return nil, CreateSyntaxError(tok.Line, tok.Column, fmt.Sprintf("malformed macro definition at position %d: expected 'name = expr'", i))
		}
		name := segment[0].Lexeme
		body := segment[2:]
		if len(body) == 0 {
			return nil, CreateSyntaxError(segment[1].Line, segment[1].Column, fmt.Sprintf("macro %q has an empty body", name))
		}
		macros[name] = substituteMacros(body, macros)
	}

	final := segments[len(segments)-1]
	if len(final) == 0 {
		return nil, CreateSyntaxError(0, 0, "empty program: expected a final expression")
	}
	resolved := substituteMacros(final, macros)
	resolved = append(resolved, token.CreateToken(token.EOF, 0, 0))
	return resolved, nil
}

// substituteMacros replaces every identifier token in tokens that names a
// known macro with that macro's resolved body, wrapped in a synthetic
// parenthesis pair. Identifiers that do not name a macro are left
// untouched (they are either bound variables or, if truly unresolved, a
// later parse-time error).
func substituteMacros(tokens []token.Token, macros map[string][]token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.TokenType == token.IDENTIFIER {
			if body, ok := macros[tok.Lexeme]; ok {
				out = append(out, token.CreateToken(token.LPA, tok.Line, tok.Column))
				out = append(out, body...)
				out = append(out, token.CreateToken(token.RPA, tok.Line, tok.Column))
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// splitOnSemicolons splits tokens (excluding the trailing EOF) into
// segments delimited by top-level SEMICOLON tokens. The grammar has no
// nested statement separators, so a flat split suffices.
func splitOnSemicolons(tokens []token.Token) [][]token.Token {
	var segments [][]token.Token
	var current []token.Token
	for _, tok := range tokens {
		switch tok.TokenType {
		case token.SEMICOLON:
			segments = append(segments, current)
			current = nil
		case token.EOF:
			// ignore; a trailing segment with no semicolon is malformed
			// and preprocess rejects it before splitting.
		default:
			current = append(current, tok)
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

func segmentPosition(segment []token.Token) token.Token {
	if len(segment) == 0 {
		return token.CreateToken(token.EOF, 0, 0)
	}
	return segment[0]
}

// Parser holds the state of one recursive-descent pass over a token
// stream: the current position and the stack of binder names in scope.
type Parser struct {
	tokens   []token.Token
	position int
	scope    scope
}

// peek returns the token at the parser's current position without
// consuming it.
func (p *Parser) peek() token.Token {
	return p.tokens[p.position]
}

// previous returns the token at the parser's previous position.
func (p *Parser) previous() token.Token {
	return p.tokens[p.position-1]
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	if !p.isFinished() {
		p.position++
	}
	return p.previous()
}

// isFinished reports whether the parser has reached the EOF token.
func (p *Parser) isFinished() bool {
	return p.peek().TokenType == token.EOF
}

// checkType reports whether the current token matches tokenType.
func (p *Parser) checkType(tokenType token.TokenType) bool {
	if p.isFinished() && tokenType != token.EOF {
		return false
	}
	return p.peek().TokenType == tokenType
}

// isMatch advances past the current token and returns true if it matches
// tokenType, otherwise leaves the parser's position unchanged.
func (p *Parser) isMatch(tokenType token.TokenType) bool {
	if p.checkType(tokenType) {
		p.advance()
		return true
	}
	return false
}

// consume advances past the current token if it matches tokenType,
// otherwise returns a SyntaxError carrying errorMessage.
func (p *Parser) consume(tokenType token.TokenType, errorMessage string) (token.Token, error) {
	if p.checkType(tokenType) {
		return p.advance(), nil
	}
	current := p.peek()
	return token.Token{}, CreateSyntaxError(current.Line, current.Column, errorMessage)
}

// parseExpression parses `expr := atom+`, the left-associative application
// of one or more atoms.
func (p *Parser) parseExpression() (term.Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = term.App{Func: left, Arg: right}
	}
	return left, nil
}

// startsAtom reports whether the current token could begin another atom,
// used to decide whether the application in progress continues.
func (p *Parser) startsAtom() bool {
	if p.isFinished() {
		return false
	}
	switch p.peek().TokenType {
	case token.BACKSLASH, token.IDENTIFIER, token.LPA:
		return true
	default:
		return false
	}
}

// parseAtom parses `atom := "\" ident "." expr | ident | "(" expr ")"`.
func (p *Parser) parseAtom() (term.Term, error) {
	if p.isMatch(token.BACKSLASH) {
		nameTok, err := p.consume(token.IDENTIFIER, "expected a binder name after '\\'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.DOT, "expected '.' after abstraction binder"); err != nil {
			return nil, err
		}
		p.scope.push(nameTok.Lexeme)
		body, err := p.parseExpression()
		p.scope.pop()
		if err != nil {
			return nil, err
		}
		return term.Abs{Body: body}, nil
	}

	if p.isMatch(token.LPA) {
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPA, "expected ')' to close grouped expression"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	if p.checkType(token.IDENTIFIER) {
		nameTok := p.advance()
		index, ok := p.scope.resolve(nameTok.Lexeme)
		if !ok {
			return nil, CreateSyntaxError(nameTok.Line, nameTok.Column, fmt.Sprintf("unresolved identifier %q", nameTok.Lexeme))
		}
		return term.Var{Index: index}, nil
	}

	current := p.peek()
	return nil, CreateSyntaxError(current.Line, current.Column, "expected an abstraction, a variable, or a parenthesised expression")
}
