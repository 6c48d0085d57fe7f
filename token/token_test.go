package token

import (
	"testing"
)

func TestCreateToken(t *testing.T) {
	tests := []struct {
		name      string
		tokenType TokenType
		line      int32
		column    int
		wantLex   string
	}{
		{name: "LPA token", tokenType: LPA, line: 0, column: 0, wantLex: "("},
		{name: "RPA token", tokenType: RPA, line: 0, column: 1, wantLex: ")"},
		{name: "DOT token", tokenType: DOT, line: 1, column: 4, wantLex: "."},
		{name: "BACKSLASH token", tokenType: BACKSLASH, line: 2, column: 0, wantLex: "\\"},
		{name: "EQUALS token", tokenType: EQUALS, line: 0, column: 2, wantLex: "="},
		{name: "SEMICOLON token", tokenType: SEMICOLON, line: 0, column: 9, wantLex: ";"},
		{name: "EOF token", tokenType: EOF, line: 3, column: 0, wantLex: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateToken(tt.tokenType, tt.line, tt.column)
			if got.TokenType != tt.tokenType {
				t.Errorf("TokenType = %v, want %v", got.TokenType, tt.tokenType)
			}
			if got.Lexeme != tt.wantLex {
				t.Errorf("Lexeme = %q, want %q", got.Lexeme, tt.wantLex)
			}
			if got.Line != tt.line || got.Column != tt.column {
				t.Errorf("position = (%d,%d), want (%d,%d)", got.Line, got.Column, tt.line, tt.column)
			}
		})
	}
}

func TestCreateIdentifierToken(t *testing.T) {
	got := CreateIdentifierToken("flip", 5, 2)
	if got.TokenType != IDENTIFIER {
		t.Errorf("TokenType = %v, want %v", got.TokenType, IDENTIFIER)
	}
	if got.Lexeme != "flip" {
		t.Errorf("Lexeme = %q, want %q", got.Lexeme, "flip")
	}
}

func TestTokenString(t *testing.T) {
	tok := CreateIdentifierToken("inc", 0, 0)
	want := `Token {Type: IDENTIFIER, Value: "inc"}`
	if got := tok.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
