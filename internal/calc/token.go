package calc

import "fmt"

// TokenType tells which lexical class a token belongs to.
type TokenType uint

const (
	// Single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenMinus
	TokenPlus
	TokenSlash
	TokenStar

	// Literals
	TokenNumber
	TokenIdentifier

	TokenEnd
)

var tokenTypeStrings = map[TokenType]string{
	TokenLeftParen:  "(",
	TokenRightParen: ")",
	TokenMinus:      "-",
	TokenPlus:       "+",
	TokenSlash:      "/",
	TokenStar:       "*",
	TokenNumber:     "NUMBER",
	TokenIdentifier: "IDENTIFIER",
	TokenEnd:        "END",
}

func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}

// Token groups a run of characters with the information collected while
// scanning it. Pos is the rune offset of the first character in the line.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    int
}

func (t Token) String() string {
	if t.Type == TokenEnd {
		return "END"
	}
	return fmt.Sprintf("%s %q @%d", t.Type, t.Lexeme, t.Pos)
}
