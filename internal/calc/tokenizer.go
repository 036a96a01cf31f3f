package calc

import "unicode"

// Tokenizer produces the tokens of one line lazily. Characters it does not
// recognize are reported and skipped, they never end the token stream.
type Tokenizer struct {
	start    int
	current  int
	source   []rune
	reporter Reporter
	muted    bool
}

// NewTokenizer creates a tokenizer over line. A nil reporter discards
// diagnostics.
func NewTokenizer(line string, reporter Reporter) *Tokenizer {
	if reporter == nil {
		reporter = &discardReporter{}
	}
	return &Tokenizer{source: []rune(line), reporter: reporter}
}

// Next returns the next token and advances past it. Once the input is
// exhausted every call returns an End token.
func (tokenizer *Tokenizer) Next() Token {
	tokenizer.skipWhitespace()
	tokenizer.start = tokenizer.current
	if !tokenizer.hasNext() {
		return tokenizer.token(TokenEnd)
	}

	switch r := tokenizer.advance(); r {
	case '(':
		return tokenizer.token(TokenLeftParen)
	case ')':
		return tokenizer.token(TokenRightParen)
	case '-':
		return tokenizer.token(TokenMinus)
	case '+':
		return tokenizer.token(TokenPlus)
	case '/':
		return tokenizer.token(TokenSlash)
	case '*':
		return tokenizer.token(TokenStar)
	default:
		if isDigit(r) {
			return tokenizer.scanNumber()
		}
		if unicode.IsLetter(r) {
			return tokenizer.scanIdentifier()
		}
		if !tokenizer.muted {
			tokenizer.reporter.Report(&LexicalError{Pos: tokenizer.start, Char: r})
		}
		return tokenizer.Next()
	}
}

// Peek returns the token Next would return without moving the cursor.
// Diagnostics for skipped characters are left for the matching Next.
func (tokenizer *Tokenizer) Peek() Token {
	start, current, muted := tokenizer.start, tokenizer.current, tokenizer.muted
	tokenizer.muted = true
	tok := tokenizer.Next()
	tokenizer.start, tokenizer.current, tokenizer.muted = start, current, muted
	return tok
}

// HasNext reports whether anything but whitespace is left to scan.
func (tokenizer *Tokenizer) HasNext() bool {
	for i := tokenizer.current; i < len(tokenizer.source); i++ {
		if !unicode.IsSpace(tokenizer.source[i]) {
			return true
		}
	}
	return false
}

// Tokenize drains a fresh tokenizer over line. The trailing End token is
// included.
func Tokenize(line string, reporter Reporter) []Token {
	tokenizer := NewTokenizer(line, reporter)
	var toks []Token
	for {
		tok := tokenizer.Next()
		toks = append(toks, tok)
		if tok.Type == TokenEnd {
			return toks
		}
	}
}

func (tokenizer *Tokenizer) scanNumber() Token {
	for isDigit(tokenizer.peek()) {
		tokenizer.advance()
	}
	return tokenizer.token(TokenNumber)
}

func (tokenizer *Tokenizer) scanIdentifier() Token {
	for r := tokenizer.peek(); unicode.IsLetter(r) || isDigit(r); r = tokenizer.peek() {
		tokenizer.advance()
	}
	return tokenizer.token(TokenIdentifier)
}

func (tokenizer *Tokenizer) skipWhitespace() {
	for tokenizer.hasNext() && unicode.IsSpace(tokenizer.source[tokenizer.current]) {
		tokenizer.current++
	}
}

// token makes a token of the given type from the lexeme between `start` and
// `current`.
func (tokenizer *Tokenizer) token(typ TokenType) Token {
	return Token{
		Type:   typ,
		Lexeme: string(tokenizer.source[tokenizer.start:tokenizer.current]),
		Pos:    tokenizer.start,
	}
}

func (tokenizer *Tokenizer) hasNext() bool {
	return tokenizer.current < len(tokenizer.source)
}

func (tokenizer *Tokenizer) advance() rune {
	r := tokenizer.source[tokenizer.current]
	tokenizer.current++
	return r
}

func (tokenizer *Tokenizer) peek() rune {
	if !tokenizer.hasNext() {
		return '\x00'
	}
	return tokenizer.source[tokenizer.current]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
