package calc

import (
	"fmt"
	"strconv"
)

// Parser builds the expression tree of a single line by precedence
// climbing. See doc.go for the grammar.
//
// A Parser is used once. Every failure is reported to the reporter where it
// is detected and then returned unchanged up to Parse, so a failed parse
// never yields part of a tree.
type Parser struct {
	line          string
	tokens        *Tokenizer
	reporter      Reporter
	allowTrailing bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithTrailingInput makes the parser accept and ignore tokens left over
// after a complete expression, e.g. the ")" in "(1+2))". By default they
// fail the parse with ErrTrailingInput.
func WithTrailingInput(allow bool) Option {
	return func(parser *Parser) {
		parser.allowTrailing = allow
	}
}

// NewParser creates a parser for line. A nil reporter discards diagnostics.
func NewParser(line string, reporter Reporter, opts ...Option) *Parser {
	if reporter == nil {
		reporter = &discardReporter{}
	}
	parser := &Parser{line: line, reporter: reporter}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse is a shorthand for NewParser(line, reporter, opts...).Parse().
func Parse(line string, reporter Reporter, opts ...Option) (Expr, error) {
	return NewParser(line, reporter, opts...).Parse()
}

// Parse returns the tree of the whole line. On failure the returned error is
// a *ParseError.
func (parser *Parser) Parse() (Expr, error) {
	if parser.line == "" {
		return nil, parser.fail(ErrEmptyInput, Token{Type: TokenEnd}, "Expect expression.")
	}
	parser.tokens = NewTokenizer(parser.line, parser.reporter)
	if parser.tokens.Peek().Type == TokenEnd {
		return nil, parser.fail(ErrEmptyInput, parser.tokens.Next(), "Expect expression.")
	}

	expr, err := parser.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := parser.tokens.Next(); tok.Type != TokenEnd && !parser.allowTrailing {
		return nil, parser.fail(ErrTrailingInput, tok, "Expect end of expression.")
	}
	return expr, nil
}

// expression parses a primary followed by every operator binding at least
// as tightly as minPrec. The right operand of an operator only takes
// operators binding strictly tighter, which makes equal precedence
// operators associate to the left.
func (parser *Parser) expression(minPrec int) (Expr, error) {
	left, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok := parser.tokens.Peek()
		prec := precedence(tok)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		parser.tokens.Next()
		right, err := parser.expression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = NewBinary(binaryOperators[tok.Type], left, right)
	}
}

// primary --> NUMBER | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	tok := parser.tokens.Next()
	switch tok.Type {
	case TokenNumber:
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, parser.fail(ErrBadNumber, tok, "Number does not fit in 64 bits.")
		}
		return NewNumber(value), nil
	case TokenLeftParen:
		expr, err := parser.expression(0)
		if err != nil {
			return nil, err
		}
		if closing := parser.tokens.Next(); closing.Type != TokenRightParen {
			return nil, parser.fail(ErrMissingParen, closing, "Expect ')' after expression.")
		}
		return expr, nil
	case TokenIdentifier:
		return nil, parser.fail(
			ErrIdentifier,
			tok,
			fmt.Sprintf("Identifier '%s' is not supported.", tok.Lexeme),
		)
	case TokenEnd:
		return nil, parser.fail(ErrMissingOperand, tok, "Expect expression.")
	}
	return nil, parser.fail(ErrUnexpectedToken, tok, "Expect expression.")
}

func (parser *Parser) fail(kind error, tok Token, message string) error {
	err := newParseError(kind, tok, message)
	parser.reporter.Report(err)
	return err
}
