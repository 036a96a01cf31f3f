package calc

import (
	"errors"
	"fmt"
)

// Structural parse failures. A *ParseError unwraps to one of these.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrMissingOperand  = errors.New("missing operand")
	ErrMissingParen    = errors.New("missing closing parenthesis")
	ErrIdentifier      = errors.New("identifiers are not supported")
	ErrBadNumber       = errors.New("malformed number")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("unexpected input after expression")
)

// Arithmetic failures. A *RuntimeError unwraps to one of these.
var (
	ErrDivideByZero    = errors.New("divide by zero")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrOverflow        = errors.New("integer overflow")
)

// LexicalError is reported when the tokenizer meets a character it does not
// recognize. It never stops tokenization.
type LexicalError struct {
	Pos  int
	Char rune
}

func (err *LexicalError) Error() string {
	return fmt.Sprintf("[col %d] Invalid character %q.", err.Pos, err.Char)
}

// ParseError wraps one of the structural failure sentinels with the token
// where parsing stopped.
type ParseError struct {
	Kind    error
	Token   Token
	Message string
}

func newParseError(kind error, tok Token, message string) *ParseError {
	return &ParseError{Kind: kind, Token: tok, Message: message}
}

func (err *ParseError) Error() string {
	if err.Token.Type == TokenEnd {
		return fmt.Sprintf("[col %d] Error at end: %s", err.Token.Pos, err.Message)
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.Token.Pos,
		err.Token.Lexeme,
		err.Message,
	)
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}

// RuntimeError is returned when computing the value of an otherwise well
// formed tree fails. Expr is the node whose operation failed.
type RuntimeError struct {
	Expr Expr
	Err  error
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%v in %s", err.Err, Print(err.Expr))
}

func (err *RuntimeError) Unwrap() error {
	return err.Err
}
