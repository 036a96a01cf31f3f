package calc

import "fmt"

// Operator is the operation applied by a Binary node.
type Operator uint8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// Expr is a node of an expression tree. The set of nodes is closed: only
// *Number and *Binary implement it.
type Expr interface {
	fmt.Stringer
	expr()
}

// Number is a leaf holding an integer literal.
type Number struct {
	Value int64
}

func NewNumber(value int64) *Number {
	return &Number{value}
}

func (*Number) expr() {}

func (n *Number) String() string { return Print(n) }

// Binary applies Op to the values of Left and Right. The node owns both
// children.
type Binary struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func NewBinary(op Operator, left, right Expr) *Binary {
	return &Binary{op, left, right}
}

func (*Binary) expr() {}

func (b *Binary) String() string { return Print(b) }

// binaryOperators maps operator tokens to the operation they denote.
var binaryOperators = map[TokenType]Operator{
	TokenPlus:  OpAdd,
	TokenMinus: OpSub,
	TokenStar:  OpMul,
	TokenSlash: OpDiv,
}

// precedence returns the binding strength of tok as an infix operator, or 0
// when tok is not an operator.
func precedence(tok Token) int {
	switch tok.Type {
	case TokenPlus, TokenMinus:
		return 1
	case TokenStar, TokenSlash:
		return 2
	}
	return 0
}
