package calc

import "math"

// Evaluate reports whether every node of the tree is complete. It does not
// compute anything, so arithmetic failures such as a zero divisor are only
// seen by Value.
func Evaluate(e Expr) bool {
	switch e := e.(type) {
	case *Number:
		return e != nil
	case *Binary:
		return e != nil && Evaluate(e.Left) && Evaluate(e.Right)
	}
	return false
}

// Arithmetic selects how additions, subtractions and multiplications behave
// when the exact result does not fit in 64 bits.
type Arithmetic int

const (
	// Wrapping uses two's complement wrap-around, like Go's own integer
	// operators. math.MinInt64 / -1 yields math.MinInt64.
	Wrapping Arithmetic = iota
	// Checked fails with ErrOverflow instead of wrapping.
	Checked
)

// Value computes the value of the tree with Wrapping arithmetic.
func Value(e Expr) (int64, error) {
	return Wrapping.Value(e)
}

// Value computes the value of the tree. The first failing node aborts the
// computation with a *RuntimeError.
func (a Arithmetic) Value(e Expr) (int64, error) {
	if e == nil {
		return 0, &RuntimeError{nil, ErrMissingOperand}
	}
	switch e := e.(type) {
	case *Number:
		if e == nil {
			return 0, &RuntimeError{e, ErrMissingOperand}
		}
		return e.Value, nil
	case *Binary:
		if e == nil || e.Left == nil || e.Right == nil {
			return 0, &RuntimeError{e, ErrMissingOperand}
		}
		lhs, err := a.Value(e.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := a.Value(e.Right)
		if err != nil {
			return 0, err
		}
		result, err := a.apply(e.Op, lhs, rhs)
		if err != nil {
			return 0, &RuntimeError{e, err}
		}
		return result, nil
	}
	return 0, &RuntimeError{e, ErrUnknownOperator}
}

func (a Arithmetic) apply(op Operator, lhs, rhs int64) (int64, error) {
	switch op {
	case OpAdd:
		result := lhs + rhs
		if a == Checked && (result^lhs)&(result^rhs) < 0 {
			return 0, ErrOverflow
		}
		return result, nil
	case OpSub:
		result := lhs - rhs
		if a == Checked && (lhs^rhs)&(lhs^result) < 0 {
			return 0, ErrOverflow
		}
		return result, nil
	case OpMul:
		result := lhs * rhs
		if a == Checked && mulOverflows(lhs, rhs, result) {
			return 0, ErrOverflow
		}
		return result, nil
	case OpDiv:
		if rhs == 0 {
			return 0, ErrDivideByZero
		}
		if a == Checked && lhs == math.MinInt64 && rhs == -1 {
			return 0, ErrOverflow
		}
		return lhs / rhs, nil
	}
	return 0, ErrUnknownOperator
}

func mulOverflows(lhs, rhs, result int64) bool {
	if lhs == 0 || rhs == 0 {
		return false
	}
	if (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
		return true
	}
	return result/rhs != lhs
}
