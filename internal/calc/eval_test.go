package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberValue(t *testing.T) {
	testCases := []int64{0, 42, 123, -42, math.MaxInt64, math.MinInt64}

	assert := assert.New(t)
	for _, v := range testCases {
		assert.True(Evaluate(num(v)))
		value, err := Value(num(v))
		assert.NoError(err)
		assert.Equal(v, value)
	}
}

func TestBinaryValue(t *testing.T) {
	testCases := []struct {
		name  string
		expr  Expr
		value int64
	}{
		{"add", bin(OpAdd, num(10), num(5)), 15},
		{"sub", bin(OpSub, num(10), num(5)), 5},
		{"mul", bin(OpMul, num(3), num(4)), 12},
		{"div", bin(OpDiv, num(20), num(4)), 5},
		{"div truncates", bin(OpDiv, num(7), num(2)), 3},
		{"div truncates toward zero", bin(OpDiv, num(-7), num(2)), -3},
		{"zero add zero", bin(OpAdd, num(0), num(0)), 0},
		{"large mul", bin(OpMul, num(100000), num(200000)), 20000000000},
		{"nested", bin(OpMul, bin(OpAdd, num(2), num(3)), num(4)), 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.True(Evaluate(tc.expr))
			value, err := Value(tc.expr)
			assert.NoError(err)
			assert.Equal(tc.value, value)
		})
	}
}

func TestValueDivideByZero(t *testing.T) {
	testCases := []struct {
		src    string
		failed string
	}{
		{"10/0", "(10/0)"},
		{"1+(2/(3-3))", "(2/(3-3))"},
		{"(5/0)*0", "(5/0)"},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			assert := assert.New(t)

			expr, err := Parse(tc.src, nil)
			require.NoError(t, err, "a zero divisor is not a parse failure")
			assert.True(Evaluate(expr), "evaluate does not see arithmetic failures")

			_, err = Value(expr)
			assert.ErrorIs(err, ErrDivideByZero)

			var runtimeErr *RuntimeError
			require.True(t, errors.As(err, &runtimeErr))
			assert.Equal(tc.failed, Print(runtimeErr.Expr))
			assert.EqualError(err, "divide by zero in "+tc.failed)
		})
	}
}

func TestValueUnknownOperator(t *testing.T) {
	assert := assert.New(t)

	expr := bin(Operator(99), num(1), num(2))
	assert.True(Evaluate(expr))

	_, err := Value(expr)
	assert.ErrorIs(err, ErrUnknownOperator)

	_, err = Value(bin(OpAdd, num(1), expr))
	assert.ErrorIs(err, ErrUnknownOperator, "failures propagate to the root")
}

func TestEvaluateIncompleteTree(t *testing.T) {
	assert := assert.New(t)

	assert.False(Evaluate(nil))
	assert.False(Evaluate(bin(OpAdd, num(1), nil)))
	assert.False(Evaluate(bin(OpAdd, num(1), bin(OpSub, nil, num(2)))))

	_, err := Value(bin(OpAdd, num(1), nil))
	assert.ErrorIs(err, ErrMissingOperand)
	_, err = Value(nil)
	assert.ErrorIs(err, ErrMissingOperand)
	assert.EqualError(err, "missing operand in ?")

	var missing *Number
	assert.False(Evaluate(missing))
	_, err = Value(bin(OpAdd, num(1), missing))
	assert.ErrorIs(err, ErrMissingOperand)
	assert.EqualError(err, "missing operand in ?")
}

func TestValueOverflow(t *testing.T) {
	const minInt = "(0-9223372036854775807-1)"
	testCases := []struct {
		src     string
		wrapped int64
	}{
		{"9223372036854775807+1", math.MinInt64},
		{"0-9223372036854775807-2", math.MaxInt64},
		{"9223372036854775807*2", -2},
		{"4611686018427387904*4", 0},
		{minInt + "*(0-1)", math.MinInt64},
		{minInt + "/(0-1)", math.MinInt64},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			assert := assert.New(t)

			expr, err := Parse(tc.src, nil)
			require.NoError(t, err)

			value, err := Value(expr)
			assert.NoError(err)
			assert.Equal(tc.wrapped, value, "wrapping is the default")

			_, err = Checked.Value(expr)
			assert.ErrorIs(err, ErrOverflow)
		})
	}
}

func TestValueCheckedInRange(t *testing.T) {
	testCases := []struct {
		src   string
		value int64
	}{
		{"9223372036854775806+1", math.MaxInt64},
		{"0-9223372036854775807-1", math.MinInt64},
		{"3037000499*3037000499", 9223372030926249001},
		{"0*9223372036854775807", 0},
		{"(0-1)*9223372036854775807", -math.MaxInt64},
		{"(0-9223372036854775807-1)/1", math.MinInt64},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := Parse(tc.src, nil)
		require.NoError(t, err, tc.src)

		value, err := Checked.Value(expr)
		assert.NoError(err, tc.src)
		assert.Equal(tc.value, value, tc.src)
	}
}

func TestCheckedDivideByZero(t *testing.T) {
	_, err := Checked.Value(bin(OpDiv, num(1), num(0)))
	assert.ErrorIs(t, err, ErrDivideByZero)
}
