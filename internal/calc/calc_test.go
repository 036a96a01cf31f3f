package calc

type mockReporter struct {
	errors []error
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0)}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
}

func (reporter *mockReporter) HadError() bool {
	return len(reporter.errors) > 0
}

func (reporter *mockReporter) Reset() {
	reporter.errors = reporter.errors[:0]
}

func tokEnd(pos int) Token {
	return Token{TokenEnd, "", pos}
}

func num(v int64) *Number {
	return NewNumber(v)
}

func bin(op Operator, left, right Expr) *Binary {
	return NewBinary(op, left, right)
}
