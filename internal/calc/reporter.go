package calc

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Reporter defines the interface for structures that can display errors to
// the user. The tokenizer and the parser report through it instead of
// writing to a shared stream, so reporting is separated from displaying.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes each error as-is to the inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// CollectingReporter keeps every reported error, in order, so callers can
// inspect the diagnostics of a parse after it returns.
type CollectingReporter struct {
	errs *multierror.Error
}

func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

func (reporter *CollectingReporter) Report(err error) {
	reporter.errs = multierror.Append(reporter.errs, err)
}

func (reporter *CollectingReporter) HadError() bool {
	return reporter.errs != nil && len(reporter.errs.Errors) > 0
}

func (reporter *CollectingReporter) Reset() {
	reporter.errs = nil
}

// Errors returns the reported errors in the order they were reported.
func (reporter *CollectingReporter) Errors() []error {
	if reporter.errs == nil {
		return nil
	}
	return reporter.errs.WrappedErrors()
}

// Err returns all reported errors as a single error, or nil.
func (reporter *CollectingReporter) Err() error {
	return reporter.errs.ErrorOrNil()
}

// discardReporter drops everything. Used when the caller passes no reporter.
type discardReporter struct{ hadErr bool }

func (reporter *discardReporter) Report(error)  { reporter.hadErr = true }
func (reporter *discardReporter) HadError() bool { return reporter.hadErr }
func (reporter *discardReporter) Reset()         { reporter.hadErr = false }
