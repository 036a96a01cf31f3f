// Package repl runs the read-evaluate-print loop of exprcalc on top of the
// calc package. Each line is parsed and evaluated on its own.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"github.com/ltungv/exprcalc/internal/calc"
	"github.com/ltungv/exprcalc/internal/config"
)

// Outcome is what happened to a single line.
type Outcome int

const (
	Skipped Outcome = iota
	Computed
	ParseFailed
	EvalFailed
	Quit
)

var outcomeStrings = map[Outcome]string{
	Skipped:     "skipped",
	Computed:    "computed",
	ParseFailed: "parse failed",
	EvalFailed:  "eval failed",
	Quit:        "quit",
}

func (o Outcome) String() string {
	return outcomeStrings[o]
}

// Stats counts the lines a session handled.
type Stats struct {
	Lines         int
	ParseFailures int
	EvalFailures  int
}

// Session reads lines from in and writes results to out. Diagnostics go to
// diag.
type Session struct {
	cfg         config.Config
	in          io.Reader
	out         io.Writer
	diag        io.Writer
	logger      *slog.Logger
	interactive bool
	dump        bool
	stats       Stats
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger receiving per-line debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithInteractive enables the banner and the prompt.
func WithInteractive(interactive bool) Option {
	return func(s *Session) { s.interactive = interactive }
}

// WithDump writes a Go syntax dump of every parsed tree to the output.
func WithDump(dump bool) Option {
	return func(s *Session) { s.dump = dump }
}

func New(cfg config.Config, in io.Reader, out, diag io.Writer, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		in:     in,
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	red := color.New(color.FgRed)
	if cfg.Color {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	s.diag = &colorWriter{c: red, w: diag}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters accumulated so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// Run handles lines until the input ends or a line reads "quit".
func (s *Session) Run() error {
	if s.interactive && s.cfg.Banner {
		fmt.Fprintln(s.out, "Expression Evaluator")
		fmt.Fprintln(s.out, ">> Type quit to exit.")
	}
	scanner := bufio.NewScanner(s.in)
	scanner.Split(bufio.ScanLines)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if s.Line(strings.TrimSuffix(scanner.Text(), "\r")) == Quit {
			return nil
		}
	}
	return scanner.Err()
}

// Line handles one line read by Run. Empty lines are skipped and "quit"
// ends the session; anything else goes to Expression.
func (s *Session) Line(line string) Outcome {
	switch line {
	case "":
		return Skipped
	case "quit":
		return Quit
	}
	return s.Expression(line)
}

// Expression parses and evaluates line and prints the result. An empty
// line is a parse failure.
func (s *Session) Expression(line string) Outcome {
	s.stats.Lines++
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("tokenized", "line", line, "tokens", len(calc.Tokenize(line, nil))-1)
	}

	reporter := calc.NewCollectingReporter()
	expr, err := calc.Parse(line, reporter, s.cfg.ParserOptions()...)
	s.flushDiagnostics(reporter)
	if err != nil {
		s.stats.ParseFailures++
		s.logger.Debug("parse failed", "line", line, "err", err)
		fmt.Fprintln(s.out, "Error in parsing the input.")
		return ParseFailed
	}
	s.logger.Debug("parsed", "tree", calc.Print(expr))

	if s.cfg.ShowTree {
		fmt.Fprintf(s.out, ">> %s\n", calc.Print(expr))
	}
	if s.cfg.ShowPrefix {
		fmt.Fprintf(s.out, ">> %s\n", calc.PrintPrefix(expr))
	}
	if s.dump {
		pretty.Fprintf(s.out, "%# v\n", expr)
	}

	value, err := s.cfg.Arithmetic().Value(expr)
	if err != nil {
		s.stats.EvalFailures++
		s.logger.Debug("eval failed", "tree", calc.Print(expr), "err", err)
		fmt.Fprintln(s.out, "Error in evaluating expression!")
		fmt.Fprintln(s.diag, err)
		return EvalFailed
	}
	s.logger.Debug("evaluated", "tree", calc.Print(expr), "value", value)
	fmt.Fprintf(s.out, ">> = %d\n", value)
	return Computed
}

// flushDiagnostics writes the diagnostics collected while parsing one line,
// one per line, in the order they were reported.
func (s *Session) flushDiagnostics(reporter *calc.CollectingReporter) {
	if !reporter.HadError() {
		return
	}
	diags := reporter.Errors()
	s.logger.Debug("diagnostics", "count", len(diags), "err", reporter.Err())
	for _, err := range diags {
		fmt.Fprintln(s.diag, err)
	}
}

// colorWriter paints everything written through it.
type colorWriter struct {
	c *color.Color
	w io.Writer
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := cw.c.Fprint(cw.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
