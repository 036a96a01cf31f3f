package main

// This is a calculator for one-line integer expressions.

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ltungv/exprcalc/internal/config"
	"github.com/ltungv/exprcalc/internal/repl"
)

const version = "0.1.0"

// Exit statuses, following sysexits.h like glox.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
	exitParse   = 65
	exitRuntime = 70
)

// flag names
const (
	configFlagName        = "config"
	allowTrailingFlagName = "allow-trailing"
	overflowFlagName      = "overflow"
	showTreeFlagName      = "show-tree"
	showPrefixFlagName    = "show-prefix"
	noColorFlagName       = "no-color"
	dumpFlagName          = "dump"
	logLevelFlagName      = "log-level"
)

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:    configFlagName,
		Aliases: []string{"c"},
		EnvVars: []string{"EXPRCALC_CONFIG"},
		Usage:   "load settings from a YAML `FILE`",
	},
	&cli.BoolFlag{
		Name:  allowTrailingFlagName,
		Usage: "ignore tokens left after a complete expression",
	},
	&cli.StringFlag{
		Name:  overflowFlagName,
		Usage: "integer overflow handling: wrap or checked",
	},
	&cli.BoolFlag{
		Name:  showTreeFlagName,
		Usage: "echo the fully parenthesized form of each expression",
	},
	&cli.BoolFlag{
		Name:  showPrefixFlagName,
		Usage: "echo the prefix form of each expression",
	},
	&cli.BoolFlag{
		Name:  noColorFlagName,
		Usage: "do not color diagnostics",
	},
	&cli.BoolFlag{
		Name:  dumpFlagName,
		Usage: "dump every parsed tree",
	},
	&cli.StringFlag{
		Name:  logLevelFlagName,
		Value: "warn",
		Usage: "log `LEVEL`: debug, info, warn or error",
	},
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &cli.App{
		Name:      "exprcalc",
		Usage:     "evaluate one-line integer expressions",
		UsageText: "exprcalc [options] [expression...]",
		Description: "Without an expression, exprcalc reads one expression per line " +
			"from standard input until the input ends or a line reads quit.",
		Version:        version,
		Flags:          flags,
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {},
		Action:         action(stdin),
	}

	err := app.Run(args)
	if err == nil {
		return exitOK
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}
	fmt.Fprintln(stderr, err)
	return exitUsage
}

func action(stdin io.Reader) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		if !isTerminal(ctx.App.ErrWriter) {
			cfg.Color = false
		}
		logger, err := newLogger(ctx.App.ErrWriter, ctx.String(logLevelFlagName))
		if err != nil {
			return cli.Exit(err.Error(), exitUsage)
		}

		session := repl.New(cfg, stdin, ctx.App.Writer, ctx.App.ErrWriter,
			repl.WithLogger(logger),
			repl.WithDump(ctx.Bool(dumpFlagName)),
			repl.WithInteractive(ctx.NArg() == 0 && isTerminal(stdin)),
		)

		if ctx.NArg() > 0 {
			switch session.Expression(strings.Join(ctx.Args().Slice(), " ")) {
			case repl.ParseFailed:
				return cli.Exit("", exitParse)
			case repl.EvalFailed:
				return cli.Exit("", exitRuntime)
			}
			return nil
		}

		if err := session.Run(); err != nil {
			return cli.Exit(fmt.Sprintf("read input: %v", err), exitFailure)
		}
		stats := session.Stats()
		logger.Info("session done",
			"lines", stats.Lines,
			"parse_failures", stats.ParseFailures,
			"eval_failures", stats.EvalFailures,
		)
		return nil
	}
}

// loadConfig layers the config file and then the flags over the defaults.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(configFlagName); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if ctx.IsSet(allowTrailingFlagName) {
		cfg.StrictTrailing = !ctx.Bool(allowTrailingFlagName)
	}
	if ctx.IsSet(overflowFlagName) {
		cfg.Overflow = ctx.String(overflowFlagName)
	}
	if ctx.IsSet(showTreeFlagName) {
		cfg.ShowTree = ctx.Bool(showTreeFlagName)
	}
	if ctx.IsSet(showPrefixFlagName) {
		cfg.ShowPrefix = ctx.Bool(showPrefixFlagName)
	}
	if ctx.Bool(noColorFlagName) {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
