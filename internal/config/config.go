// Package config holds the settings of the exprcalc command and loads them
// from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ltungv/exprcalc/internal/calc"
)

// Overflow modes accepted in the configuration.
const (
	OverflowWrap    = "wrap"
	OverflowChecked = "checked"
)

// Config controls how lines are parsed, evaluated and echoed.
type Config struct {
	// Prompt is printed before each line when reading from a terminal.
	Prompt string `yaml:"prompt"`
	// Banner is printed once when an interactive session starts.
	Banner bool `yaml:"banner"`
	// StrictTrailing rejects tokens left over after a complete expression.
	StrictTrailing bool `yaml:"strict_trailing"`
	// Overflow is either "wrap" or "checked".
	Overflow string `yaml:"overflow"`
	// ShowTree echoes the fully parenthesized form of each parsed line.
	ShowTree bool `yaml:"show_tree"`
	// ShowPrefix echoes the prefix form of each parsed line.
	ShowPrefix bool `yaml:"show_prefix"`
	Color      bool `yaml:"color"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Prompt:         ">> ",
		Banner:         true,
		StrictTrailing: true,
		Overflow:       OverflowWrap,
		Color:          true,
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML settings from r on top of Default. Unknown keys are an
// error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of choices.
func (cfg Config) Validate() error {
	if _, err := ParseOverflow(cfg.Overflow); err != nil {
		return err
	}
	return nil
}

// Arithmetic returns the evaluation mode selected by Overflow.
func (cfg Config) Arithmetic() calc.Arithmetic {
	a, _ := ParseOverflow(cfg.Overflow)
	return a
}

// ParserOptions returns the parser options matching the configuration.
func (cfg Config) ParserOptions() []calc.Option {
	return []calc.Option{calc.WithTrailingInput(!cfg.StrictTrailing)}
}

// ParseOverflow maps an overflow mode name to its arithmetic.
func ParseOverflow(mode string) (calc.Arithmetic, error) {
	switch mode {
	case OverflowWrap:
		return calc.Wrapping, nil
	case OverflowChecked:
		return calc.Checked, nil
	}
	return calc.Wrapping, fmt.Errorf("invalid overflow mode %q, want %q or %q", mode, OverflowWrap, OverflowChecked)
}
