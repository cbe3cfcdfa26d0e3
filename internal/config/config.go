package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/markup"
)

// Expansion is one special-markup table entry: a markup kind and the
// literal delimiter un-expansion re-materializes for it.
type Expansion struct {
	Markup    string `toml:"markup"`
	Delimiter string `toml:"delimiter"`
}

// Config is the editor configuration.
type Config struct {
	// PluginDir is the directory Lua key-binding scripts are loaded from.
	PluginDir string `toml:"plugin_dir"`

	// Expansions is the special-markup table, in file order.
	Expansions []Expansion `toml:"expansion"`
}

// Default returns the built-in configuration: inline code with a backtick
// delimiter, strikethrough with a double tilde.
func Default() *Config {
	return &Config{
		Expansions: []Expansion{
			{Markup: "code", Delimiter: "`"},
			{Markup: "strike", Delimiter: "~~"},
		},
	}
}

// Load reads configuration from a TOML file. A missing file is not an
// error; the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads configuration from an io.Reader.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}
	// A file that names no expansions keeps the built-in table.
	if len(cfg.Expansions) == 0 {
		cfg.Expansions = Default().Expansions
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", source, err)
	}
	return &cfg, nil
}

// Validate checks that every expansion entry names a known markup and
// carries a delimiter.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Expansions))
	for i, e := range c.Expansions {
		if doc.MarkupFromName(e.Markup) == doc.MarkupNone {
			return fmt.Errorf("%w: expansion %d markup %q", ErrUnknownMarkup, i, e.Markup)
		}
		if e.Delimiter == "" {
			return fmt.Errorf("%w: expansion %d (%s)", ErrEmptyDelimiter, i, e.Markup)
		}
		if seen[e.Markup] {
			return fmt.Errorf("%w: expansion %d (%s)", ErrDuplicateMarkup, i, e.Markup)
		}
		seen[e.Markup] = true
	}
	return nil
}

// Table builds the immutable special-markup table, preserving entry order.
func (c *Config) Table() *markup.Table {
	entries := make([]markup.Entry, 0, len(c.Expansions))
	for _, e := range c.Expansions {
		entries = append(entries, markup.Entry{
			Markup:    doc.MarkupFromName(e.Markup),
			Delimiter: e.Delimiter,
		})
	}
	return markup.New(entries)
}
