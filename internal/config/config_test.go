package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/doc"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := config.Default()
	if len(cfg.Expansions) != len(want.Expansions) {
		t.Fatalf("expansions = %v, want defaults %v", cfg.Expansions, want.Expansions)
	}
	for i, e := range cfg.Expansions {
		if e != want.Expansions[i] {
			t.Errorf("expansion %d = %v, want %v", i, e, want.Expansions[i])
		}
	}
}

func TestLoadReaderPreservesEntryOrder(t *testing.T) {
	src := `
plugin_dir = "/opt/inkwell/plugins"

[[expansion]]
markup = "strike"
delimiter = "~~"

[[expansion]]
markup = "code"
delimiter = ` + "\"`\"" + `
`
	cfg, err := config.LoadReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if cfg.PluginDir != "/opt/inkwell/plugins" {
		t.Errorf("plugin_dir = %q", cfg.PluginDir)
	}
	if len(cfg.Expansions) != 2 {
		t.Fatalf("expansions = %v, want 2 entries", cfg.Expansions)
	}
	if cfg.Expansions[0].Markup != "strike" || cfg.Expansions[1].Markup != "code" {
		t.Fatalf("entry order = %v, want [strike code]", cfg.Expansions)
	}

	table := cfg.Table()
	entries := table.Entries()
	if len(entries) != 2 {
		t.Fatalf("table entries = %d, want 2", len(entries))
	}
	if entries[0].Markup != doc.MarkupStrike || entries[0].Delimiter != "~~" {
		t.Errorf("entry 0 = %v", entries[0])
	}
	if entries[1].Markup != doc.MarkupCode || entries[1].Delimiter != "`" {
		t.Errorf("entry 1 = %v", entries[1])
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "unknown markup",
			src:  "[[expansion]]\nmarkup = \"sparkle\"\ndelimiter = \"*\"\n",
			want: config.ErrUnknownMarkup,
		},
		{
			name: "empty delimiter",
			src:  "[[expansion]]\nmarkup = \"code\"\ndelimiter = \"\"\n",
			want: config.ErrEmptyDelimiter,
		},
		{
			name: "duplicate markup",
			src: "[[expansion]]\nmarkup = \"code\"\ndelimiter = \"`\"\n" +
				"[[expansion]]\nmarkup = \"code\"\ndelimiter = \"``\"\n",
			want: config.ErrDuplicateMarkup,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadReader(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadReaderParseError(t *testing.T) {
	_, err := config.LoadReader(strings.NewReader("[[expansion"))
	var perr *config.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.toml")
	write := func(delim string) {
		t.Helper()
		src := "[[expansion]]\nmarkup = \"code\"\ndelimiter = \"" + delim + "\"\n"
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	write("`")

	var mu sync.Mutex
	var got []*config.Config
	reloaded := make(chan struct{}, 8)

	w, err := config.Watch(path, func(cfg *config.Config) {
		mu.Lock()
		got = append(got, cfg)
		mu.Unlock()
		reloaded <- struct{}{}
	}, config.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	write("``")

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) == 0 {
		t.Fatal("no config delivered")
	}
	last := got[len(got)-1]
	if len(last.Expansions) != 1 || last.Expansions[0].Delimiter != "``" {
		t.Fatalf("reloaded config = %v", last.Expansions)
	}
}
