package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LoadDir executes every .lua file in a directory, in lexical order so
// bindings register deterministically. A missing directory is not an
// error: plugins are optional.
func (h *Host) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("lua: reading plugin dir %s: %w", dir, err)
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(scripts)

	for _, script := range scripts {
		if err := h.state.DoFile(script); err != nil {
			return fmt.Errorf("lua: running %s: %w", script, err)
		}
	}
	return nil
}
