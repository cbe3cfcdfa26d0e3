package lua_test

import (
	"os"
	"path/filepath"
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/input/key"
	lua "github.com/dshills/inkwell/internal/plugin/lua"
	"github.com/dshills/inkwell/internal/platform"
)

func newHostEngine(t *testing.T, blocks ...*doc.Block) (*command.Engine, *lua.Host) {
	t.Helper()
	d := doc.NewWithBlocks(blocks...)
	e, err := command.New(d, command.WithPlatform(platform.Other()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h, err := lua.NewHost(e.Registry())
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	t.Cleanup(h.Close)
	return e, h
}

func TestBindDispatchesChord(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("hello", 0))
	e, h := newHostEngine(t, p)

	script := `
hits = 0
inkwell.bind("CTRL+B", function(ctx)
  hits = hits + 1
  seen_tag = ctx.tag
  seen_text = ctx.text
  seen_offset = ctx.offset
  return ctx.collapsed
end)
`
	if err := h.State().DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	e.SetCursor(doc.Collapsed(doc.NewPosition(p, 3)))
	res := e.HandleKey(key.MustParse("<C-b>"))
	if res.Status != command.StatusHandled {
		t.Fatalf("status = %v (err %v), want handled", res.Status, res.Error)
	}

	L := h.State().L
	if got := L.GetGlobal("hits"); got != glua.LNumber(1) {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := L.GetGlobal("seen_tag"); got != glua.LString("p") {
		t.Errorf("seen_tag = %v, want p", got)
	}
	if got := L.GetGlobal("seen_text"); got != glua.LString("hello") {
		t.Errorf("seen_text = %v, want hello", got)
	}
	if got := L.GetGlobal("seen_offset"); got != glua.LNumber(3) {
		t.Errorf("seen_offset = %v, want 3", got)
	}

	// A falsy return defers to default behavior.
	e.SetCursor(doc.NewRange(doc.NewPosition(p, 1), doc.NewPosition(p, 4)))
	res = e.HandleKey(key.MustParse("CTRL+B"))
	if res.Status != command.StatusNotHandled {
		t.Fatalf("status = %v, want not-handled", res.Status)
	}
}

func TestBindRejectsBadChord(t *testing.T) {
	_, h := newHostEngine(t, doc.NewParagraph())
	if err := h.State().DoString(`inkwell.bind("CTRL+", function(ctx) end)`); err == nil {
		t.Fatal("bind accepted a malformed chord")
	}
}

func TestHandlerErrorSurfaces(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("x", 0))
	e, h := newHostEngine(t, p)

	script := `inkwell.bind("CTRL+E", function(ctx) error("boom") end)`
	if err := h.State().DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	e.SetCursor(doc.Collapsed(doc.HeadOf(p)))
	res := e.HandleKey(key.MustParse("CTRL+E"))
	if res.Status != command.StatusError || res.Error == nil {
		t.Fatalf("result = %v, want error status", res)
	}
}

func TestSandboxBlocksFileLoading(t *testing.T) {
	_, h := newHostEngine(t, doc.NewParagraph())
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		if got := h.State().L.GetGlobal(name); got != glua.LNil {
			t.Errorf("%s = %v, want nil", name, got)
		}
	}
	if err := h.State().DoString(`dofile("/etc/passwd")`); err == nil {
		t.Error("dofile was callable")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeScript := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	// Lexical order: a.lua seeds the value b.lua appends to.
	writeScript("b.lua", `order = order .. "b"`)
	writeScript("a.lua", `order = "a"`)
	writeScript("notes.txt", `not lua`)

	_, h := newHostEngine(t, doc.NewParagraph())
	if err := h.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := h.State().L.GetGlobal("order"); got != glua.LString("ab") {
		t.Errorf("order = %v, want ab", got)
	}
}

func TestLoadDirMissingIsNoError(t *testing.T) {
	_, h := newHostEngine(t, doc.NewParagraph())
	if err := h.LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
}
