package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/command"
)

// Host exposes the `inkwell` scripting surface and routes bound chords
// into the command registry.
type Host struct {
	state *State
	reg   *command.Registry
}

// NewHost creates a host over a fresh sandboxed state and installs the
// `inkwell` global.
func NewHost(reg *command.Registry) (*Host, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	h := &Host{state: NewState(), reg: reg}
	h.install()
	return h, nil
}

// State returns the underlying Lua state.
func (h *Host) State() *State { return h.state }

// Close releases the Lua state. Handlers bound from scripts decline all
// events afterward.
func (h *Host) Close() { h.state.Close() }

// install sets the `inkwell` global.
func (h *Host) install() {
	L := h.state.L
	mod := L.NewTable()
	L.SetField(mod, "bind", L.NewFunction(h.luaBind))
	L.SetGlobal("inkwell", mod)
}

// luaBind implements inkwell.bind(chord, fn).
func (h *Host) luaBind(L *lua.LState) int {
	chord := L.CheckString(1)
	fn := L.CheckFunction(2)

	if err := h.reg.RegisterFunc(chord, h.handler(fn)); err != nil {
		L.RaiseError("bind %q: %s", chord, err.Error())
		return 0
	}
	return 0
}

// handler adapts a Lua function to a command handler. The function gets a
// context table; a truthy return consumes the event.
func (h *Host) handler(fn *lua.LFunction) func(ctx *command.Context) command.Result {
	return func(ctx *command.Context) command.Result {
		h.state.mu.Lock()
		defer h.state.mu.Unlock()
		if h.state.closed {
			return command.NotHandled()
		}

		L := h.state.L
		err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, contextTable(L, ctx))
		if err != nil {
			return command.Error(fmt.Errorf("lua: handler: %w", err))
		}
		ret := L.Get(-1)
		L.Pop(1)

		if lua.LVAsBool(ret) {
			return command.Handled()
		}
		return command.NotHandled()
	}
}

// contextTable builds the table handed to script handlers.
func contextTable(L *lua.LState, ctx *command.Context) *lua.LTable {
	tbl := L.NewTable()

	r := ctx.Range
	L.SetField(tbl, "collapsed", lua.LBool(r.IsCollapsed()))
	L.SetField(tbl, "offset", lua.LNumber(r.Head.Offset))
	L.SetField(tbl, "card_selected", lua.LBool(ctx.Cards != nil && ctx.Cards.Selected() != nil))

	if b := ctx.HeadBlock(); b != nil {
		L.SetField(tbl, "kind", lua.LString(b.Kind().String()))
		L.SetField(tbl, "tag", lua.LString(b.TagName()))
		L.SetField(tbl, "blank", lua.LBool(b.IsBlank()))
		L.SetField(tbl, "length", lua.LNumber(b.Length()))
		L.SetField(tbl, "text", lua.LString(b.Text()))
	}
	return tbl
}
