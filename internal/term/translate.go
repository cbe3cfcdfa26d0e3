package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/input/key"
)

// Translate converts a tcell key event into a chord event. Returns false
// for keys the engine has no name for (function keys, and so on).
//
// tcell folds Ctrl+letter into dedicated key codes that collide with
// control characters (Enter is Ctrl+M, Tab is Ctrl+I); the named keys are
// therefore matched before the Ctrl+letter range.
func Translate(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case k == tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case k == tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case k == tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods), true
	case k == tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case k == tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case k == tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case k == tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
