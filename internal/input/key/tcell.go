package key

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// FromTcellMod converts tcell modifier flags.
func FromTcellMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}

// FromTcell converts a terminal key event.
// Control characters such as Ctrl+C become rune events with ModCtrl set.
func FromTcell(ev *tcell.EventKey) Event {
	out := Event{
		Modifiers: FromTcellMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now()
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && tcellKeys[k] == KeyNone:
		out.Key = KeyRune
		out.Rune = rune('a' + (k - tcell.KeyCtrlA))
		out.Modifiers |= ModCtrl
	default:
		out.Key = tcellKeys[k]
	}
	return out
}
