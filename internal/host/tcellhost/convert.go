package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/document"
)

// convertKey translates a tcell key event into the engine's Key/rune pair.
// Character keys collapse to document.KeyRune with the rune carried
// separately, matching how document.Event represents them.
func convertKey(e *tcell.EventKey) (document.Key, rune) {
	if e.Key() == tcell.KeyRune {
		return document.KeyRune, e.Rune()
	}
	if k, ok := namedKeys[e.Key()]; ok {
		return k, 0
	}
	return document.KeyNone, 0
}

var namedKeys = map[tcell.Key]document.Key{
	tcell.KeyEscape:     document.KeyEscape,
	tcell.KeyEnter:      document.KeyEnter,
	tcell.KeyTab:        document.KeyTab,
	tcell.KeyBackspace:  document.KeyBackspace,
	tcell.KeyBackspace2: document.KeyBackspace,
	tcell.KeyDelete:     document.KeyDelete,
	tcell.KeyInsert:     document.KeyInsert,
	tcell.KeyHome:       document.KeyHome,
	tcell.KeyEnd:        document.KeyEnd,
	tcell.KeyPgUp:       document.KeyPageUp,
	tcell.KeyPgDn:       document.KeyPageDown,
	tcell.KeyUp:         document.KeyUp,
	tcell.KeyDown:       document.KeyDown,
	tcell.KeyLeft:       document.KeyLeft,
	tcell.KeyRight:      document.KeyRight,
	tcell.KeyF1:         document.KeyF1,
	tcell.KeyF2:         document.KeyF2,
	tcell.KeyF3:         document.KeyF3,
	tcell.KeyF4:         document.KeyF4,
	tcell.KeyF5:         document.KeyF5,
	tcell.KeyF6:         document.KeyF6,
	tcell.KeyF7:         document.KeyF7,
	tcell.KeyF8:         document.KeyF8,
	tcell.KeyF9:         document.KeyF9,
	tcell.KeyF10:        document.KeyF10,
	tcell.KeyF11:        document.KeyF11,
	tcell.KeyF12:        document.KeyF12,
}

// convertMod translates a tcell modifier mask into document.Modifier.
func convertMod(m tcell.ModMask) document.Modifier {
	var mod document.Modifier
	if m&tcell.ModShift != 0 {
		mod |= document.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= document.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= document.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= document.ModMeta
	}
	return mod
}
