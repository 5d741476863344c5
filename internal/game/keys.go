package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fortress/internal/editor"
)

// action is what a key press asks the game to do.
type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionEdit
)

var editorKeys = map[tcell.Key]editor.Key{
	tcell.KeyUp:    editor.KeyUp,
	tcell.KeyDown:  editor.KeyDown,
	tcell.KeyLeft:  editor.KeyLeft,
	tcell.KeyRight: editor.KeyRight,
	tcell.KeyHome:  editor.KeyUpLeft,
	tcell.KeyPgUp:  editor.KeyUpRight,
	tcell.KeyEnd:   editor.KeyDownLeft,
	tcell.KeyPgDn:  editor.KeyDownRight,
	tcell.KeyEnter: editor.KeyEnter,
	tcell.KeyEsc:   editor.KeyEscape,
}

var editorRunes = map[rune]editor.Key{
	'r': editor.KeyRoom,
	'w': editor.KeyWall,
	'd': editor.KeyDoor,
	// vi-style movement
	'k': editor.KeyUp,
	'j': editor.KeyDown,
	'h': editor.KeyLeft,
	'l': editor.KeyRight,
	'y': editor.KeyUpLeft,
	'u': editor.KeyUpRight,
	'b': editor.KeyDownLeft,
	'n': editor.KeyDownRight,
}

// translateKey maps a terminal key event to a game action and, for
// actionEdit, the editor key to apply.
func translateKey(ev *tcell.EventKey) (action, editor.Key) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return actionQuit, editor.KeyNone
	case tcell.KeyRune:
		switch ch := ev.Rune(); ch {
		case 'q', 'Q':
			return actionQuit, editor.KeyNone
		case ' ':
			return actionPause, editor.KeyNone
		default:
			if k, ok := editorRunes[unicode.ToLower(ch)]; ok {
				return actionEdit, k
			}
			return actionNone, editor.KeyNone
		}
	}
	if k, ok := editorKeys[ev.Key()]; ok {
		return actionEdit, k
	}
	return actionNone, editor.KeyNone
}
