package main

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/trashtype/typing"
)

// termInput collects key events between ticks. Terminals report no key
// releases, so every backspace event counts as a fresh press.
type termInput struct {
	mu       sync.Mutex
	letters  []rune
	back     bool
	clearAll bool
}

// HandleKey records ev and reports whether it was a typing key.
func (in *termInput) HandleKey(ev *tcell.EventKey) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r < 'a' || r > 'z' {
			return false
		}
		in.letters = append(in.letters, r)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			in.clearAll = true
		} else {
			in.back = true
		}
		return true
	case tcell.KeyCtrlW, tcell.KeyCtrlU:
		in.clearAll = true
		return true
	}
	return false
}

func (in *termInput) Snapshot() typing.Snapshot {
	in.mu.Lock()
	defer in.mu.Unlock()

	var snap typing.Snapshot
	if len(in.letters) > 0 {
		snap.Letters = append([]rune(nil), in.letters...)
	}
	switch {
	case in.clearAll:
		snap.Ctrl = true
		snap.Backspace = true
		snap.BackspaceJustPressed = true
	case in.back:
		snap.Backspace = true
		snap.BackspaceJustPressed = true
	}

	in.letters = in.letters[:0]
	in.back = false
	in.clearAll = false
	return snap
}

func (in *termInput) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.letters = in.letters[:0]
	in.back = false
	in.clearAll = false
}
