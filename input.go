package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trashtype/typing"
)

var letterKeys = map[ebiten.Key]rune{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',
}

// keyboardInput polls ebiten once per tick for the typing snapshot.
type keyboardInput struct {
	keys []ebiten.Key
}

func (k *keyboardInput) Snapshot() typing.Snapshot {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])

	var snap typing.Snapshot
	for _, key := range k.keys {
		if r, ok := letterKeys[key]; ok {
			snap.Letters = append(snap.Letters, r)
		}
	}
	snap.Backspace = ebiten.IsKeyPressed(ebiten.KeyBackspace)
	snap.BackspaceJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	snap.Ctrl = ebiten.IsKeyPressed(ebiten.KeyControl)
	return snap
}
