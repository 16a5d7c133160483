package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// sprites caches one image per sprite name and pixel size.
var sprites = map[string]*ebiten.Image{}

func spriteKey(name string, w, h int) string {
	return fmt.Sprintf("%s@%dx%d", name, w, h)
}

func cachedSprite(key string) *ebiten.Image {
	return sprites[key]
}

func cacheSprite(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	sprites[key] = img
}
