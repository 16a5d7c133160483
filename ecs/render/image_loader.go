package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

var spriteColors = map[string]color.RGBA{
	"bottle":       colornames.Seagreen,
	"pizza":        colornames.Sandybrown,
	"big_box":      colornames.Peru,
	"glass_bottle": colornames.Lightseagreen,
	"news":         colornames.Lightgray,
	"shampoo":      colornames.Orchid,
	"small_can":    colornames.Silver,
	"soda":         colornames.Crimson,
	"spray":        colornames.Steelblue,
}

// SpriteColor returns the flat colour for a sprite name.
func SpriteColor(name string) color.RGBA {
	if c, ok := spriteColors[name]; ok {
		return c
	}
	return colornames.Gray
}

// LoadSprite returns the image for a sprite at the given pixel size. A PNG at
// assets/sprites/<name>.png is used when present, otherwise a flat colour
// block. Results are cached per name and size.
func LoadSprite(name string, w, h int) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	key := spriteKey(name, w, h)
	if img := cachedSprite(key); img != nil {
		return img
	}

	img, err := loadImageFromFS(name)
	if err != nil {
		img = ebiten.NewImage(w, h)
		img.Fill(SpriteColor(name))
	}
	cacheSprite(key, img)
	return img
}

func loadImageFromFS(name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("render: empty sprite name")
	}
	tried := []string{
		filepath.Join("assets", "sprites", name+".png"),
		filepath.Join("sprites", name+".png"),
	}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: sprite %s not found", name)
}
