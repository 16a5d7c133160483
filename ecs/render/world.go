package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	floorColor     = color.RGBA{R: 0x4a, G: 0x3b, B: 0x2f, A: 0xff}
	lineColor      = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0x90}
	blastColor     = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xa0}
	wordColor      = colornames.White
	highlightColor = colornames.Gold
)

// DrawWorld draws the play area, every piece of trash and the word labels
// above active trash.
func DrawWorld(screen *ebiten.Image, w *ecs.World, face ebtext.Face, width, height float64) {
	if screen == nil || w == nil {
		return
	}
	view := ViewFor(w, width, height)

	drawStatic(screen, w, view)
	drawTrash(screen, w, view)
	drawBlasts(screen, w, view)
	if face != nil {
		drawWords(screen, w, view, face)
	}
}

func drawStatic(screen *ebiten.Image, w *ecs.World, view View) {
	for _, e := range w.Query(component.FloorComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		fillBody(screen, w, e, view, floorColor)
	}
	for _, e := range w.Query(component.GameOverLineComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		fillBody(screen, w, e, view, lineColor)
	}
}

func drawTrash(screen *ebiten.Image, w *ecs.World, view View) {
	ecs.ForEach2(w, component.TrashComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trash *component.Trash, t *component.Transform) {
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return
		}
		sw := view.Scale(sprite.Width)
		sh := view.Scale(sprite.Height)
		img := LoadSprite(sprite.Name, int(sw), int(sh))

		op := &ebiten.DrawImageOptions{}
		bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
		op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
		op.GeoM.Scale(sw/float64(bw), sh/float64(bh))
		// Screen Y is flipped, so the rotation direction flips too.
		op.GeoM.Rotate(-t.Rotation)
		sx, sy := view.ToScreen(t.X, t.Y)
		op.GeoM.Translate(sx, sy)
		if !ecs.Has(w, e, component.ActionActiveComponent.Kind()) {
			op.ColorScale.Scale(0.6, 0.6, 0.6, 1)
		}
		screen.DrawImage(img, op)

		if trash.PowerUp != component.PowerUpNone && !trash.Triggered {
			ring := colornames.Orangered
			if trash.PowerUp == component.PowerUpLink {
				ring = colornames.Deepskyblue
			}
			r := float32(max(sw, sh)/2 + 4)
			vector.StrokeCircle(screen, float32(sx), float32(sy), r, 2, ring, true)
		}
	})
}

func drawBlasts(screen *ebiten.Image, w *ecs.World, view View) {
	ecs.ForEach2(w, component.TrashExplosionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, blast *component.TrashExplosion, t *component.Transform) {
		sx, sy := view.ToScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(view.Scale(blast.Radius)), blastColor, true)
	})
}

func drawWords(screen *ebiten.Image, w *ecs.World, view View, face ebtext.Face) {
	ecs.ForEach(w, component.TrashTextComponent.Kind(), func(e ecs.Entity, text *component.TrashText) {
		parent, ok := w.Parent(e)
		if !ok {
			return
		}
		t, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
		if !ok {
			return
		}
		trash, ok := ecs.Get(w, parent, component.TrashComponent.Kind())
		if !ok {
			return
		}

		sx, sy := view.ToScreen(t.X, t.Y+trash.HalfHeight+6)
		width := ebtext.Advance(text.Word, face)
		x := sx - width/2
		y := sy - face.Metrics().HAscent - face.Metrics().HDescent

		n := min(max(text.Highlighted, 0), len(text.Word))
		typed, rest := text.Word[:n], text.Word[n:]
		drawText(screen, typed, face, x, y, highlightColor)
		drawText(screen, rest, face, x+ebtext.Advance(typed, face), y, wordColor)
	})
}

func fillBody(screen *ebiten.Image, w *ecs.World, e ecs.Entity, view View, c color.Color) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	x, y := view.ToScreen(t.X-body.Width/2, t.Y+body.Height/2)
	vector.FillRect(screen, float32(x), float32(y), float32(view.Scale(body.Width)), float32(view.Scale(body.Height)), c, false)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face ebtext.Face, x, y float64, c color.Color) {
	drawText(screen, s, face, x, y, c)
}

func drawText(screen *ebiten.Image, s string, face ebtext.Face, x, y float64, c color.Color) {
	if s == "" {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, face, op)
}
