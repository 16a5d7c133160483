package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/session"
)

var (
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleLine   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDebris = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBomb   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleLink   = tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue)
	styleBlast  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleWord   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTyped  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// grid maps play-area coordinates onto terminal cells. The last row is kept
// for the HUD.
type grid struct {
	cols, rows    int
	width, height float64
}

func (g grid) playRows() int {
	return max(g.rows-1, 1)
}

// cell returns the column and row for world point (x, y).
func (g grid) cell(x, y float64) (int, int) {
	if g.width <= 0 || g.height <= 0 || g.cols <= 0 {
		return 0, 0
	}
	col := int((x + g.width/2) / g.width * float64(g.cols))
	row := int((g.height/2 - y) / g.height * float64(g.playRows()))
	return col, row
}

func (g grid) inside(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.playRows()
}

// span returns how many cells a world extent covers, at least one.
func (g grid) span(w, h float64) (int, int) {
	cw := int(w / g.width * float64(g.cols))
	ch := int(h / g.height * float64(g.playRows()))
	return max(cw, 1), max(ch, 1)
}

func draw(s tcell.Screen, w *ecs.World, sess *session.Session, width, height float64, over bool) {
	s.Clear()
	cols, rows := s.Size()
	g := grid{cols: cols, rows: rows, width: width, height: height}

	for _, e := range w.Query(component.FloorComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		col, row := g.cell(t.X, t.Y)
		fill(s, g, col-2, row, 5, 1, '▀', styleFloor)
	}
	for _, e := range w.Query(component.GameOverLineComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		left, row := g.cell(t.X-body.Width/2, t.Y)
		right, _ := g.cell(t.X+body.Width/2, t.Y)
		fill(s, g, left, row, right-left, 1, '╌', styleLine)
	}

	ecs.ForEach2(w, component.TrashComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trash *component.Trash, t *component.Transform) {
		style := styleDebris
		if ecs.Has(w, e, component.ActionActiveComponent.Kind()) {
			style = styleActive
		}
		if !trash.Triggered {
			switch trash.PowerUp {
			case component.PowerUpExplosion:
				style = styleBomb
			case component.PowerUpLink:
				style = styleLink
			}
		}
		cw, ch := g.span(trash.HalfWidth*2, trash.HalfHeight*2)
		col, row := g.cell(t.X-trash.HalfWidth, t.Y+trash.HalfHeight)
		fill(s, g, col, row, cw, ch, '█', style)
	})

	ecs.ForEach2(w, component.TrashExplosionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, blast *component.TrashExplosion, t *component.Transform) {
		cw, ch := g.span(blast.Radius*2, blast.Radius*2)
		col, row := g.cell(t.X-blast.Radius, t.Y+blast.Radius)
		fill(s, g, col, row, cw, ch, '*', styleBlast)
	})

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
		col, row := g.cell(t.X, t.Y+trash.HalfHeight)
		col -= len(text.Word) / 2
		row--
		n := min(max(text.Highlighted, 0), len(text.Word))
		for i, r := range text.Word {
			style := styleWord
			if i < n {
				style = styleTyped
			}
			if g.inside(col+i, row) {
				s.SetContent(col+i, row, r, nil, style)
			}
		}
	})

	hud := fmt.Sprintf("> %-16s score %d  x%d  [%s]", sess.Buffer.String(), sess.Score.Score(), sess.Score.Modifier(), meter(sess.Score.Meter(), 10))
	if over {
		hud = fmt.Sprintf("GAME OVER  score %d  r: restart  esc: quit", sess.Score.Score())
	}
	putString(s, 0, rows-1, hud, styleHUD)
	s.Show()
}

func meter(v float64, width int) string {
	n := int(v * float64(width))
	n = min(max(n, 0), width)
	out := make([]rune, width)
	for i := range out {
		if i < n {
			out[i] = '#'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

func fill(s tcell.Screen, g grid, col, row, w, h int, r rune, style tcell.Style) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			if g.inside(x, y) {
				s.SetContent(x, y, r, nil, style)
			}
		}
	}
}

func putString(s tcell.Screen, col, row int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(col+i, row, r, nil, style)
	}
}
