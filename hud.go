package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/trashtype/ecs/render"
	"github.com/milk9111/trashtype/session"
	"golang.org/x/image/colornames"
)

const (
	hudPadding   = 10
	meterWidth   = 120
	meterHeight  = 8
	bufferHeight = 28
)

var (
	hudBackground = color.RGBA{A: 0xb0}
	meterEmpty    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// drawHUD shows the score, the combo modifier and meter, and the typing
// buffer along the bottom edge.
func drawHUD(screen *ebiten.Image, sess *session.Session, face ebtext.Face) {
	if sess == nil || sess.Score == nil {
		return
	}

	render.DrawText(screen, fmt.Sprintf("Score: %d", sess.Score.Score()), face, hudPadding, hudPadding, colornames.White)

	modText := fmt.Sprintf("x%d", sess.Score.Modifier())
	modX := float64(screenWidth) - hudPadding - meterWidth - ebtext.Advance(modText, face) - 6
	render.DrawText(screen, modText, face, modX, hudPadding, colornames.Gold)

	mx := float32(screenWidth - hudPadding - meterWidth)
	my := float32(hudPadding + 3)
	vector.FillRect(screen, mx, my, meterWidth, meterHeight, meterEmpty, false)
	fill := float32(sess.Score.Meter()) * meterWidth
	if fill > 0 {
		vector.FillRect(screen, mx, my, fill, meterHeight, colornames.Gold, false)
	}

	by := float32(screenHeight - bufferHeight)
	vector.FillRect(screen, 0, by, screenWidth, bufferHeight, hudBackground, false)
	render.DrawText(screen, "> "+sess.Buffer.String(), face, hudPadding, float64(by)+8, colornames.White)
}
