package render

import (
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
)

// View maps world coordinates (Y up, origin at the play-area centre) onto a
// screen of the given size (Y down, origin top-left).
type View struct {
	Width  float64
	Height float64
	CamX   float64
	CamY   float64
	Zoom   float64
}

// ViewFor builds a view from the world's camera entity, if any.
func ViewFor(w *ecs.World, width, height float64) View {
	v := View{Width: width, Height: height, Zoom: 1}
	if w == nil {
		return v
	}
	cam, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		v.CamX = t.X
		v.CamY = t.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		v.Zoom = c.Zoom
	}
	return v
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx := (x-v.CamX)*zoom + v.Width/2
	sy := v.Height/2 - (y-v.CamY)*zoom
	return sx, sy
}

// Scale converts a world length to screen pixels.
func (v View) Scale(d float64) float64 {
	if v.Zoom <= 0 {
		return d
	}
	return d * v.Zoom
}
