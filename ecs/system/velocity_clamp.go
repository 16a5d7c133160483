package system

import (
	"github.com/milk9111/trashtype/common"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/prefabs"
)

// VelocityClampSystem bounds the velocity of fast-moving debris so stacked
// duplicates cannot gain energy from the solver. Horizontal speed is allowed
// to be much larger than vertical.
type VelocityClampSystem struct {
	threshold float64
	maxX      float64
	maxY      float64
}

func NewVelocityClampSystem(spec prefabs.GameplaySpec) *VelocityClampSystem {
	return &VelocityClampSystem{
		threshold: spec.FallSpeed / 2,
		maxX:      spec.Debris.MaxHorizontal,
		maxY:      spec.Debris.MaxVertical,
	}
}

func (s *VelocityClampSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.TrashComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, _ *component.Trash, v *component.Velocity) {
		if ecs.Has(w, e, component.ActionActiveComponent.Kind()) {
			return
		}
		if v.Length() <= s.threshold {
			return
		}
		v.X = common.Clamp(v.X, -s.maxX, s.maxX)
		v.Y = common.Clamp(v.Y, -s.maxY, s.maxY)
	})
}
