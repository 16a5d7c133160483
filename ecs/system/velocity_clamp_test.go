package system

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestVelocityClamp(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		in     component.Velocity
		want   component.Velocity
	}{
		{name: "fast debris", in: component.Velocity{X: 900, Y: -300}, want: component.Velocity{X: 600, Y: -40}},
		{name: "fast debris upward", in: component.Velocity{X: -100, Y: 700}, want: component.Velocity{X: -100, Y: 40}},
		{name: "slow debris untouched", in: component.Velocity{X: 20, Y: -40}, want: component.Velocity{X: 20, Y: -40}},
		{name: "active trash untouched", active: true, in: component.Velocity{X: 0, Y: -900}, want: component.Velocity{X: 0, Y: -900}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := spawnDebris(t, w, tc.in.X, tc.in.Y)
			if tc.active {
				_ = ecs.Add(w, e, component.ActionActiveComponent.Kind(), &component.ActionActive{})
			}

			NewVelocityClampSystem(testSpec()).Update(w)

			v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			assert.Equal(t, tc.want, *v)
		})
	}
}
