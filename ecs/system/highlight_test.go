package system

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/session"
	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	w := ecs.NewWorld()
	sess := session.New(0.1)
	short := spawnWord(t, w, "ab", component.PowerUpNone)
	long := spawnWord(t, w, "abcdef", component.PowerUpNone)
	other := spawnWord(t, w, "xyz", component.PowerUpNone)
	for _, e := range []ecs.Entity{short, long} {
		_ = ecs.Add(w, e, component.MarkedComponent.Kind(), &component.Marked{})
	}
	sess.Buffer.Set("abc")

	NewHighlightSystem(sess).Update(w)

	highlighted := func(e ecs.Entity) int {
		_, text, _ := entity.TextOf(w, e)
		return text.Highlighted
	}
	assert.Equal(t, 2, highlighted(short))
	assert.Equal(t, 3, highlighted(long))
	assert.Equal(t, 0, highlighted(other))

	ecs.Remove(w, long, component.MarkedComponent.Kind())
	NewHighlightSystem(sess).Update(w)
	assert.Equal(t, 0, highlighted(long))
}
