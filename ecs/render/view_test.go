package render

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/stretchr/testify/require"
)

func TestViewToScreenFlipsY(t *testing.T) {
	v := View{Width: 700, Height: 800, Zoom: 1}

	x, y := v.ToScreen(0, 0)
	require.Equal(t, 350.0, x)
	require.Equal(t, 400.0, y)

	x, y = v.ToScreen(-350, 400)
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)

	_, y = v.ToScreen(0, -400)
	require.Equal(t, 800.0, y)
}

func TestViewForUsesCamera(t *testing.T) {
	w := ecs.NewWorld()
	_, err := entity.NewCamera(w)
	require.NoError(t, err)

	v := ViewFor(w, 700, 800)
	require.Equal(t, 1.0, v.Zoom)
	require.Equal(t, 20.0, v.Scale(20))

	empty := ViewFor(nil, 700, 800)
	require.Equal(t, 1.0, empty.Zoom)
}

func TestSpriteColorFallback(t *testing.T) {
	require.NotEqual(t, SpriteColor("bottle"), SpriteColor("no_such_sprite"))
}
