package game

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/ecs/system"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
	"github.com/milk9111/trashtype/typing"
	"github.com/milk9111/trashtype/wordbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

type keys struct {
	pending []typing.Snapshot
}

func (k *keys) Snapshot() typing.Snapshot {
	if len(k.pending) == 0 {
		return typing.Snapshot{}
	}
	s := k.pending[0]
	k.pending = k.pending[1:]
	return s
}

func (k *keys) typeWord(word string) {
	for _, c := range word {
		k.pending = append(k.pending, typing.Snapshot{Letters: []rune{c}})
	}
}

func newTestRound(t *testing.T) (*Round, *keys) {
	t.Helper()
	bank, err := wordbank.Parse("melon\nlemon\nplum\n")
	require.NoError(t, err)
	trash, err := prefabs.LoadTrashSpec()
	require.NoError(t, err)

	in := &keys{}
	r, err := NewRound(Options{
		Spec:  prefabs.DefaultGameplaySpec(),
		Trash: trash,
		Bank:  bank,
		Input: in,
		Seed:  42,
	})
	require.NoError(t, err)
	require.NoError(t, r.Enter())
	return r, in
}

func liveTrash(r *Round) []ecs.Entity {
	return r.World.Query(component.TrashComponent.Kind())
}

func TestNewRoundRequiresDependencies(t *testing.T) {
	_, err := NewRound(Options{Input: &keys{}})
	assert.Error(t, err)

	bank, err := wordbank.Parse("a\n")
	require.NoError(t, err)
	_, err = NewRound(Options{Bank: bank})
	assert.Error(t, err)
}

func TestRoundTickOrder(t *testing.T) {
	r, _ := newTestRound(t)
	assert.Equal(t, []string{
		"InputSystem",
		"MatchSystem",
		"CollisionSystem",
		"TTLSystem",
		"VelocityClampSystem",
		"SpawnSystem",
		"DifficultySystem",
		"PhysicsSystem",
		"HighlightSystem",
	}, r.TickOrder())
}

func TestRoundEnterBuildsPlayArea(t *testing.T) {
	r, _ := newTestRound(t)

	assert.Equal(t, session.StatePlaying, r.Session.State())
	assert.NotEmpty(t, r.World.Query(component.FloorComponent.Kind()))
	assert.Len(t, r.World.Query(component.WallComponent.Kind()), 2)
	assert.Len(t, r.World.Query(component.GameOverLineComponent.Kind()), 1)
	assert.Len(t, r.World.Query(component.CameraTagComponent.Kind()), 1)
	assert.Empty(t, liveTrash(r))
}

func TestRoundSpawnsAndTypes(t *testing.T) {
	r, in := newTestRound(t)

	for range 121 {
		r.Update(tick)
	}
	spawned := liveTrash(r)
	require.Len(t, spawned, 1)

	_, text, ok := entity.TextOf(r.World, spawned[0])
	require.True(t, ok)
	word := text.Word

	in.typeWord(word[:2])
	r.Update(tick)
	r.Update(tick)
	assert.Equal(t, word[:2], r.Session.Buffer.String())
	assert.True(t, ecs.Has(r.World, spawned[0], component.MarkedComponent.Kind()))
	_, text, _ = entity.TextOf(r.World, spawned[0])
	assert.Equal(t, 2, text.Highlighted)

	in.typeWord(word[2:])
	for range len(word) - 2 {
		r.Update(tick)
	}

	trash, ok := ecs.Get(r.World, spawned[0], component.TrashComponent.Kind())
	if ok {
		// power-up trash waits for its impact
		assert.True(t, trash.Activated)
		assert.NotEqual(t, component.PowerUpNone, trash.PowerUp)
	} else {
		assert.False(t, r.World.IsAlive(spawned[0]))
	}
	assert.Equal(t, uint64(len(word)), r.Session.Score.Score())
	assert.Equal(t, "", r.Session.Buffer.String())
}

func TestRoundGameOverAndRestart(t *testing.T) {
	r, _ := newTestRound(t)
	for range 121 {
		r.Update(tick)
	}
	require.NotEmpty(t, liveTrash(r))
	r.Session.Score.Award(9)

	debris, err := entity.NewTrash(r.World, entity.TrashParams{Kind: component.TrashBigBox, Word: "plum", Y: 410})
	require.NoError(t, err)
	ecs.Remove(r.World, debris, component.ActionActiveComponent.Kind())
	line, ok := r.World.First(component.GameOverLineComponent.Kind())
	require.True(t, ok)
	r.World.Collisions().Started(debris, line)

	r.Update(tick)

	assert.Equal(t, session.StateGameOver, r.Session.State())
	score, over := r.GameOver()
	require.True(t, over)
	assert.Equal(t, uint64(9), score)
	assert.Empty(t, liveTrash(r))
	assert.Empty(t, r.World.Query(component.FloorComponent.Kind()))
	assert.Len(t, r.World.Query(component.CameraTagComponent.Kind()), 1)

	// nothing runs while the round is over
	before := r.World.Len()
	for range 300 {
		r.Update(tick)
	}
	assert.Equal(t, before, r.World.Len())

	require.NoError(t, r.Restart())
	assert.Equal(t, session.StatePlaying, r.Session.State())
	_, over = r.GameOver()
	assert.False(t, over)
	assert.Zero(t, r.Session.Score.Score())
	assert.Equal(t, uint32(1), r.Session.Score.Modifier())
	assert.Len(t, r.World.Query(component.GameOverLineComponent.Kind()), 1)
	assert.Equal(t, 2.0, r.SpawnInterval())
}

func TestRoundDifficultyRamp(t *testing.T) {
	r, _ := newTestRound(t)
	for range 601 {
		r.Update(tick)
	}
	assert.InDelta(t, 1.8, r.SpawnInterval(), 1e-9)
}

func TestRoundReloadSpecAppliesOnRestart(t *testing.T) {
	r, _ := newTestRound(t)
	spec := prefabs.DefaultGameplaySpec()
	spec.Spawn.Interval = 3.5
	r.ReloadSpec(spec)
	assert.Equal(t, 2.0, r.SpawnInterval())

	require.NoError(t, r.Restart())
	assert.Equal(t, 3.5, r.SpawnInterval())
	assert.Equal(t, 3.5, r.Spec().Spawn.Interval)
}

func TestRoundReloadScriptAppliesOnRestart(t *testing.T) {
	r, _ := newTestRound(t)
	compiled, err := system.LoadDifficultyScript([]byte("next := floor"))
	require.NoError(t, err)
	r.ReloadScript(compiled)

	require.NoError(t, r.Restart())
	for range 601 {
		r.Update(tick)
	}
	assert.InDelta(t, 1.0, r.SpawnInterval(), 1e-9)
}
