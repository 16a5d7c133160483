package system

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
	"github.com/milk9111/trashtype/typing"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	snaps []typing.Snapshot
}

func (f *fakeInput) Snapshot() typing.Snapshot {
	if len(f.snaps) == 0 {
		return typing.Snapshot{}
	}
	s := f.snaps[0]
	f.snaps = f.snaps[1:]
	return s
}

func (f *fakeInput) push(s typing.Snapshot) {
	f.snaps = append(f.snaps, s)
}

// typingRig runs input ingestion and matching, the first two stages of a
// tick.
type typingRig struct {
	w     *ecs.World
	sess  *session.Session
	input *fakeInput
	sched *ecs.Scheduler
}

func newTypingRig() *typingRig {
	sess := session.New(0.1)
	in := &fakeInput{}
	return &typingRig{
		w:     ecs.NewWorld(),
		sess:  sess,
		input: in,
		sched: ecs.NewScheduler(NewInputSystem(sess, in), NewMatchSystem(sess)),
	}
}

func (r *typingRig) tick(s typing.Snapshot) {
	r.input.push(s)
	r.sched.Update(r.w)
}

// typeWord sends one letter per tick.
func (r *typingRig) typeWord(word string) {
	for _, c := range word {
		r.tick(typing.Snapshot{Letters: []rune{c}})
	}
}

func (r *typingRig) backspace() {
	r.tick(typing.Snapshot{Backspace: true, BackspaceJustPressed: true})
}

func spawnWord(t *testing.T, w *ecs.World, word string, powerUp component.PowerUp) ecs.Entity {
	t.Helper()
	e, err := entity.NewTrash(w, entity.TrashParams{
		Kind:      component.TrashBottle,
		Word:      word,
		PowerUp:   powerUp,
		VelocityY: -100,
	})
	require.NoError(t, err)
	return e
}

// spawnDebris creates landed trash moving at the given velocity.
func spawnDebris(t *testing.T, w *ecs.World, vx, vy float64) ecs.Entity {
	t.Helper()
	e := spawnWord(t, w, "junk", component.PowerUpNone)
	ecs.Remove(w, e, component.ActionActiveComponent.Kind())
	ecs.Remove(w, e, component.ActionDuplicateComponent.Kind())
	if text, _, ok := entity.TextOf(w, e); ok {
		w.DestroyRecursive(text)
	}
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	v.X, v.Y = vx, vy
	return e
}

func testSpec() prefabs.GameplaySpec {
	return prefabs.DefaultGameplaySpec()
}

func wordOf(w *ecs.World, e ecs.Entity) (string, bool) {
	_, text, ok := entity.TextOf(w, e)
	if !ok {
		return "", false
	}
	return text.Word, true
}

func marked(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.MarkedComponent.Kind())
}
