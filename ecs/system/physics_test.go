package system

import (
	"testing"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhysicsRig() (*ecs.World, *session.Session, *PhysicsSystem) {
	sess := session.New(0.1)
	sess.Delta = 1.0 / 60.0
	return ecs.NewWorld(), sess, NewPhysicsSystem(sess, testSpec())
}

func TestPhysicsFallAndLand(t *testing.T) {
	w, _, ps := newPhysicsRig()
	floor, err := entity.NewFloorTile(w, 0, -100, 32, 48)
	require.NoError(t, err)
	e, err := entity.NewTrash(w, entity.TrashParams{Kind: component.TrashSmallCan, Word: "can", Y: 0, VelocityY: -100})
	require.NoError(t, err)

	ps.Update(w)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Less(t, tr.Y, 0.0)
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	assert.Less(t, v.Y, -100.0)

	touched := false
	for range 120 {
		for _, evt := range w.Collisions().Drain() {
			if evt.Kind != ecs.CollisionStarted {
				continue
			}
			if (evt.A == e && evt.B == floor) || (evt.A == floor && evt.B == e) {
				touched = true
			}
		}
		if touched {
			break
		}
		ps.Update(w)
	}
	assert.True(t, touched)

	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	assert.NotNil(t, pb.Body)
	assert.NotNil(t, pb.Shape)
}

func TestPhysicsPushesVelocity(t *testing.T) {
	w, _, ps := newPhysicsRig()
	e := spawnDebris(t, w, 0, 0)
	ps.Update(w)

	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	v.X, v.Y = 600, 0
	ps.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Greater(t, tr.X, 0.0)
}

func TestPhysicsGravityScale(t *testing.T) {
	w, _, ps := newPhysicsRig()
	normal := spawnDebris(t, w, 0, 0)
	heavy := spawnDebris(t, w, 0, 0)
	tr, _ := ecs.Get(w, heavy, component.TransformComponent.Kind())
	tr.X = 200
	_ = ecs.Add(w, heavy, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 10})

	for range 10 {
		ps.Update(w)
	}

	vn, _ := ecs.Get(w, normal, component.VelocityComponent.Kind())
	vh, _ := ecs.Get(w, heavy, component.VelocityComponent.Kind())
	assert.Less(t, vh.Y, vn.Y*5)
}

func TestPhysicsSensorReportsOverlap(t *testing.T) {
	w, _, ps := newPhysicsRig()
	e := spawnDebris(t, w, 0, 0)
	blast, err := entity.NewExplosion(w, 0, 0, 50, 3)
	require.NoError(t, err)

	ps.Update(w)

	found := false
	for _, evt := range w.Collisions().Drain() {
		if evt.Kind == ecs.CollisionStarted && ((evt.A == e && evt.B == blast) || (evt.A == blast && evt.B == e)) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPhysicsRemovesDeadBodies(t *testing.T) {
	w, _, ps := newPhysicsRig()
	e := spawnDebris(t, w, 0, 0)
	ps.Update(w)
	require.Equal(t, 1, ps.entities.Len())

	w.DestroyRecursive(e)
	ps.Update(w)
	assert.Equal(t, 0, ps.entities.Len())
	assert.Empty(t, ps.shapes)
}

func TestPhysicsIdleWithoutDelta(t *testing.T) {
	w, sess, ps := newPhysicsRig()
	e := spawnDebris(t, w, 0, 0)
	sess.Delta = 0

	ps.Update(w)

	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	assert.Nil(t, pb.Body)
}
