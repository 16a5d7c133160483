package system

import (
	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
)

const (
	collisionTypeTrash cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem steps the Chipmunk space and reports contacts as collision
// events for the next tick. Gameplay velocity lives in the Velocity
// component; it is pushed into the body before the step and read back
// after.
type PhysicsSystem struct {
	session       *session.Session
	space         *cp.Space
	handlersReady bool

	gravity    float64
	iterations int
	friction   float64
	elasticity float64

	entities *intmap.Map[ecs.Entity, *bodyInfo]
	shapes   map[*cp.Shape]ecs.Entity
	pending  []ecs.CollisionEvent
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(sess *session.Session, spec prefabs.GameplaySpec) *PhysicsSystem {
	ps := &PhysicsSystem{
		session:    sess,
		gravity:    spec.Physics.Gravity,
		iterations: spec.Physics.Iterations,
		friction:   spec.Physics.Friction,
		elasticity: spec.Physics.Elasticity,
	}
	ps.Reset()
	return ps
}

// Reset discards the space and every body, for a new round.
func (ps *PhysicsSystem) Reset() {
	space := cp.NewSpace()
	space.Iterations = uint(max(ps.iterations, 1))
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	ps.space = space
	ps.handlersReady = false
	ps.entities = intmap.New[ecs.Entity, *bodyInfo](64)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.pending = nil
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.session == nil {
		return
	}
	dt := ps.session.Delta
	if dt <= 0 {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushVelocities(w)

	ps.space.Step(dt)

	ps.syncTransforms(w)
	queue := w.Collisions()
	for _, evt := range ps.pending {
		queue.Push(evt)
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	for _, pair := range [][2]cp.CollisionType{
		{collisionTypeTrash, collisionTypeTrash},
		{collisionTypeTrash, collisionTypeSolid},
	} {
		handler := ps.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			if sys, ok := userData.(*PhysicsSystem); ok {
				sys.record(ecs.CollisionStarted, arb)
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			if sys, ok := userData.(*PhysicsSystem); ok {
				sys.record(ecs.CollisionStopped, arb)
			}
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) record(kind ecs.CollisionEventKind, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, ecs.CollisionEvent{Kind: kind, A: a, B: b})
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := ps.entities.Get(e); ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		info := ps.createBodyInfo(w, e, transform, bodyComp)
		if info == nil {
			continue
		}
		ps.entities.Put(e, info)
		ps.shapes[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		return nil
	}

	friction := bodyComp.Friction
	if friction <= 0 {
		friction = ps.friction
	}
	elasticity := bodyComp.Elasticity
	if elasticity <= 0 {
		elasticity = ps.elasticity
	}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{
				L: transform.X - width/2,
				B: transform.Y - height/2,
				R: transform.X + width/2,
				T: transform.Y + height/2,
			}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(friction)
		shape.SetElasticity(elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	var moment float64
	if radius > 0 {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		body.SetVelocity(v.X, v.Y)
	}
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
		scale := gs.Scale
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
		})
	}

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(friction)
	shape.SetElasticity(elasticity)
	shape.SetCollisionType(collisionTypeTrash)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// pushVelocities copies gameplay edits (clamping, duplicates at rest) into
// the bodies.
func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach(w, component.VelocityComponent.Kind(), func(e ecs.Entity, v *component.Velocity) {
		info, ok := ps.entities.Get(e)
		if !ok || info.static {
			return
		}
		info.body.SetVelocity(v.X, v.Y)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ps.entities.ForEach(func(e ecs.Entity, info *bodyInfo) bool {
		if info.static {
			return true
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := info.body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
			transform.Rotation = info.body.Angle()
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := info.body.Velocity()
			v.X = vel.X
			v.Y = vel.Y
		}
		return true
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	var dead []ecs.Entity
	ps.entities.ForEach(func(e ecs.Entity, _ *bodyInfo) bool {
		if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			dead = append(dead, e)
		}
		return true
	})

	for _, e := range dead {
		info, _ := ps.entities.Get(e)
		ps.entities.Del(e)
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
	}
}
