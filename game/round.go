// Package game runs rounds: it assembles the gameplay systems in tick order,
// builds and tears down the play area and applies state transitions.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/ecs/system"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
	"github.com/milk9111/trashtype/wordbank"
)

type Options struct {
	Spec  prefabs.GameplaySpec
	Trash prefabs.TrashSpec
	Bank  *wordbank.Bank
	Input system.InputSource
	// Seed drives every random choice of the round.
	Seed  uint64
	Debug bool
	// DifficultyScript optionally replaces the fixed ramp step.
	DifficultyScript *tengo.Compiled
}

// Round owns the world and the systems of the game. Systems run in this
// order every tick: input, matching, collision resolution, TTL, velocity
// clamp, spawning, difficulty, physics, highlight.
type Round struct {
	World   *ecs.World
	Session *session.Session

	opts      Options
	scheduler *ecs.Scheduler

	match      *system.MatchSystem
	spawn      *system.SpawnSystem
	difficulty *system.DifficultySystem
	physics    *system.PhysicsSystem

	pendingSpec   *prefabs.GameplaySpec
	pendingScript *tengo.Compiled
}

func NewRound(opts Options) (*Round, error) {
	if opts.Bank == nil {
		return nil, errors.New("game: new round: no word bank")
	}
	if opts.Input == nil {
		return nil, errors.New("game: new round: no input source")
	}

	r := &Round{
		World:   ecs.NewWorld(),
		Session: session.New(opts.Spec.ComboStep),
		opts:    opts,
	}
	r.Session.Debug = opts.Debug
	r.buildSystems()

	if _, err := entity.NewCamera(r.World); err != nil {
		return nil, fmt.Errorf("game: new round: %w", err)
	}
	return r, nil
}

func (r *Round) buildSystems() {
	spec := r.opts.Spec
	rng := rand.New(rand.NewPCG(r.opts.Seed, r.opts.Seed^0x9e3779b97f4a7c15))

	r.Session.Score.SetStep(spec.ComboStep)
	r.match = system.NewMatchSystem(r.Session)
	r.spawn = system.NewSpawnSystem(r.Session, r.opts.Bank, rng, spec, r.opts.Trash)
	r.difficulty = system.NewDifficultySystem(r.Session, r.spawn, spec)
	r.difficulty.SetScript(r.opts.DifficultyScript)
	r.physics = system.NewPhysicsSystem(r.Session, spec)

	r.scheduler = ecs.NewScheduler(
		system.NewInputSystem(r.Session, r.opts.Input),
		r.match,
		system.NewCollisionSystem(r.Session, spec),
		system.NewTTLSystem(r.Session),
		system.NewVelocityClampSystem(spec),
		r.spawn,
		r.difficulty,
		r.physics,
		system.NewHighlightSystem(r.Session),
	)
}

// Enter starts a round: timers, buffer and score are reset and the play
// area is built.
func (r *Round) Enter() error {
	if r.pendingSpec != nil || r.pendingScript != nil {
		if r.pendingSpec != nil {
			r.opts.Spec = *r.pendingSpec
		}
		if r.pendingScript != nil {
			r.opts.DifficultyScript = r.pendingScript
		}
		r.pendingSpec, r.pendingScript = nil, nil
		r.buildSystems()
	}

	r.Session.Reset()
	r.Session.SetState(session.StatePlaying)
	r.match.Reset()
	r.spawn.Reset()
	r.difficulty.Reset()
	r.physics.Reset()
	r.World.Collisions().Clear()

	if err := entity.LoadLevelToWorld(r.World, r.opts.Spec); err != nil {
		return fmt.Errorf("game: enter: %w", err)
	}
	log.Printf("game: round started")
	return nil
}

// Exit tears the round down, keeping persistent entities and the game-over
// marker.
func (r *Round) Exit() {
	for _, e := range r.World.Entities() {
		if !r.World.IsAlive(e) {
			continue
		}
		if ecs.Has(r.World, e, component.PersistentComponent.Kind()) || ecs.Has(r.World, e, component.GameOverComponent.Kind()) {
			continue
		}
		r.World.DestroyRecursive(e)
	}
	r.World.Collisions().Clear()
}

// Update runs one tick of dt seconds. Nothing runs outside of Playing.
func (r *Round) Update(dt float64) {
	if r.Session.State() != session.StatePlaying {
		return
	}
	r.Session.Delta = dt
	r.scheduler.Update(r.World)

	if next, ok := r.Session.TakeRequest(); ok && next != r.Session.State() {
		r.transition(next)
	}
}

func (r *Round) transition(next session.State) {
	if next == session.StateGameOver {
		r.Exit()
	}
	r.Session.SetState(next)
	log.Printf("game: state %s", next)
}

// Restart leaves the game-over screen, or abandons the current round, and
// starts a new one.
func (r *Round) Restart() error {
	r.Exit()
	for _, e := range r.World.Query(component.GameOverComponent.Kind()) {
		r.World.DestroyRecursive(e)
	}
	return r.Enter()
}

// GameOver returns the final score once the round is lost.
func (r *Round) GameOver() (uint64, bool) {
	e, ok := r.World.First(component.GameOverComponent.Kind())
	if !ok {
		return 0, false
	}
	marker, ok := ecs.Get(r.World, e, component.GameOverComponent.Kind())
	if !ok {
		return 0, false
	}
	return marker.Score, true
}

// ReloadSpec stages new tuning values for the next round start.
func (r *Round) ReloadSpec(spec prefabs.GameplaySpec) {
	r.pendingSpec = &spec
}

// ReloadScript stages a recompiled difficulty script for the next round
// start.
func (r *Round) ReloadScript(compiled *tengo.Compiled) {
	if compiled != nil {
		r.pendingScript = compiled
	}
}

// SpawnInterval is the current spawn period in seconds.
func (r *Round) SpawnInterval() float64 {
	return r.spawn.Interval()
}

func (r *Round) Spec() prefabs.GameplaySpec {
	return r.opts.Spec
}

// TickOrder lists the gameplay systems in the order they run each tick.
func (r *Round) TickOrder() []string {
	return r.scheduler.Order()
}

// Space exposes the physics space for debug drawing.
func (r *Round) Space() *cp.Space {
	return r.physics.Space()
}
