package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/milk9111/trashtype/common"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
	"github.com/milk9111/trashtype/wordbank"
)

// SpawnSystem drops a new piece of trash every time its interval elapses.
type SpawnSystem struct {
	session *session.Session
	bank    *wordbank.Bank
	rng     *rand.Rand

	timer    *common.Timer
	initial  float64
	kinds    map[component.TrashKind]prefabs.TrashKindSpec
	powerUps prefabs.PowerUpTable

	maxX        float64
	spawnY      float64
	fallSpeed   float64
	minSpacing  float64
	maxAttempts int

	lastX   float64
	hasLast bool
}

func NewSpawnSystem(sess *session.Session, bank *wordbank.Bank, rng *rand.Rand, spec prefabs.GameplaySpec, trash prefabs.TrashSpec) *SpawnSystem {
	kinds := make(map[component.TrashKind]prefabs.TrashKindSpec, len(trash.Kinds))
	for _, k := range trash.Kinds {
		kind, err := component.ParseTrashKind(k.Name)
		if err != nil {
			log.Printf("spawn: %v", err)
			continue
		}
		kinds[kind] = k
	}

	return &SpawnSystem{
		session:     sess,
		bank:        bank,
		rng:         rng,
		timer:       common.NewTimer(spec.Spawn.Interval),
		initial:     spec.Spawn.Interval,
		kinds:       kinds,
		powerUps:    spec.Spawn.PowerUps,
		maxX:        spec.PlayArea.Width/2 - spec.Spawn.Margin,
		spawnY:      spec.Spawn.Height,
		fallSpeed:   spec.FallSpeed,
		minSpacing:  spec.Spawn.MinSpacing,
		maxAttempts: spec.Spawn.MaxAttempts,
	}
}

// Interval is the current spawn period in seconds.
func (s *SpawnSystem) Interval() float64 {
	return s.timer.Duration()
}

// SetInterval changes the spawn period without losing timer progress.
func (s *SpawnSystem) SetInterval(seconds float64) {
	s.timer.SetDuration(seconds)
}

// Reset restores the initial interval for a new round.
func (s *SpawnSystem) Reset() {
	s.timer.SetDuration(s.initial)
	s.timer.Reset()
	s.hasLast = false
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || w == nil {
		return
	}
	if !s.timer.Tick(s.session.Delta) {
		return
	}
	if _, err := s.Spawn(w); err != nil {
		log.Printf("spawn: %v", err)
	}
}

// Spawn creates one piece of trash immediately.
func (s *SpawnSystem) Spawn(w *ecs.World) (ecs.Entity, error) {
	kind := component.TrashKinds[s.rng.IntN(len(component.TrashKinds))]
	params := entity.TrashParams{
		Kind:      kind,
		Word:      s.bank.RandomWord(s.rng),
		PowerUp:   s.pickPowerUp(),
		X:         s.pickX(),
		Y:         s.spawnY,
		VelocityY: -s.fallSpeed,
	}
	if k, ok := s.kinds[kind]; ok {
		params.HalfWidth = k.HalfWidth
		params.HalfHeight = k.HalfHeight
		params.Sprite = k.Sprite
		params.Mass = k.Mass
	}

	e, err := entity.NewTrash(w, params)
	if err != nil {
		return 0, err
	}
	s.lastX = params.X
	s.hasLast = true

	if s.session.Debug {
		log.Printf("spawn: %s %s %q power-up=%s x=%.0f", e, kind, params.Word, params.PowerUp, params.X)
	}
	return e, nil
}

func (s *SpawnSystem) pickPowerUp() component.PowerUp {
	total := s.powerUps.Total()
	if total <= 0 {
		return component.PowerUpNone
	}
	n := s.rng.IntN(total)
	switch {
	case n < s.powerUps.None:
		return component.PowerUpNone
	case n < s.powerUps.None+s.powerUps.Explosion:
		return component.PowerUpExplosion
	default:
		return component.PowerUpLink
	}
}

// pickX samples a position at least minSpacing away from the previous
// spawn. After maxAttempts misses it steps minSpacing off the previous
// position toward the centre.
func (s *SpawnSystem) pickX() float64 {
	if s.maxX <= 0 {
		return 0
	}
	var x float64
	for range max(s.maxAttempts, 1) {
		x = (s.rng.Float64()*2 - 1) * s.maxX
		if !s.hasLast || math.Abs(x-s.lastX) >= s.minSpacing {
			return x
		}
	}
	if s.lastX > 0 {
		return common.Clamp(s.lastX-s.minSpacing, -s.maxX, s.maxX)
	}
	return common.Clamp(s.lastX+s.minSpacing, -s.maxX, s.maxX)
}
