package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/trashtype/common"
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
)

// SpawnInterval is the spawn cadence the difficulty ramp shortens.
type SpawnInterval interface {
	Interval() float64
	SetInterval(seconds float64)
}

// DifficultySystem shortens the spawn interval by a fixed step on its own
// timer until the interval reaches the floor. It never slows spawning down
// within a round.
type DifficultySystem struct {
	session *session.Session
	target  SpawnInterval

	timer     *common.Timer
	decrement float64
	floor     float64
	steps     int

	script *tengo.Compiled
}

func NewDifficultySystem(sess *session.Session, target SpawnInterval, spec prefabs.GameplaySpec) *DifficultySystem {
	return &DifficultySystem{
		session:   sess,
		target:    target,
		timer:     common.NewTimer(spec.Difficulty.Interval),
		decrement: spec.Difficulty.Decrement,
		floor:     spec.Difficulty.Floor,
	}
}

// LoadDifficultyScript compiles a ramp script. The script reads interval,
// decrement, floor and step and assigns next.
func LoadDifficultyScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("interval", 0.0)
	_ = script.Add("decrement", 0.0)
	_ = script.Add("floor", 0.0)
	_ = script.Add("step", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty: compile script: %w", err)
	}
	return compiled, nil
}

// SetScript installs a compiled ramp script; nil restores the fixed step.
func (s *DifficultySystem) SetScript(compiled *tengo.Compiled) {
	s.script = compiled
}

// Reset restarts the ramp for a new round.
func (s *DifficultySystem) Reset() {
	s.timer.Reset()
	s.steps = 0
}

func (s *DifficultySystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || s.target == nil {
		return
	}
	if !s.timer.Tick(s.session.Delta) {
		return
	}

	current := s.target.Interval()
	if current <= s.floor {
		return
	}

	s.steps++
	next := current - s.decrement
	if s.script != nil {
		scripted, err := s.runScript(current)
		if err != nil {
			log.Printf("difficulty: %v", err)
		} else {
			next = scripted
		}
	}

	// monotonic and floored whatever the script says
	next = min(next, current)
	next = max(next, s.floor)
	s.target.SetInterval(next)

	if s.session.Debug {
		log.Printf("difficulty: spawn interval %.2fs -> %.2fs", current, next)
	}
}

func (s *DifficultySystem) runScript(current float64) (float64, error) {
	for name, value := range map[string]any{
		"interval":  current,
		"decrement": s.decrement,
		"floor":     s.floor,
		"step":      s.steps,
	} {
		if err := s.script.Set(name, value); err != nil {
			return 0, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := s.script.Run(); err != nil {
		return 0, fmt.Errorf("run script: %w", err)
	}
	if !s.script.IsDefined("next") {
		return 0, fmt.Errorf("script did not set next")
	}
	return s.script.Get("next").Float(), nil
}
