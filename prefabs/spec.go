package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayAreaSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpawnSpec struct {
	Interval    float64      `yaml:"interval"`
	Height      float64      `yaml:"height"`
	Margin      float64      `yaml:"margin"`
	MinSpacing  float64      `yaml:"min_spacing"`
	MaxAttempts int          `yaml:"max_attempts"`
	PowerUps    PowerUpTable `yaml:"power_ups"`
}

// PowerUpTable holds relative spawn weights.
type PowerUpTable struct {
	None      int `yaml:"none"`
	Explosion int `yaml:"explosion"`
	Link      int `yaml:"link"`
}

func (t PowerUpTable) Total() int {
	return t.None + t.Explosion + t.Link
}

type DifficultySpec struct {
	Interval  float64 `yaml:"interval"`
	Decrement float64 `yaml:"decrement"`
	Floor     float64 `yaml:"floor"`
	Script    string  `yaml:"script"`
}

type DebrisSpec struct {
	MaxHorizontal float64 `yaml:"max_horizontal"`
	MaxVertical   float64 `yaml:"max_vertical"`
}

type BorderSpec struct {
	TileSize     float64 `yaml:"tile_size"`
	ColliderHalf float64 `yaml:"collider_half"`
}

type GameOverLineSpec struct {
	Y      float64 `yaml:"y"`
	Inset  float64 `yaml:"inset"`
	Height float64 `yaml:"height"`
}

type ExplosionSpec struct {
	Radius float64 `yaml:"radius"`
	Frames int     `yaml:"frames"`
}

type DuplicateSpec struct {
	Offset       float64 `yaml:"offset"`
	GravityScale float64 `yaml:"gravity_scale"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

// GameplaySpec is every tuning value of a round.
type GameplaySpec struct {
	Name         string           `yaml:"name"`
	PlayArea     PlayAreaSpec     `yaml:"play_area"`
	FallSpeed    float64          `yaml:"fall_speed"`
	ComboStep    float64          `yaml:"combo_step"`
	Spawn        SpawnSpec        `yaml:"spawn"`
	Difficulty   DifficultySpec   `yaml:"difficulty"`
	Debris       DebrisSpec       `yaml:"debris"`
	Borders      BorderSpec       `yaml:"borders"`
	GameOverLine GameOverLineSpec `yaml:"game_over_line"`
	Explosion    ExplosionSpec    `yaml:"explosion"`
	Duplicate    DuplicateSpec    `yaml:"duplicate"`
	Physics      PhysicsSpec      `yaml:"physics"`
}

// DefaultGameplaySpec mirrors the embedded gameplay.yaml.
func DefaultGameplaySpec() GameplaySpec {
	return GameplaySpec{
		Name:      "gameplay",
		PlayArea:  PlayAreaSpec{Width: 700, Height: 800},
		FallSpeed: 100,
		ComboStep: 0.1,
		Spawn: SpawnSpec{
			Interval:    2.0,
			Height:      800,
			Margin:      96,
			MinSpacing:  30,
			MaxAttempts: 32,
			PowerUps:    PowerUpTable{None: 17, Explosion: 2, Link: 1},
		},
		Difficulty: DifficultySpec{
			Interval:  10,
			Decrement: 0.2,
			Floor:     1.0,
		},
		Debris:       DebrisSpec{MaxHorizontal: 600, MaxVertical: 40},
		Borders:      BorderSpec{TileSize: 48, ColliderHalf: 32},
		GameOverLine: GameOverLineSpec{Y: 410, Inset: 85, Height: 10},
		Explosion:    ExplosionSpec{Radius: 50, Frames: 3},
		Duplicate:    DuplicateSpec{Offset: 10, GravityScale: 10},
		Physics:      PhysicsSpec{Gravity: -500, Iterations: 20, Friction: 0.7, Elasticity: 0.1},
	}
}

// withDefaults fills every zero field from DefaultGameplaySpec.
func (s GameplaySpec) withDefaults() GameplaySpec {
	d := DefaultGameplaySpec()
	orF := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}
	orI := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}

	if s.Name == "" {
		s.Name = d.Name
	}
	orF(&s.PlayArea.Width, d.PlayArea.Width)
	orF(&s.PlayArea.Height, d.PlayArea.Height)
	orF(&s.FallSpeed, d.FallSpeed)
	orF(&s.ComboStep, d.ComboStep)
	orF(&s.Spawn.Interval, d.Spawn.Interval)
	orF(&s.Spawn.Height, d.Spawn.Height)
	orF(&s.Spawn.Margin, d.Spawn.Margin)
	orF(&s.Spawn.MinSpacing, d.Spawn.MinSpacing)
	orI(&s.Spawn.MaxAttempts, d.Spawn.MaxAttempts)
	if s.Spawn.PowerUps.Total() <= 0 {
		s.Spawn.PowerUps = d.Spawn.PowerUps
	}
	orF(&s.Difficulty.Interval, d.Difficulty.Interval)
	orF(&s.Difficulty.Decrement, d.Difficulty.Decrement)
	orF(&s.Difficulty.Floor, d.Difficulty.Floor)
	orF(&s.Debris.MaxHorizontal, d.Debris.MaxHorizontal)
	orF(&s.Debris.MaxVertical, d.Debris.MaxVertical)
	orF(&s.Borders.TileSize, d.Borders.TileSize)
	orF(&s.Borders.ColliderHalf, d.Borders.ColliderHalf)
	if s.GameOverLine == (GameOverLineSpec{}) {
		s.GameOverLine = d.GameOverLine
	}
	orF(&s.GameOverLine.Height, d.GameOverLine.Height)
	orF(&s.Explosion.Radius, d.Explosion.Radius)
	orI(&s.Explosion.Frames, d.Explosion.Frames)
	orF(&s.Duplicate.Offset, d.Duplicate.Offset)
	orF(&s.Duplicate.GravityScale, d.Duplicate.GravityScale)
	if s.Physics.Gravity == 0 {
		s.Physics.Gravity = d.Physics.Gravity
	}
	orI(&s.Physics.Iterations, d.Physics.Iterations)
	if s.Physics.Friction < 0 {
		s.Physics.Friction = d.Physics.Friction
	}
	if s.Physics.Elasticity < 0 {
		s.Physics.Elasticity = d.Physics.Elasticity
	}
	return s
}

func LoadGameplaySpec() (GameplaySpec, error) {
	spec, err := LoadSpec[GameplaySpec]("gameplay.yaml")
	if err != nil {
		return GameplaySpec{}, err
	}
	return spec.withDefaults(), nil
}

type TrashKindSpec struct {
	Name       string  `yaml:"name"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Sprite     string  `yaml:"sprite"`
	Mass       float64 `yaml:"mass"`
}

type TrashSpec struct {
	Kinds []TrashKindSpec `yaml:"kinds"`
}

// Kind returns the entry for name, if listed.
func (s TrashSpec) Kind(name string) (TrashKindSpec, bool) {
	for _, k := range s.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return TrashKindSpec{}, false
}

func LoadTrashSpec() (TrashSpec, error) {
	return LoadSpec[TrashSpec]("trash.yaml")
}
