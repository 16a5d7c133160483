package component

import (
	"fmt"
	"strings"
)

// TrashKind is the physical variant of a piece of trash.
type TrashKind int

const (
	TrashBottle TrashKind = iota
	TrashPizza
	TrashBigBox
	TrashGlassBottle
	TrashNews
	TrashShampoo
	TrashSmallCan
	TrashSoda
	TrashSpray
)

// TrashKinds lists every kind in spawn-table order.
var TrashKinds = []TrashKind{
	TrashBottle,
	TrashPizza,
	TrashBigBox,
	TrashGlassBottle,
	TrashNews,
	TrashShampoo,
	TrashSmallCan,
	TrashSoda,
	TrashSpray,
}

var trashKindNames = map[TrashKind]string{
	TrashBottle:      "bottle",
	TrashPizza:       "pizza",
	TrashBigBox:      "big_box",
	TrashGlassBottle: "glass_bottle",
	TrashNews:        "news",
	TrashShampoo:     "shampoo",
	TrashSmallCan:    "small_can",
	TrashSoda:        "soda",
	TrashSpray:       "spray",
}

// defaultHalfExtents are the collider half sizes used when trash.yaml does
// not override them.
var defaultHalfExtents = map[TrashKind][2]float64{
	TrashBottle:      {15, 16},
	TrashPizza:       {32, 16},
	TrashBigBox:      {30, 30},
	TrashGlassBottle: {10, 22},
	TrashNews:        {24, 10},
	TrashShampoo:     {12, 20},
	TrashSmallCan:    {10, 12},
	TrashSoda:        {11, 16},
	TrashSpray:       {9, 20},
}

func (k TrashKind) String() string {
	if name, ok := trashKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("trash_kind(%d)", int(k))
}

// DefaultHalfExtents returns the built-in collider half size for k.
func (k TrashKind) DefaultHalfExtents() (float64, float64) {
	ext, ok := defaultHalfExtents[k]
	if !ok {
		return 16, 16
	}
	return ext[0], ext[1]
}

// ParseTrashKind maps a prefab name such as "glass_bottle" to its kind.
func ParseTrashKind(name string) (TrashKind, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for kind, n := range trashKindNames {
		if n == clean {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("component: unknown trash kind %q", name)
}

// PowerUp is the special behaviour a piece of trash triggers once typed.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	PowerUpExplosion
	PowerUpLink
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "none"
	case PowerUpExplosion:
		return "explosion"
	case PowerUpLink:
		return "link"
	default:
		return fmt.Sprintf("power_up(%d)", int(p))
	}
}

// Trash is a falling object. Its word lives on a TrashText child entity.
type Trash struct {
	Kind       TrashKind
	HalfWidth  float64
	HalfHeight float64
	PowerUp    PowerUp
	// Activated is set once, when the word is typed in full.
	Activated bool
	// Triggered is set when the power-up has fired on impact.
	Triggered bool
}

var TrashComponent = NewComponent[Trash]()

// TrashText holds the word attached to a trash entity.
type TrashText struct {
	Word string
	// Highlighted is the number of leading characters shown as typed.
	Highlighted int
}

var TrashTextComponent = NewComponent[TrashText]()

// TrashExplosion tags the short-lived blast sensor spawned by an exploding
// piece of trash.
type TrashExplosion struct {
	Radius float64
}

var TrashExplosionComponent = NewComponent[TrashExplosion]()
