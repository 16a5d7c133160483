package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/milk9111/trashtype/assets"
	"github.com/milk9111/trashtype/ecs/system"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/wordbank"
)

// LoadOptions reads the tuning specs, the word bank and the difficulty
// script. A nil corpus selects the embedded word list. Hosts still set
// Input, Seed and Debug.
func LoadOptions(corpus []byte) (Options, error) {
	spec, err := prefabs.LoadGameplaySpec()
	if err != nil {
		return Options{}, fmt.Errorf("game: load options: %w", err)
	}
	trash, err := prefabs.LoadTrashSpec()
	if err != nil {
		return Options{}, fmt.Errorf("game: load options: %w", err)
	}

	if corpus == nil {
		corpus, err = assets.Words()
		if err != nil {
			return Options{}, fmt.Errorf("game: load options: read words: %w", err)
		}
	}
	bank, err := wordbank.Load(bytes.NewReader(corpus))
	if err != nil {
		return Options{}, fmt.Errorf("game: load options: %w", err)
	}

	opts := Options{Spec: spec, Trash: trash, Bank: bank}
	if spec.Difficulty.Script != "" {
		src, err := prefabs.LoadScript(spec.Difficulty.Script)
		if err != nil {
			return Options{}, fmt.Errorf("game: load options: %w", err)
		}
		compiled, err := system.LoadDifficultyScript(src)
		if err != nil {
			// the fixed step is used instead
			log.Printf("game: %v", err)
		} else {
			opts.DifficultyScript = compiled
		}
	}
	return opts, nil
}
