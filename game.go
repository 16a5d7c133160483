package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/trashtype/ecs/render"
	"github.com/milk9111/trashtype/ecs/system"
	"github.com/milk9111/trashtype/game"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 700
	screenHeight = 800
	tps          = 60
)

type GameOptions struct {
	Words []byte
	Seed  uint64
	Debug bool
	Watch bool
}

type Game struct {
	round   *game.Round
	input   *keyboardInput
	watcher *prefabs.Watcher
	debug   bool
	face    ebtext.Face

	// gameOverUI is built when a round is lost and dropped on restart.
	gameOverUI *ebitenui.UI
	restart    bool
}

func NewGame(opts GameOptions) (*Game, error) {
	roundOpts, err := game.LoadOptions(opts.Words)
	if err != nil {
		return nil, err
	}

	input := &keyboardInput{}
	roundOpts.Input = input
	roundOpts.Seed = opts.Seed
	roundOpts.Debug = opts.Debug

	round, err := game.NewRound(roundOpts)
	if err != nil {
		return nil, err
	}
	if err := round.Enter(); err != nil {
		return nil, err
	}

	g := &Game{
		round: round,
		input: input,
		debug: opts.Debug,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if specs, scripts := g.watcher.Changed(); specs || scripts {
		g.reload(specs, scripts)
	}

	switch g.round.Session.State() {
	case session.StatePlaying:
		g.round.Update(1.0 / tps)
		for _, evt := range g.round.Session.DrainPowerUps() {
			if g.debug {
				log.Printf("power-up: %s at (%.0f, %.0f)", evt.Kind, evt.X, evt.Y)
			}
		}
	case session.StateGameOver:
		if g.gameOverUI == nil {
			score, _ := g.round.GameOver()
			g.gameOverUI = NewGameOverUI(g, score)
		}
		g.gameOverUI.Update()
		if g.restart {
			g.restart = false
			g.gameOverUI = nil
			if err := g.round.Restart(); err != nil {
				return fmt.Errorf("restart: %w", err)
			}
		}
	}
	return nil
}

// reload stages edited tuning files; they apply when the next round starts.
func (g *Game) reload(specs, scripts bool) {
	spec := g.round.Spec()
	if specs {
		loaded, err := prefabs.LoadGameplaySpec()
		if err != nil {
			log.Printf("watch: %v", err)
			return
		}
		spec = loaded
		g.round.ReloadSpec(spec)
		log.Printf("watch: gameplay.yaml reloaded")
	}
	if (scripts || specs) && spec.Difficulty.Script != "" {
		src, err := prefabs.LoadScript(spec.Difficulty.Script)
		if err != nil {
			log.Printf("watch: %v", err)
			return
		}
		compiled, err := system.LoadDifficultyScript(src)
		if err != nil {
			log.Printf("watch: %v", err)
			return
		}
		g.round.ReloadScript(compiled)
		log.Printf("watch: %s reloaded", spec.Difficulty.Script)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawWorld(screen, g.round.World, g.face, screenWidth, screenHeight)
	if g.debug {
		render.DrawPhysicsDebug(g.round.Space(), g.round.World, screen, screenWidth, screenHeight)
		render.DrawTrashDebug(g.round.World, screen)
	}
	drawHUD(screen, g.round.Session, g.face)

	if g.gameOverUI != nil {
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
