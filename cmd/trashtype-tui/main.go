// Command trashtype-tui plays trashtype in a terminal.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/trashtype/audio"
	"github.com/milk9111/trashtype/game"
	"github.com/milk9111/trashtype/session"
)

const tickRate = 60

func main() {
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	wordsPath := flag.String("words", "", "word list file, one word per line (defaults to the embedded list)")
	mute := flag.Bool("mute", false, "disable sound cues")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The terminal owns stdout, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("main: open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var words []byte
	if *wordsPath != "" {
		data, err := os.ReadFile(*wordsPath)
		if err != nil {
			log.Fatalf("main: read words: %v", err)
		}
		words = data
	}

	opts, err := game.LoadOptions(words)
	if err != nil {
		log.Fatal(err)
	}
	input := &termInput{}
	opts.Input = input
	opts.Seed = *seed
	opts.Debug = *logPath != ""

	round, err := game.NewRound(opts)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	player := audio.NewPlayer()
	player.Muted = *mute
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("main: %v", err)
		}
	}
	defer player.Close()

	if err := run(screen, round, input, player); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, round *game.Round, input *termInput, player *audio.Player) error {
	if err := round.Enter(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	area := round.Spec().PlayArea
	lastScore := uint64(0)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if round.Session.State() == session.StateGameOver {
					if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
						input.Reset()
						if err := round.Restart(); err != nil {
							return err
						}
						area = round.Spec().PlayArea
						lastScore = 0
					}
					continue
				}
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if round.Session.State() == session.StatePlaying {
				round.Update(1.0 / tickRate)
				for _, evt := range round.Session.DrainPowerUps() {
					switch evt.Kind {
					case session.PowerUpExploded:
						player.Play(audio.CueExplosion)
					case session.PowerUpDestroyLinked:
						player.Play(audio.CueLink)
					}
				}
				if score := round.Session.Score.Score(); score > lastScore {
					player.Play(audio.CueMatch)
					lastScore = score
				}
				if round.Session.State() == session.StateGameOver {
					player.Play(audio.CueGameOver)
				}
			}
			draw(screen, round.World, round.Session, area.Width, area.Height, round.Session.State() == session.StateGameOver)
		}
	}
}
