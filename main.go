package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider outlines")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	wordsPath := flag.String("words", "", "word list file, one word per line (defaults to the embedded list)")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml at the next round when they change")
	flag.Parse()

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

	game, err := NewGame(GameOptions{
		Words: words,
		Seed:  *seed,
		Debug: *debug,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("trashtype")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
