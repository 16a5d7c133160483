// Package audio plays the short synthesized cues used by the terminal host.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound effect.
type Cue int

const (
	CueMatch Cue = iota
	CueExplosion
	CueLink
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueMatch:
		return "match"
	case CueExplosion:
		return "explosion"
	case CueLink:
		return "link"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueMatch:     {{freq: 880, dur: 50 * time.Millisecond}},
	CueExplosion: {{freq: 110, dur: 80 * time.Millisecond}, {freq: 82, dur: 120 * time.Millisecond}},
	CueLink:      {{freq: 660, dur: 40 * time.Millisecond}, {freq: 990, dur: 60 * time.Millisecond}},
	CueGameOver:  {{freq: 392, dur: 150 * time.Millisecond}, {freq: 330, dur: 150 * time.Millisecond}, {freq: 262, dur: 300 * time.Millisecond}},
}

// Streamer builds a fresh streamer for c, or nil for an unknown cue.
func Streamer(c Cue) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// Duration is the total length of c.
func Duration(c Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.dur
	}
	return total
}
