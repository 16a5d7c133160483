package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	limit := sampleRate.N(10 * time.Second)
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestStreamerLengthMatchesDuration(t *testing.T) {
	for _, c := range []Cue{CueMatch, CueExplosion, CueLink, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			s := Streamer(c)
			require.NotNil(t, s)

			want := 0
			for _, n := range cueNotes[c] {
				want += sampleRate.N(n.dur)
			}
			require.Equal(t, want, drain(s))
			require.Greater(t, Duration(c), time.Duration(0))
		})
	}
}

func TestUnknownCueIsSilent(t *testing.T) {
	require.Nil(t, Streamer(Cue(99)))
	require.Zero(t, Duration(Cue(99)))
	require.Equal(t, "unknown", Cue(99).String())
}

func TestPlayerWithoutSpeakerIsNoop(t *testing.T) {
	p := NewPlayer()
	require.NotPanics(t, func() {
		p.Play(CueMatch)
		p.Close()
	})
}
