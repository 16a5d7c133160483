package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStateIsTakenOnce(t *testing.T) {
	s := New(0.1)
	require.Equal(t, StatePlaying, s.State())

	_, ok := s.TakeRequest()
	require.False(t, ok)

	s.RequestState(StateGameOver)
	next, ok := s.TakeRequest()
	require.True(t, ok)
	assert.Equal(t, StateGameOver, next)

	_, ok = s.TakeRequest()
	assert.False(t, ok)
	assert.Equal(t, StatePlaying, s.State(), "taking a request does not apply it")
}

func TestDrainPowerUps(t *testing.T) {
	s := New(0.1)
	s.PushPowerUp(PowerUpEvent{Kind: PowerUpExploded, X: 1, Y: 2})
	s.PushPowerUp(PowerUpEvent{Kind: PowerUpDestroyLinked})

	events := s.DrainPowerUps()
	require.Len(t, events, 2)
	assert.Equal(t, PowerUpExploded, events[0].Kind)
	assert.Empty(t, s.DrainPowerUps())
}

func TestResetClearsRound(t *testing.T) {
	s := New(0.1)
	s.Buffer.Set("kiwi")
	s.Score.Hit()
	s.Score.Award(4)
	s.PushPowerUp(PowerUpEvent{})
	s.RequestState(StateGameOver)

	s.Reset()

	assert.Equal(t, "", s.Buffer.String())
	assert.Zero(t, s.Score.Score())
	assert.Equal(t, uint32(1), s.Score.Modifier())
	assert.Empty(t, s.DrainPowerUps())
	_, ok := s.TakeRequest()
	assert.False(t, ok)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "exploded", PowerUpExploded.String())
	assert.Equal(t, "destroy_linked", PowerUpDestroyLinked.String())
}
