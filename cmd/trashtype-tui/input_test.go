package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestTermInputLetters(t *testing.T) {
	in := &termInput{}
	require.True(t, in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)))
	require.True(t, in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'I', tcell.ModShift)))
	require.False(t, in.HandleKey(tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone)))

	snap := in.Snapshot()
	require.Equal(t, []rune{'k', 'i'}, snap.Letters)
	require.False(t, snap.Backspace)
	require.False(t, snap.ClearAll())

	require.True(t, in.Snapshot().Empty())
}

func TestTermInputBackspace(t *testing.T) {
	in := &termInput{}
	in.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))

	snap := in.Snapshot()
	require.True(t, snap.Backspace)
	require.True(t, snap.BackspaceJustPressed)
	require.False(t, snap.ClearAll())
}

func TestTermInputClearAll(t *testing.T) {
	cases := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModCtrl),
	}
	for _, ev := range cases {
		in := &termInput{}
		require.True(t, in.HandleKey(ev))
		require.True(t, in.Snapshot().ClearAll())
	}
}

func TestTermInputReset(t *testing.T) {
	in := &termInput{}
	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	in.Reset()
	require.True(t, in.Snapshot().Empty())
}
