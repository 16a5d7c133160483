package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	cases := []struct {
		name        string
		committed   string
		snap        Snapshot
		wantStaged  bool
		wantCand    string
		wantDeleted bool
	}{
		{"append", "ca", Snapshot{Letters: []rune{'t'}}, true, "cat", false},
		{"sorted_multi_key", "", Snapshot{Letters: []rune{'t', 'a', 'c'}}, true, "act", false},
		{"backspace", "cat", Snapshot{Backspace: true}, true, "ca", true},
		{"backspace_then_letter", "cat", Snapshot{Backspace: true, Letters: []rune{'r'}}, true, "car", false},
		{"backspace_on_empty", "", Snapshot{Backspace: true}, false, "", false},
		{"ignores_non_letters", "c", Snapshot{Letters: []rune{'1', 'A'}}, false, "c", false},
		{"nothing_pressed", "c", Snapshot{}, false, "c", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b Buffer
			b.Set(c.committed)

			assert.Equal(t, c.wantStaged, b.Stage(c.snap))
			cand, deleted, ok := b.Pending()
			assert.Equal(t, c.wantStaged, ok)
			assert.Equal(t, c.wantCand, cand)
			assert.Equal(t, c.wantDeleted, deleted)
			assert.Equal(t, c.committed, b.String(), "staging never commits")
		})
	}
}

func TestHeldBackspaceRepeats(t *testing.T) {
	var b Buffer
	b.Set("bottle")
	held := Snapshot{Backspace: true}
	for i := 0; i < 3; i++ {
		b.Stage(held)
		cand, _, _ := b.Pending()
		b.Set(cand)
	}
	assert.Equal(t, "bot", b.String())
}

func TestClearAllChord(t *testing.T) {
	assert.True(t, Snapshot{Ctrl: true, Backspace: true, BackspaceJustPressed: true}.ClearAll())
	assert.False(t, Snapshot{Ctrl: true, Backspace: true}.ClearAll(), "held chord clears once")
	assert.False(t, Snapshot{BackspaceJustPressed: true, Backspace: true}.ClearAll())
}

func TestClearDropsPending(t *testing.T) {
	var b Buffer
	b.Set("ca")
	b.Stage(Snapshot{Letters: []rune{'t'}})
	b.Clear()
	_, _, ok := b.Pending()
	assert.False(t, ok)
	assert.Empty(t, b.String())
}
