// Package typing holds the player's typing buffer and turns per-tick key
// snapshots into buffer candidates.
package typing

import "slices"

// Snapshot is the keyboard state for one tick, restricted to the 26 letters,
// Backspace and the Ctrl modifier.
type Snapshot struct {
	// Letters newly pressed this tick, in any order.
	Letters []rune
	// Backspace is true every tick the key is reported as pressed, so a held
	// key repeats.
	Backspace bool
	// BackspaceJustPressed is true only on the first tick of a press.
	BackspaceJustPressed bool
	Ctrl                 bool
}

// ClearAll reports a ctrl+backspace chord.
func (s Snapshot) ClearAll() bool {
	return s.Ctrl && s.BackspaceJustPressed
}

// Empty reports whether the snapshot carries no buffer edit.
func (s Snapshot) Empty() bool {
	return len(s.Letters) == 0 && !s.Backspace && !s.ClearAll()
}

// Buffer is the committed "currently typed word" plus the candidate staged
// from this tick's keys. The candidate only becomes the committed value once
// the matcher accepts it.
type Buffer struct {
	committed string

	pending    string
	hasPending bool
	deleted    bool
}

func (b *Buffer) String() string {
	return b.committed
}

func (b *Buffer) Len() int {
	return len(b.committed)
}

// Set commits v and drops any staged candidate.
func (b *Buffer) Set(v string) {
	b.committed = v
	b.dropPending()
}

// Clear empties the committed buffer and drops any staged candidate.
func (b *Buffer) Clear() {
	b.Set("")
}

// Stage builds a candidate from the committed value: one character is popped
// if backspace is down, then the new letters are appended in key order.
// Letters outside a..z are ignored. Stage reports whether a candidate was
// staged.
func (b *Buffer) Stage(s Snapshot) bool {
	b.dropPending()
	if s.Empty() {
		return false
	}

	word := []byte(b.committed)
	deleted := false
	if s.Backspace && len(word) > 0 {
		word = word[:len(word)-1]
		deleted = true
	}

	letters := slices.Clone(s.Letters)
	slices.Sort(letters)
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			continue
		}
		word = append(word, byte(r))
	}

	candidate := string(word)
	if candidate == b.committed {
		return false
	}
	b.pending = candidate
	b.hasPending = true
	b.deleted = deleted && len(letters) == 0
	return true
}

// Pending returns the staged candidate and whether the edit was a pure
// deletion.
func (b *Buffer) Pending() (candidate string, deleted bool, ok bool) {
	if !b.hasPending {
		return b.committed, false, false
	}
	return b.pending, b.deleted, true
}

func (b *Buffer) dropPending() {
	b.pending = ""
	b.hasPending = false
	b.deleted = false
}
