package patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemento_SaveAndRestore(t *testing.T) {
	// GIVEN a game with two checkpoints
	var buf bytes.Buffer
	game := NewGameState("Level 1 - Village")
	caretaker := NewCaretaker(&buf)

	caretaker.Add(game.Save())
	game.Set("Level 2 - Forest")
	caretaker.Add(game.Save())
	game.Set("Level 3 - Castle")

	assert.Equal(t, 2, caretaker.Count())
	assert.Equal(t, "Level 3 - Castle", game.State())

	// WHEN restoring the first checkpoint
	m, ok := caretaker.Get(0)
	assert.True(t, ok)
	game.Restore(m)

	// THEN the originator rewinds to the saved state
	assert.Equal(t, "Level 1 - Village", game.State())
}

func TestCaretaker_GetOutOfRange(t *testing.T) {
	caretaker := NewCaretaker(&bytes.Buffer{})
	_, ok := caretaker.Get(0)
	assert.False(t, ok)
	_, ok = caretaker.Get(-1)
	assert.False(t, ok)
}

func TestMemento_SnapshotIsImmutable(t *testing.T) {
	game := NewGameState("before")
	snapshot := game.Save()
	game.Set("after")
	assert.Equal(t, "before", snapshot.State(), "later mutations must not leak into the snapshot")
}
