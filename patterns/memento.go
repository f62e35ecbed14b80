package patterns

import (
	"fmt"
	"io"
)

// GameMemento is an opaque snapshot of the originator's state.
type GameMemento struct {
	state string
}

// State exposes the saved value for restoration.
func (m GameMemento) State() string { return m.state }

// GameState is the originator whose progress gets checkpointed.
type GameState struct {
	state string
}

func NewGameState(state string) *GameState { return &GameState{state: state} }

func (g *GameState) Set(state string) { g.state = state }
func (g *GameState) State() string    { return g.state }

// Save captures the current state into a memento.
func (g *GameState) Save() GameMemento { return GameMemento{state: g.state} }

// Restore rewinds the originator to a saved snapshot.
func (g *GameState) Restore(m GameMemento) { g.state = m.state }

// Caretaker stores mementos without looking inside them.
type Caretaker struct {
	out      io.Writer
	mementos []GameMemento
}

func NewCaretaker(w io.Writer) *Caretaker { return &Caretaker{out: w} }

func (c *Caretaker) Add(m GameMemento) {
	fmt.Fprintln(c.out, "📸 Save point created")
	c.mementos = append(c.mementos, m)
}

// Get returns the memento at index, oldest first.
func (c *Caretaker) Get(index int) (GameMemento, bool) {
	if index < 0 || index >= len(c.mementos) {
		return GameMemento{}, false
	}
	return c.mementos[index], true
}

// Count reports how many save points exist.
func (c *Caretaker) Count() int { return len(c.mementos) }

// DemoMemento walks through capturing and restoring state.
func DemoMemento(w io.Writer) {
	banner(w, "💾 MEMENTO PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern captures and restores object state.")
	fmt.Fprintln(w, "Go benefit: value-type snapshots copy cleanly by design.")

	section(w, "Example 1: Game save/restore system")
	game := NewGameState("Level 1 - Village")
	caretaker := NewCaretaker(w)

	fmt.Fprintf(w, "Initial state: %s\n", game.State())
	caretaker.Add(game.Save())

	game.Set("Level 2 - Forest")
	fmt.Fprintf(w, "New state: %s\n", game.State())
	caretaker.Add(game.Save())

	game.Set("Level 3 - Castle")
	fmt.Fprintf(w, "New state: %s\n", game.State())

	fmt.Fprintln(w, "\nRestoring from checkpoint 1:")
	if m, ok := caretaker.Get(0); ok {
		game.Restore(m)
		fmt.Fprintf(w, "Restored state: %s\n", game.State())
	}

	points(w,
		"Capture state without breaking encapsulation",
		"Caretaker stores snapshots it cannot modify",
		"Undo and rollback come for free",
		"Use case: game saves, transaction rollback",
	)
}
