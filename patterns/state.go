package patterns

import (
	"fmt"
	"io"
)

// Phase labels the workflow's three states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseProcessing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhaseProcessing:
		return "Processing"
	default:
		return "Unknown"
	}
}

// Workflow cycles Idle → Active → Processing → Idle on each request.
type Workflow struct {
	out   io.Writer
	phase Phase
}

func NewWorkflow(w io.Writer) *Workflow { return &Workflow{out: w, phase: PhaseIdle} }

// Phase reports the current phase.
func (f *Workflow) Phase() Phase { return f.phase }

// Request advances the workflow one phase and returns the transition taken.
func (f *Workflow) Request() string {
	from := f.phase
	switch f.phase {
	case PhaseIdle:
		f.phase = PhaseActive
	case PhaseActive:
		f.phase = PhaseProcessing
	case PhaseProcessing:
		f.phase = PhaseIdle
	}

	fmt.Fprintf(f.out, "Current state: %s\n", from)
	fmt.Fprintf(f.out, "Transitioning to %s...\n", f.phase)
	return fmt.Sprintf("%s → %s", from, f.phase)
}

// DemoState walks through behavior that changes with internal state.
func DemoState(w io.Writer) {
	banner(w, "🔄 STATE PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern allows object behavior to change with state.")
	fmt.Fprintln(w, "Go benefit: a typed enum with exhaustive switch transitions.")

	section(w, "Example 1: Simple state machine")
	workflow := NewWorkflow(w)

	for i := 1; i <= 4; i++ {
		fmt.Fprintf(w, "\nRequest %d:\n", i)
		fmt.Fprintln(w, workflow.Request())
	}

	points(w,
		"Behavior depends on internal state",
		"Transitions encapsulated in one method",
		"Avoids sprawling if/else chains",
		"Use case: game entities, workflow engines",
	)
}
