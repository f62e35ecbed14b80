package patterns

import (
	"fmt"
	"io"
)

// Command encapsulates a request with its inverse.
type Command interface {
	Execute()
	Undo()
	Name() string
}

// Light is the receiver the commands act on.
type Light struct {
	out io.Writer
	on  bool
}

func NewLight(w io.Writer) *Light { return &Light{out: w} }

func (l *Light) TurnOn() {
	l.on = true
	fmt.Fprintln(l.out, "Light is now ON")
}

func (l *Light) TurnOff() {
	l.on = false
	fmt.Fprintln(l.out, "Light is now OFF")
}

// On reports the current switch position.
func (l *Light) On() bool { return l.on }

// TurnOnCommand switches the light on; undo switches it back off.
type TurnOnCommand struct {
	light *Light
}

func NewTurnOnCommand(light *Light) *TurnOnCommand { return &TurnOnCommand{light: light} }

func (c *TurnOnCommand) Execute()     { c.light.TurnOn() }
func (c *TurnOnCommand) Undo()        { c.light.TurnOff() }
func (c *TurnOnCommand) Name() string { return "Turn On" }

// TurnOffCommand switches the light off; undo switches it back on.
type TurnOffCommand struct {
	light *Light
}

func NewTurnOffCommand(light *Light) *TurnOffCommand { return &TurnOffCommand{light: light} }

func (c *TurnOffCommand) Execute()     { c.light.TurnOff() }
func (c *TurnOffCommand) Undo()        { c.light.TurnOn() }
func (c *TurnOffCommand) Name() string { return "Turn Off" }

// RemoteControl is the invoker: it queues commands and can replay or unwind
// them.
type RemoteControl struct {
	out      io.Writer
	commands []Command
}

func NewRemoteControl(w io.Writer) *RemoteControl { return &RemoteControl{out: w} }

func (r *RemoteControl) AddCommand(c Command) {
	fmt.Fprintf(r.out, "Added command: %s\n", c.Name())
	r.commands = append(r.commands, c)
}

// ExecuteAll runs the queued commands in insertion order.
func (r *RemoteControl) ExecuteAll() {
	for _, c := range r.commands {
		c.Execute()
	}
}

// UndoAll unwinds the queued commands in reverse order.
func (r *RemoteControl) UndoAll() {
	for i := len(r.commands) - 1; i >= 0; i-- {
		r.commands[i].Undo()
	}
}

// DemoCommand walks through queueing and undoing encapsulated requests.
func DemoCommand(w io.Writer) {
	banner(w, "📝 COMMAND PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern encapsulates requests as objects.")
	fmt.Fprintln(w, "Go benefit: small interfaces make undo/redo trivial to wire.")

	section(w, "Example 1: Undo/Redo operations")
	light := NewLight(w)

	remote := NewRemoteControl(w)
	remote.AddCommand(NewTurnOnCommand(light))
	remote.AddCommand(NewTurnOffCommand(light))

	fmt.Fprintln(w, "\nExecuting all commands:")
	remote.ExecuteAll()

	fmt.Fprintln(w, "\nUndoing all commands:")
	remote.UndoAll()

	points(w,
		"Requests become first-class values",
		"Invoker is parameterized with arbitrary commands",
		"Undo support via the inverse operation",
		"Commands can be queued, logged, or replayed",
	)
}
