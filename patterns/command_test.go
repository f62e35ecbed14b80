package patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteControl_ExecuteAndUndoOrdering(t *testing.T) {
	// GIVEN a remote with on-then-off queued
	var buf bytes.Buffer
	light := NewLight(&buf)
	remote := NewRemoteControl(&buf)
	remote.AddCommand(NewTurnOnCommand(light))
	remote.AddCommand(NewTurnOffCommand(light))

	// WHEN executing all commands in order
	remote.ExecuteAll()
	// THEN the last command wins: light off
	assert.False(t, light.On())

	// WHEN undoing all commands in reverse
	remote.UndoAll()
	// THEN the inverse of the first command runs last: light off again
	assert.False(t, light.On())
}

func TestCommands_ExecuteAndUndoAreInverses(t *testing.T) {
	light := NewLight(&bytes.Buffer{})

	on := NewTurnOnCommand(light)
	on.Execute()
	assert.True(t, light.On())
	on.Undo()
	assert.False(t, light.On())

	off := NewTurnOffCommand(light)
	off.Execute()
	assert.False(t, light.On())
	off.Undo()
	assert.True(t, light.On())
}

func TestCommands_Names(t *testing.T) {
	light := NewLight(&bytes.Buffer{})
	assert.Equal(t, "Turn On", NewTurnOnCommand(light).Name())
	assert.Equal(t, "Turn Off", NewTurnOffCommand(light).Name())
}
