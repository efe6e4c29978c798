package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	var held Commands
	assert.False(t, held.Any())

	held.Press(Forward)
	held.Press(TurnLeft)
	assert.True(t, held.Has(Forward))
	assert.True(t, held.Has(TurnLeft))
	assert.False(t, held.Has(Backward))

	held.Release(Forward)
	assert.False(t, held.Has(Forward))
	assert.True(t, held.Any())

	held.Set(TurnRight, true)
	held.Set(TurnLeft, false)
	assert.True(t, held.Has(TurnRight))
	assert.False(t, held.Has(TurnLeft))

	held.Clear()
	assert.False(t, held.Any())
}
