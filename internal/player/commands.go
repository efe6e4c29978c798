package player

// Command is one directional input the player can hold.
type Command uint8

const (
	TurnLeft Command = 1 << iota
	TurnRight
	Forward
	Backward
)

// Commands is the set of inputs held during the current frame. The front
// end fills it from device state each frame.
type Commands uint8

// Press adds c to the set.
func (s *Commands) Press(c Command) { *s |= Commands(c) }

// Release removes c from the set.
func (s *Commands) Release(c Command) { *s &^= Commands(c) }

// Set presses or releases c.
func (s *Commands) Set(c Command, held bool) {
	if held {
		s.Press(c)
	} else {
		s.Release(c)
	}
}

// Has reports whether c is held.
func (s Commands) Has(c Command) bool { return s&Commands(c) != 0 }

// Clear releases everything.
func (s *Commands) Clear() { *s = 0 }

// Any reports whether at least one command is held.
func (s Commands) Any() bool { return s != 0 }
