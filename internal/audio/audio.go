// Package audio turns simulation sound cues into synthesized beeps.
package audio

import "github.com/vovakirdan/tui-frogger/internal/core"

// Player plays sound cues without blocking the caller.
type Player interface {
	Play(s core.Sound)
	Close()
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Sound) {}

// Close does nothing.
func (Nop) Close() {}
