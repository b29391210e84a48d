package core

// Sound names a fire-and-forget audio cue raised by the simulation.
type Sound int

const (
	SoundNone Sound = iota
	SoundHop
	SoundSquash
	SoundDrown
	SoundCollect
	SoundHorn
	SoundWin
	SoundGameOver
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundHop:
		return "hop"
	case SoundSquash:
		return "squash"
	case SoundDrown:
		return "drown"
	case SoundCollect:
		return "collect"
	case SoundHorn:
		return "horn"
	case SoundWin:
		return "win"
	case SoundGameOver:
		return "gameover"
	default:
		return "none"
	}
}
