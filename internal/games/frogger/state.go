package frogger

// Status is the phase of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Status messages
const (
	MessageWin      = "YOU WIN!"
	MessageGameOver = "GAME OVER!"
	MessagePaused   = "PAUSED"
)

// Score awards
const (
	PointsPerRow   = 10
	PointsPerFrog  = 100
	PointsWinBonus = 1000
)

// GameState holds the flags and counters of a round.
type GameState struct {
	Status         Status
	Lives          int
	FrogsCollected int
	Score          int
	Message        string
	Paused         bool
}

// NewGameState returns the state at the start of a round.
func NewGameState(lives int) GameState {
	return GameState{Status: StatusPlaying, Lives: lives}
}

// Terminal reports whether the round has ended.
func (s *GameState) Terminal() bool {
	return s.Status != StatusPlaying
}

// Win ends the round in victory.
func (s *GameState) Win() {
	if s.Terminal() {
		return
	}
	s.Status = StatusWon
	s.Score += PointsWinBonus
	s.Message = MessageWin
	s.Paused = false
}

// Lose ends the round in defeat.
func (s *GameState) Lose() {
	if s.Terminal() {
		return
	}
	s.Status = StatusLost
	s.Message = MessageGameOver
	s.Paused = false
}

// LoseLife takes one life and reports whether the round is over.
func (s *GameState) LoseLife() bool {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.Lose()
		return true
	}
	return false
}

// TogglePause flips the pause flag while playing.
func (s *GameState) TogglePause() {
	if s.Terminal() {
		return
	}
	s.Paused = !s.Paused
	if s.Paused {
		s.Message = MessagePaused
	} else {
		s.Message = ""
	}
}
