package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Speaker mixes cues onto the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New opens the audio device. A disabled config yields Nop; on device
// failure the error is returned together with Nop so callers can log and go on.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return Nop{}, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return Nop{}, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{
		mixer:       &beep.Mixer{},
		volume:      cfg.Volume,
		initialized: true,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(snd core.Sound) {
	st := Effect(snd, s.volume, sampleRate)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences pending cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
