package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 // #nosec G404 -- noise timbre, not security
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped note with short attack and release
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

func hopSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(523.25, 30*time.Millisecond, WaveSquare, rate),
		tone(783.99, 40*time.Millisecond, WaveSquare, rate),
	)
}

func squashSound(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate), 0.6),
		newVolume(tone(90, d, WaveSaw, rate), 0.5),
	)
}

func drownSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(600, 90*time.Millisecond, WaveSine, rate),
		tone(420, 90*time.Millisecond, WaveSine, rate),
		tone(260, 160*time.Millisecond, WaveSine, rate),
	)
}

func collectSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(880, d, WaveSine, rate), d, 5*time.Millisecond, 280*time.Millisecond, rate), 0.7),
		newVolume(NewEnvelope(NewOscillator(1760, d, WaveSine, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate), 0.3),
	)
}

func hornSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return beep.Mix(
		newVolume(tone(349.23, d, WaveSquare, rate), 0.5),
		newVolume(tone(440, d, WaveSquare, rate), 0.5),
	)
}

func winSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(523.25, 100*time.Millisecond, WaveSquare, rate),
		tone(659.25, 100*time.Millisecond, WaveSquare, rate),
		tone(783.99, 100*time.Millisecond, WaveSquare, rate),
		tone(1046.5, 250*time.Millisecond, WaveSquare, rate),
	)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392, 150*time.Millisecond, WaveSaw, rate),
		tone(311.13, 150*time.Millisecond, WaveSaw, rate),
		tone(196, 400*time.Millisecond, WaveSaw, rate),
	)
}

// Effect returns a fresh streamer for s scaled by volume, or nil for SoundNone.
func Effect(s core.Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundHop:
		st = hopSound(rate)
	case core.SoundSquash:
		st = squashSound(rate)
	case core.SoundDrown:
		st = drownSound(rate)
	case core.SoundCollect:
		st = collectSound(rate)
	case core.SoundHorn:
		st = hornSound(rate)
	case core.SoundWin:
		st = winSound(rate)
	case core.SoundGameOver:
		st = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
