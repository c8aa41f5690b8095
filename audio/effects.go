package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-tennis/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration
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
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume in [0, 1].
// Zero is mapped to Silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBounceSound generates the short blip played on wall and paddle hits
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.BounceSoundFrequency, constants.BounceSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundBounce))
}

// CreateScoreSound generates a low falling buzz for a lost point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := constants.ScoreSoundDuration / 2

	first := NewEnvelope(NewOscillator(constants.ScoreSoundFrequency, half, WaveSaw, rate),
		half, constants.BounceSoundAttack, half/2, rate)
	second := NewEnvelope(NewOscillator(constants.ScoreSoundFrequency*0.75, half, WaveSaw, rate),
		half, constants.BounceSoundAttack, half/2, rate)

	return newVolume(beep.Seq(first, second), cfg.effectVolume(SoundScore)*0.5)
}

// CreateWinSound generates a rising three-note arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.WinSoundNotes))
	for _, freq := range constants.WinSoundNotes {
		osc := NewOscillator(freq, constants.WinSoundNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.WinSoundNoteDuration, constants.BounceSoundAttack, constants.WinSoundNoteDuration/2, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.effectVolume(SoundWin)*0.4)
}

// CreateStartSound generates a clean chime from a pure tone and its octave
func CreateStartSound(cfg *AudioConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	n := rate.N(constants.StartSoundDuration)

	fund, err := generators.SineTone(rate, constants.StartSoundFrequency)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(rate, constants.StartSoundFrequency*2)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(
		newVolume(beep.Take(n, fund), 0.7),
		newVolume(beep.Take(n, over), 0.3),
	)
	shaped := NewEnvelope(mixed, constants.StartSoundDuration, constants.BounceSoundAttack, constants.StartSoundDuration/2, rate)

	return newVolume(shaped, cfg.effectVolume(SoundStart)), nil
}
