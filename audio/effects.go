package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
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
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
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

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
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

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
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

// newVolume scales linearly; beep volume is logarithmic so 0 maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBounceSound is a short sine thump
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.BounceFreq, parameter.BounceDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BounceDuration, parameter.SoundAttack, parameter.SoundRelease, rate)
	return newVolume(shaped, parameter.BounceVolume)
}

// CreateSwishSound is a noise burst over a faint high tone
func CreateSwishSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SwishDuration, WaveNoise, rate)
	layers := []beep.Streamer{newVolume(noise, 0.8)}

	// SineTone only fails for frequencies at or above Nyquist
	if tone, err := generators.SineTone(rate, 1760); err == nil {
		layers = append(layers, newVolume(beep.Take(rate.N(parameter.SwishDuration), tone), 0.2))
	}

	shaped := NewEnvelope(beep.Mix(layers...), parameter.SwishDuration, parameter.SoundAttack, parameter.SwishDuration/2, rate)
	return newVolume(shaped, parameter.SwishVolume)
}

// CreateBuzzerSound is a long square-wave horn
func CreateBuzzerSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.BuzzerFreq, parameter.BuzzerDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.BuzzerDuration, parameter.SoundAttack, parameter.SoundRelease, rate)
	return newVolume(shaped, parameter.BuzzerVolume)
}

// GetSoundEffect returns a fresh streamer for the sound, nil for unknown types
func GetSoundEffect(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundBounce:
		return CreateBounceSound(rate)
	case core.SoundSwish:
		return CreateSwishSound(rate)
	case core.SoundBuzzer:
		return CreateBuzzerSound(rate)
	default:
		return nil
	}
}
