package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/tomz197/tiro/internal/object"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq, endFreq float64
	phase              float64
	duration           int
	position           int
	wave               Wave
	rate               beep.SampleRate
	rng                *rand.Rand
}

// NewOscillator creates a finite streamer of the given wave.
func NewOscillator(startFreq, endFreq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(int64(startFreq*1000 + endFreq))),
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
			val = 2*o.phase - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially; rate is the decay constant per second.
type decay struct {
	streamer beep.Streamer
	position int
	k        float64
	sr       beep.SampleRate
}

func newDecay(s beep.Streamer, k float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, k: k, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.position) / float64(d.sr) * d.k)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type voice struct {
	from, to float64
	length   time.Duration
	wave     Wave
	decay    float64
	gain     float64
}

// cueVoices lists the layered voices each cue is built from. Voices inside
// a cue play together; powerup is the only cue played as a sequence.
var cueVoices = map[object.Cue][]voice{
	object.CueShoot: {
		{from: 880, to: 440, length: 60 * time.Millisecond, wave: WaveSquare, decay: 20, gain: 0.25},
	},
	object.CueLaser: {
		{from: 1400, to: 300, length: 140 * time.Millisecond, wave: WaveSaw, decay: 10, gain: 0.3},
	},
	object.CueSpecial: {
		{from: 200, to: 900, length: 400 * time.Millisecond, wave: WaveSine, decay: 4, gain: 0.5},
		{length: 400 * time.Millisecond, wave: WaveNoise, decay: 8, gain: 0.2},
	},
	object.CueExplosion: {
		{length: 300 * time.Millisecond, wave: WaveNoise, decay: 12, gain: 0.4},
	},
	object.CueExplosionBig: {
		{length: 900 * time.Millisecond, wave: WaveNoise, decay: 4, gain: 0.5},
		{from: 70, to: 40, length: 900 * time.Millisecond, wave: WaveSine, decay: 3, gain: 0.5},
	},
	object.CueHit: {
		{from: 160, to: 110, length: 100 * time.Millisecond, wave: WaveSquare, decay: 15, gain: 0.3},
	},
	object.CueImpact: {
		{length: 60 * time.Millisecond, wave: WaveNoise, decay: 30, gain: 0.2},
	},
	object.CuePowerup: {
		{from: 660, to: 660, length: 90 * time.Millisecond, wave: WaveSquare, decay: 6, gain: 0.25},
		{from: 990, to: 990, length: 140 * time.Millisecond, wave: WaveSquare, decay: 6, gain: 0.25},
	},
}

// Effect builds a fresh streamer for cue, or nil for an unknown cue.
func Effect(cue object.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	voices, ok := cueVoices[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		osc := NewOscillator(v.from, v.to, v.length, v.wave, rate)
		parts[i] = newVolume(newDecay(osc, v.decay, rate), v.gain)
	}

	var s beep.Streamer
	switch {
	case len(parts) == 1:
		s = parts[0]
	case cue == object.CuePowerup:
		s = beep.Seq(parts...)
	default:
		s = beep.Mix(parts...)
	}
	return newVolume(s, master)
}
