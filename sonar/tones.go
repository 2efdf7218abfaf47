package sonar

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// toneStreamer is an endless sine oscillator at a fixed pitch
type toneStreamer struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func newTone(freq float64, rate beep.SampleRate) *toneStreamer {
	return &toneStreamer{freq: freq, rate: rate}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// newVolume wraps a streamer in a log2 volume effect
// math.Log2(0) is -Inf, so zero volume switches to Silent instead
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// setVolume retargets an existing volume effect
// Caller holds the speaker lock
func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// gainFor maps distance to gain over [0, range]: quadratic falloff so
// near sounds dominate sharply
func gainFor(dist, maxRange float64) float64 {
	if maxRange <= 0 || dist >= maxRange {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	f := 1 - dist/maxRange
	return f * f
}

// panFor maps lateral offset to stereo position, clamped to full range
func panFor(lateral, maxRange float64) float64 {
	if maxRange <= 0 {
		return 0
	}
	p := lateral / maxRange
	if p > 1 {
		return 1
	}
	if p < -1 {
		return -1
	}
	return p
}
