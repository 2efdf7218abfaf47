package sonar

import (
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// entitySource is one looping positional voice in the mixer
// Sources are created lazily and kept allocated for the engine's
// lifetime; out-of-range entities are paused, not freed
type entitySource struct {
	ctrl *beep.Ctrl
	pan  *effects.Pan
	vol  *effects.Volume
}

// loadClip opens a named loop asset and adapts it to the engine rate
func loadClip(dir, name string, rate beep.SampleRate) (beep.Streamer, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, s)
	}
	return s, nil
}
