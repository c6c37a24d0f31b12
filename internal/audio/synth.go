package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is a finite oscillator whose frequency slides linearly from
// start to end over its duration.
type sweep struct {
	rate       beep.SampleRate
	wave       Wave
	start, end float64
	total, pos int
	phase      float64
	seed       uint32
}

// NewSweep creates a sweeping oscillator. Noise ignores the frequencies
// and uses a fixed-seed generator so effects sound the same every time.
func NewSweep(rate beep.SampleRate, wave Wave, start, end float64, d time.Duration) beep.Streamer {
	return &sweep{rate: rate, wave: wave, start: start, end: end, total: rate.N(d), seed: 22222}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			s.seed = s.seed*1664525 + 1013904223
			v = float64(s.seed)/float64(math.MaxUint32)*2 - 1
		}

		// Linear fade out avoids a click at the end.
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// volume scales s by a linear factor. Zero silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// tone is a fixed-frequency note cut to d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// Synth builds the built-in effect for id.
func Synth(rate beep.SampleRate, id sim.SoundID) beep.Streamer {
	switch id {
	case sim.SoundLaser:
		return volume(NewSweep(rate, WaveSquare, 1400, 300, 120*time.Millisecond), 0.25)
	case sim.SoundExplosion:
		return volume(NewSweep(rate, WaveNoise, 0, 0, 350*time.Millisecond), 0.4)
	case sim.SoundBounce:
		return volume(tone(rate, 660, 40*time.Millisecond), 0.3)
	case sim.SoundHit:
		return volume(NewSweep(rate, WaveSquare, 220, 180, 60*time.Millisecond), 0.25)
	case sim.SoundLose:
		return volume(NewSweep(rate, WaveSine, 440, 110, 400*time.Millisecond), 0.4)
	case sim.SoundWin:
		return volume(beep.Seq(
			tone(rate, 523.25, 100*time.Millisecond),
			tone(rate, 659.25, 100*time.Millisecond),
			tone(rate, 783.99, 200*time.Millisecond),
		), 0.3)
	default:
		return nil
	}
}

// musicLoop is an endless bass-and-kick pattern used when no music file
// is configured.
type musicLoop struct {
	rate beep.SampleRate
	beat int
	pos  int
}

// NewMusicLoop creates the built-in background music at the given tempo.
func NewMusicLoop(rate beep.SampleRate, bpm int) beep.Streamer {
	return &musicLoop{rate: rate, beat: rate.N(time.Minute / time.Duration(max(bpm, 1)))}
}

// bassline in Hz, one note per beat.
var bassline = []float64{110, 110, 130.81, 98}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := m.rate.N(80 * time.Millisecond)
	for i := range samples {
		beatPos := m.pos % m.beat
		note := bassline[(m.pos/m.beat)%len(bassline)]
		t := float64(beatPos) / float64(m.rate)

		v := 0.12 * math.Sin(2*math.Pi*note*t)
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			v += 0.3 * env * math.Sin(2*math.Pi*60*(1+env)*t)
		}

		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
