// Package audio plays the simulation's sound requests through the beep
// speaker. Effects are synthesized unless a WAV file with the sound's name
// is found in the assets directory; background music loops the same way.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// DefaultSampleRate is the speaker rate used when Options leaves it zero.
const DefaultSampleRate = beep.SampleRate(44100)

// MusicFile is the file name looked up in the assets directory for music.
const MusicFile = "background_music.wav"

// Options configure a Manager.
type Options struct {
	SampleRate beep.SampleRate
	Volume     float64 // 0..1, applied to every sound; zero means 1
	AssetsDir  string  // Optional directory with <sound>.wav files
	Muted      bool
}

// Manager mixes effects and music onto the speaker. It implements
// sim.SoundSink; Play never blocks the caller for longer than it takes to
// add a streamer to the mixer.
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	vol         float64
	assetsDir   string
	mixer       *beep.Mixer
	music       *beep.Ctrl
	samples     map[sim.SoundID]*beep.Buffer
	musicBuf    *beep.Buffer
	muted       bool
	initialized bool
	logger      *log.Logger
}

var _ sim.SoundSink = (*Manager)(nil)

// New creates a manager. Nothing touches the audio device until Init.
func New(opts Options, logger *log.Logger) *Manager {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Volume <= 0 {
		opts.Volume = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		rate:      opts.SampleRate,
		vol:       opts.Volume,
		assetsDir: opts.AssetsDir,
		mixer:     &beep.Mixer{},
		samples:   make(map[sim.SoundID]*beep.Buffer),
		muted:     opts.Muted,
		logger:    logger,
	}
}

// Init loads optional assets and opens the speaker.
// A missing asset is not an error; a speaker failure is.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.loadAssets()

	if err := speaker.Init(m.rate, m.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("audio ready", "rate", int(m.rate), "assets", len(m.samples))
	return nil
}

// loadAssets decodes every <sound>.wav and the music file it can find.
func (m *Manager) loadAssets() {
	if m.assetsDir == "" {
		return
	}
	for id := sim.SoundLaser; id <= sim.SoundWin; id++ {
		buf, err := m.loadWAV(filepath.Join(m.assetsDir, id.String()+".wav"))
		switch {
		case err == nil:
			m.samples[id] = buf
		case !errors.Is(err, os.ErrNotExist):
			m.logger.Warn("skipping sound asset", "sound", id, "err", err)
		}
	}

	buf, err := m.loadWAV(filepath.Join(m.assetsDir, MusicFile))
	switch {
	case err == nil:
		m.musicBuf = buf
	case !errors.Is(err, os.ErrNotExist):
		m.logger.Warn("skipping music asset", "err", err)
	}
}

// loadWAV decodes a WAV file into memory at the manager's sample rate.
func (m *Manager) loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- user-provided assets directory
	if err != nil {
		return nil, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close() //nolint:errcheck

	var s beep.Streamer = stream
	if format.SampleRate != m.rate {
		s = beep.Resample(4, format.SampleRate, m.rate, stream)
	}
	format.SampleRate = m.rate
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf, nil
}

// Effect returns a fresh streamer for id: the loaded asset if there is
// one, the synthesized effect otherwise.
func (m *Manager) Effect(id sim.SoundID) beep.Streamer {
	m.mu.Lock()
	buf := m.samples[id]
	m.mu.Unlock()

	if buf != nil {
		return volume(buf.Streamer(0, buf.Len()), m.vol)
	}
	s := Synth(m.rate, id)
	if s == nil {
		return nil
	}
	return volume(s, m.vol)
}

// Play queues id on the mixer. It is a no-op before Init or while muted.
func (m *Manager) Play(id sim.SoundID) {
	m.mu.Lock()
	ready := m.initialized && !m.muted
	m.mu.Unlock()
	if !ready {
		return
	}

	s := m.Effect(id)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// MusicStreamer returns an endless music stream: the music file looped, or
// the built-in pattern.
func (m *Manager) MusicStreamer() beep.Streamer {
	m.mu.Lock()
	buf := m.musicBuf
	m.mu.Unlock()

	if buf != nil && buf.Len() > 0 {
		return volume(beep.Loop(-1, buf.Streamer(0, buf.Len())), m.vol*0.6)
	}
	return volume(NewMusicLoop(m.rate, 120), m.vol*0.6)
}

// StartMusic begins looping background music. Calling it while music is
// already playing does nothing.
func (m *Manager) StartMusic() {
	stream := m.MusicStreamer()

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.music != nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: stream, Paused: m.muted}
	m.music = ctrl
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic stops the background music.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Streamer = nil
	speaker.Unlock()
	m.music = nil
}

// SetMuted silences or restores every sound, including music.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = muted
	if m.music != nil && m.initialized {
		speaker.Lock()
		m.music.Paused = muted
		speaker.Unlock()
	}
}

// Muted reports whether the manager is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close stops every sound. The speaker itself stays open for the process.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.mixer.Clear()
	m.music = nil
	m.initialized = false
}
