package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-classics/internal/audio"
	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var (
	flagConfig     string
	flagControls   string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagAssets     string
)

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: config.ParsePreset(flagDifficulty),
	}
}

// localSession holds what a local game needs besides the game itself.
// Every part is optional; failures degrade to playing without it.
type localSession struct {
	store  *storage.Store
	audio  *audio.Manager
	opts   platform.RunnerOptions
	logger *log.Logger
}

func openLocalSession() *localSession {
	logger := log.WithPrefix("arcade")
	s := &localSession{logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.store = store
	}

	controls, err := config.LoadControls(flagControls)
	if err != nil {
		logger.Warn("could not load key bindings, using defaults", "error", err)
		controls = config.DefaultControls()
	}

	s.opts = platform.RunnerOptions{Store: s.store, Controls: controls, Logger: logger}

	if !flagMute {
		mgr := audio.New(audio.Options{Volume: flagVolume, AssetsDir: flagAssets}, logger)
		if err := mgr.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			s.audio = mgr
			s.opts.Audio = mgr
		}
	}
	return s
}

func (s *localSession) Close() {
	if s.audio != nil {
		s.audio.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}
