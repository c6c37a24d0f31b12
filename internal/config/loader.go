package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads one YAML document into a T.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default.
// Only an explicit customPath produces an error; the other locations are
// skipped when missing or malformed.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", name), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes path over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func tryFile[T any](path string, fallback func() T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback(), false
	}
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadAsteroids loads Asteroids configuration.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids.yaml", customPath, defaultAsteroidsYAML, DefaultAsteroidsConfig)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout.yaml", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadGalaxian loads Galaxian configuration.
func LoadGalaxian(customPath string) (GalaxianConfig, error) {
	return load("galaxian.yaml", customPath, defaultGalaxianYAML, DefaultGalaxianConfig)
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders.yaml", customPath, defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadTank loads tank duel configuration.
func LoadTank(customPath string) (TankConfig, error) {
	return load("tank.yaml", customPath, defaultTankYAML, DefaultTankConfig)
}

// LoadSandbox loads sandbox configuration.
func LoadSandbox(customPath string) (SandboxConfig, error) {
	return load("sandbox.yaml", customPath, defaultSandboxYAML, DefaultSandboxConfig)
}

// applyPreset adjusts progression and lives for a difficulty preset.
func applyPreset(d *DifficultyConfig, g *GameplayConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		g.Lives += 2
	case DifficultyHard:
		g.Lives = max(g.Lives-1, 1)
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
// Asteroids resets on any hit, so lives are left alone.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	lives := cfg.Gameplay.Lives
	applyPreset(&cfg.Difficulty, &cfg.Gameplay, preset)
	cfg.Gameplay.Lives = lives

	switch preset {
	case DifficultyEasy:
		cfg.Rocks.Initial = max(cfg.Rocks.Initial-1, 1)
	case DifficultyHard:
		cfg.Rocks.Initial = min(cfg.Rocks.Initial+2, cfg.Rocks.Capacity)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, &cfg.Gameplay, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 5
	case DifficultyHard:
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 8
	}
}

// ApplyGalaxianPreset modifies the config based on a difficulty preset.
func ApplyGalaxianPreset(cfg *GalaxianConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, &cfg.Gameplay, preset)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, &cfg.Gameplay, preset)
}

// ApplyTankPreset adjusts lives only; the duel has no progression.
func ApplyTankPreset(cfg *TankConfig, preset DifficultyPreset) {
	var d DifficultyConfig
	applyPreset(&d, &cfg.Gameplay, preset)
}

// ApplySandboxPreset adjusts lives only.
func ApplySandboxPreset(cfg *SandboxConfig, preset DifficultyPreset) {
	var d DifficultyConfig
	applyPreset(&d, &cfg.Gameplay, preset)
}
