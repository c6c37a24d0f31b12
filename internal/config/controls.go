package config

import "fmt"

// KeysConfig lists the keys bound to each movement and fire action
// for one player. Key names are Bubble Tea key strings.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
}

// Empty reports whether no key is bound.
func (k KeysConfig) Empty() bool {
	return len(k.Up)+len(k.Down)+len(k.Left)+len(k.Right)+len(k.Fire) == 0
}

// GameControls holds the bindings of up to two local players.
type GameControls struct {
	Player1 KeysConfig `yaml:"player1"`
	Player2 KeysConfig `yaml:"player2"`
}

// ControlsConfig maps a game ID (or "default") to its bindings.
type ControlsConfig map[string]GameControls

// For returns the bindings for a game, falling back to "default".
func (c ControlsConfig) For(gameID string) GameControls {
	if gc, ok := c[gameID]; ok {
		return gc
	}
	return c["default"]
}

// DefaultControls returns the built-in bindings.
func DefaultControls() ControlsConfig {
	return ControlsConfig{
		"default": {
			Player1: KeysConfig{
				Up:    []string{"up", "w"},
				Down:  []string{"down", "s"},
				Left:  []string{"left", "a"},
				Right: []string{"right", "d"},
				Fire:  []string{"space"},
			},
		},
		"tank": {
			Player1: KeysConfig{
				Up:    []string{"w"},
				Down:  []string{"s"},
				Left:  []string{"a"},
				Right: []string{"d"},
				Fire:  []string{"space"},
			},
			Player2: KeysConfig{
				Up:    []string{"up"},
				Down:  []string{"down"},
				Left:  []string{"left"},
				Right: []string{"right"},
				Fire:  []string{"enter"},
			},
		},
	}
}

// LoadControls loads key bindings.
// Search order: customPath -> ~/.arcade/configs/controls.yaml -> ./configs/controls.yaml -> embedded default.
// Games named in a file replace the built-in entry as a whole.
func LoadControls(customPath string) (ControlsConfig, error) {
	cfg, err := load("controls.yaml", customPath, defaultControlsYAML, DefaultControls)
	if err != nil {
		return cfg, err
	}
	if _, ok := cfg["default"]; !ok {
		return cfg, fmt.Errorf("config: controls: missing \"default\" entry")
	}
	return cfg, nil
}
