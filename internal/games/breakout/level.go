// Package breakout implements a Breakout/Arkanoid-style brick breaker game.
package breakout

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Grid bounds for a level. Larger maps are cropped.
const (
	MaxCols = 10
	MaxRows = 6
)

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Standard brick, destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible; a wall, not a target
)

// BrickSpec is one cell of a parsed level.
type BrickSpec struct {
	Row, Col int
	Type     BrickType
	Points   int
	HP       int
}

// Level represents a playable level with brick layout.
type Level struct {
	ID     string
	Name   string
	Bricks []BrickSpec // Non-empty cells in row-major order
}

// Breakable returns the number of bricks that must be destroyed to clear the level.
func (l *Level) Breakable() int {
	n := 0
	for _, b := range l.Bricks {
		if b.Type != BrickSolid {
			n++
		}
	}
	return n
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (basePoints)
//	'.' = empty
//	'1'-'9' = brick with custom points (10 * digit)
//	'H' = hard brick (2 HP, 2 * basePoints)
//	'X' = solid/indestructible brick (0 points)
func ParseLevel(id, name string, lines []string, basePoints int) *Level {
	level := &Level{ID: id, Name: name}

	for row, line := range lines {
		if row >= MaxRows {
			break
		}
		for col := 0; col < len(line) && col < MaxCols; col++ {
			ch := line[col]
			spec := BrickSpec{Row: row, Col: col}

			switch {
			case ch == '#':
				spec.Type, spec.Points, spec.HP = BrickNormal, basePoints, 1
			case ch >= '1' && ch <= '9':
				spec.Type, spec.Points, spec.HP = BrickNormal, int(ch-'0')*10, 1
			case ch == 'H' || ch == 'h':
				spec.Type, spec.Points, spec.HP = BrickHard, 2*basePoints, 2
			case ch == 'X' || ch == 'x':
				spec.Type, spec.Points, spec.HP = BrickSolid, 0, 0
			default:
				continue
			}
			level.Bricks = append(level.Bricks, spec)
		}
	}

	return level
}

// levelPack is the YAML layout of a level file.
type levelPack struct {
	Levels []struct {
		ID   string   `yaml:"id"`
		Name string   `yaml:"name"`
		Rows []string `yaml:"rows"`
	} `yaml:"levels"`
}

//go:embed levels.yaml
var builtinLevelsYAML []byte

// ParseLevels decodes a YAML level pack.
func ParseLevels(data []byte, basePoints int) ([]*Level, error) {
	var pack levelPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("breakout: parse levels: %w", err)
	}

	levels := make([]*Level, 0, len(pack.Levels))
	for i, l := range pack.Levels {
		level := ParseLevel(l.ID, l.Name, l.Rows, basePoints)
		if level.Breakable() == 0 {
			return nil, fmt.Errorf("breakout: level %d (%s) has no breakable bricks", i+1, l.ID)
		}
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("breakout: level pack is empty")
	}
	return levels, nil
}

// LoadLevels reads a level pack from path, or the built-in pack when path is empty.
func LoadLevels(path string, basePoints int) ([]*Level, error) {
	if path == "" {
		return BuiltinLevels(basePoints), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("breakout: read levels %s: %w", path, err)
	}
	return ParseLevels(data, basePoints)
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels(basePoints int) []*Level {
	levels, err := ParseLevels(builtinLevelsYAML, basePoints)
	if err != nil {
		// Only reachable if the embedded pack stops parsing.
		return []*Level{ParseLevel("classic", "Classic", classicRows(), basePoints)}
	}
	return levels
}

// classicRows is the full 6x10 wall.
func classicRows() []string {
	rows := make([]string, MaxRows)
	for i := range rows {
		rows[i] = "##########"
	}
	return rows
}
