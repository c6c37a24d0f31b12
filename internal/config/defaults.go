package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/galaxian.yaml
var defaultGalaxianYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/tank.yaml
var defaultTankYAML []byte

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

//go:embed defaults/controls.yaml
var defaultControlsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Field: FieldConfig{Width: 720, Height: 900},
		Ship: AsteroidsShip{
			Radius:        12,
			Acceleration:  0.2,
			Friction:      0.99,
			RotationSpeed: 4,
		},
		Bullets: ProjectileConfig{
			Capacity: 10,
			Speed:    9,
			Radius:   2,
			Lifetime: 60,
			FireGate: "edge",
			Boundary: "wrap",
		},
		Rocks: AsteroidsRocks{
			Capacity:    16,
			Initial:     5,
			InitialSize: 60,
			MinSize:     15,
			MinSpeed:    0.5,
			MaxSpeed:    2,
			Clearance:   200,
			Points:      20,
			MinSides:    5,
			MaxSides:    9,
		},
		Gameplay: GameplayConfig{Lives: 1, InitialScore: 0},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 720, Height: 900},
		Paddle: BreakoutPaddle{
			Width:        120,
			Height:       20,
			Speed:        8,
			BottomOffset: 60,
		},
		Ball: BreakoutBall{
			Radius:  10,
			Speed:   6,
			English: true,
		},
		Bricks: BreakoutBricks{
			Width:   60,
			Height:  30,
			Padding: 8,
			OffsetX: 30,
			OffsetY: 60,
			Points:  10,
		},
		Gameplay: GameplayConfig{Lives: 3, InitialScore: 0},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
		LaunchGate: "edge",
	}
}

// DefaultGalaxianConfig returns the default Galaxian configuration.
func DefaultGalaxianConfig() GalaxianConfig {
	return GalaxianConfig{
		Field: FieldConfig{Width: 720, Height: 900},
		Player: ShooterPlayer{
			Width:        48,
			Height:       32,
			Speed:        6,
			BottomOffset: 40,
		},
		Bullets: ProjectileConfig{
			Capacity: 2,
			Speed:    12,
			Width:    4,
			Height:   16,
			FireGate: "edge",
		},
		Enemies: GalaxianEnemies{
			Rows:          4,
			Cols:          8,
			Width:         40,
			Height:        32,
			SpacingX:      64,
			SpacingY:      48,
			OffsetY:       100,
			SwayAmplitude: 40,
			SwayPeriod:    240,
			Points:        30,
			DivePoints:    60,
		},
		Dive: GalaxianDive{
			Interval: 150,
			ArcTicks: 90,
			Radius:   120,
			Speed:    6,
		},
		Gameplay: GameplayConfig{Lives: 3, InitialScore: 0},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 0.5},
		},
		Music: true,
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 600, Height: 800},
		Player: ShooterPlayer{
			Width:        40,
			Height:       24,
			Speed:        5,
			BottomOffset: 40,
		},
		Shots: ProjectileConfig{
			Capacity: 5,
			Speed:    10,
			Width:    4,
			Height:   12,
			FireGate: "cooldown",
			Cooldown: 15,
		},
		Bombs: InvadersBombs{
			ProjectileConfig: ProjectileConfig{
				Capacity: 3,
				Speed:    5,
				Width:    4,
				Height:   12,
			},
			Interval: 45,
		},
		Invaders: InvadersGrid{
			Rows:    5,
			Cols:    10,
			Width:   30,
			Height:  24,
			Spacing: 50,
			OffsetX: 65,
			OffsetY: 120,
			Speed:   0.5,
			Drop:    20,
			Points:  100,
		},
		Gameplay: GameplayConfig{Lives: 3, InitialScore: 0},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 2, IntervalReduction: 0.5},
		},
	}
}

// DefaultTankConfig returns the default tank duel configuration.
func DefaultTankConfig() TankConfig {
	return TankConfig{
		Field: FieldConfig{Width: 720, Height: 900},
		Tank: TankBody{
			Size:          32,
			Speed:         2,
			RotationSpeed: 2.5,
			Boundary:      "clamp",
			Spawn1:        [2]float64{100, 100},
			Spawn2:        [2]float64{620, 800},
		},
		Bullets: ProjectileConfig{
			Capacity: 3,
			Speed:    5,
			Radius:   4,
			FireGate: "edge",
			Boundary: "none",
		},
		Gameplay: GameplayConfig{Lives: 3, InitialScore: 0},
	}
}

// DefaultSandboxConfig returns the default sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		Field: FieldConfig{Width: 720, Height: 900},
		Player: ShooterPlayer{
			Width:        48,
			Height:       32,
			Speed:        6,
			BottomOffset: 40,
		},
		Bullet: ProjectileConfig{
			Capacity: 1,
			Speed:    12,
			Width:    4,
			Height:   16,
			FireGate: "edge",
		},
		Enemy: SandboxEnemy{
			Width:    40,
			Height:   32,
			Wait:     60,
			ArcTicks: 120,
			Radius:   200,
			Points:   50,
		},
		Gameplay: GameplayConfig{Lives: 3, InitialScore: 0},
		Music:    true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	case "breakout":
		return defaultBreakoutYAML
	case "galaxian":
		return defaultGalaxianYAML
	case "invaders":
		return defaultInvadersYAML
	case "tank":
		return defaultTankYAML
	case "sandbox":
		return defaultSandboxYAML
	case "controls":
		return defaultControlsYAML
	default:
		return nil
	}
}
