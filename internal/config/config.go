// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// Every tunable number a game uses lives in one of these structs; game
// logic holds no literals of its own. World sizes are in world units, not
// terminal cells.
package config

// FieldConfig is the playfield size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig holds the counters every game resets on a new game.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	InitialScore int `yaml:"initial_score"`
}

// ProjectileConfig describes one projectile pool.
type ProjectileConfig struct {
	Capacity int     `yaml:"capacity"`  // Pool size; firing into a full pool is dropped
	Speed    float64 `yaml:"speed"`     // World units per tick
	Radius   float64 `yaml:"radius"`    // Circle projectiles
	Width    float64 `yaml:"width"`     // Rectangle projectiles
	Height   float64 `yaml:"height"`    // Rectangle projectiles
	Lifetime int     `yaml:"lifetime"`  // Ticks before expiry; 0 = until off-field or hit
	FireGate string  `yaml:"fire_gate"` // "edge", "latch" or "cooldown"
	Cooldown int     `yaml:"cooldown"`  // Ticks between shots for the cooldown gate
	Boundary string  `yaml:"boundary"`  // "none" (die off-field) or "wrap"
}

// AsteroidsConfig contains all configuration for Asteroids.
type AsteroidsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ship       AsteroidsShip    `yaml:"ship"`
	Bullets    ProjectileConfig `yaml:"bullets"`
	Rocks      AsteroidsRocks   `yaml:"rocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsShip defines the ship's handling.
type AsteroidsShip struct {
	Radius        float64 `yaml:"radius"`
	Acceleration  float64 `yaml:"acceleration"`   // Thrust per tick while Up is held
	Friction      float64 `yaml:"friction"`       // Velocity multiplier per tick
	RotationSpeed float64 `yaml:"rotation_speed"` // Degrees per tick
}

// AsteroidsRocks defines the asteroid pool and splitting.
type AsteroidsRocks struct {
	Capacity    int     `yaml:"capacity"`
	Initial     int     `yaml:"initial"`      // Asteroids spawned on a new game
	InitialSize float64 `yaml:"initial_size"` // Radius of a fresh asteroid
	MinSize     float64 `yaml:"min_size"`     // At or below this size an asteroid is destroyed, not split
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Clearance   float64 `yaml:"clearance"` // Fresh asteroids spawn at least this far from the ship
	Points      int     `yaml:"points"`    // Score for an initial-size asteroid; smaller ones score more
	MinSides    int     `yaml:"min_sides"` // Polygon side range for rendering
	MaxSides    int     `yaml:"max_sides"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	LaunchGate string           `yaml:"launch_gate"` // Gate for the launch key
	LevelsPath string           `yaml:"levels_path"` // Optional level pack; empty uses the built-in pack
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	English bool    `yaml:"english"` // Paddle hit offset steers the ball
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Points  int     `yaml:"points"` // Score for a normal brick
}

// GalaxianConfig contains all configuration for Galaxian.
type GalaxianConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     ShooterPlayer    `yaml:"player"`
	Bullets    ProjectileConfig `yaml:"bullets"`
	Enemies    GalaxianEnemies  `yaml:"enemies"`
	Dive       GalaxianDive     `yaml:"dive"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Music      bool             `yaml:"music"`
}

// ShooterPlayer is the bottom-row ship shared by the vertical shooters.
type ShooterPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// GalaxianEnemies defines the formation.
type GalaxianEnemies struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpacingX      float64 `yaml:"spacing_x"`
	SpacingY      float64 `yaml:"spacing_y"`
	OffsetY       float64 `yaml:"offset_y"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwayPeriod    int     `yaml:"sway_period"` // Ticks per full sway
	Points        int     `yaml:"points"`
	DivePoints    int     `yaml:"dive_points"` // Score for hitting a diving enemy
}

// GalaxianDive defines how enemies leave the formation.
type GalaxianDive struct {
	Interval int     `yaml:"interval"` // Ticks between dives
	ArcTicks int     `yaml:"arc_ticks"`
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"` // Descent speed after the arc
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     ShooterPlayer    `yaml:"player"`
	Shots      ProjectileConfig `yaml:"shots"`
	Bombs      InvadersBombs    `yaml:"bombs"`
	Invaders   InvadersGrid     `yaml:"invaders"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersGrid defines the marching grid.
type InvadersGrid struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Speed   float64 `yaml:"speed"` // Horizontal march per tick
	Drop    float64 `yaml:"drop"`  // Descent when the grid hits an edge
	Points  int     `yaml:"points"`
}

// InvadersBombs defines invader return fire.
type InvadersBombs struct {
	ProjectileConfig `yaml:",inline"`
	Interval         int `yaml:"interval"` // Ticks between bombs
}

// TankConfig contains all configuration for the tank duel.
type TankConfig struct {
	Field    FieldConfig      `yaml:"field"`
	Tank     TankBody         `yaml:"tank"`
	Bullets  ProjectileConfig `yaml:"bullets"`
	Gameplay GameplayConfig   `yaml:"gameplay"`
}

// TankBody defines tank handling.
type TankBody struct {
	Size          float64    `yaml:"size"`
	Speed         float64    `yaml:"speed"`
	RotationSpeed float64    `yaml:"rotation_speed"`
	Boundary      string     `yaml:"boundary"` // "clamp" or "wrap"
	Spawn1        [2]float64 `yaml:"spawn1"`
	Spawn2        [2]float64 `yaml:"spawn2"`
}

// SandboxConfig contains all configuration for the sandbox.
type SandboxConfig struct {
	Field    FieldConfig      `yaml:"field"`
	Player   ShooterPlayer    `yaml:"player"`
	Bullet   ProjectileConfig `yaml:"bullet"`
	Enemy    SandboxEnemy     `yaml:"enemy"`
	Gameplay GameplayConfig   `yaml:"gameplay"`
	Music    bool             `yaml:"music"`
}

// SandboxEnemy defines the single arcing enemy.
type SandboxEnemy struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Wait     int     `yaml:"wait"`      // Ticks before the enemy starts its arc
	ArcTicks int     `yaml:"arc_ticks"` // Ticks for the full arc
	Radius   float64 `yaml:"radius"`
	Points   int     `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from spawn/fire intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty or unknown
// values return "" which leaves configs untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
