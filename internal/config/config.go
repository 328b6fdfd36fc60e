// Package config provides YAML-based tuning configuration for the runner.
package config

// Game contains all tuning parameters for the runner simulation.
type Game struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedConfig    `yaml:"speed"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Score     ScoreConfig    `yaml:"score"`
	Effects   EffectsConfig  `yaml:"effects"`
}

// CanvasConfig defines the virtual canvas geometry the simulation runs in.
type CanvasConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// SpeedConfig defines the scroll speed ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"`
}

// SpawnConfig defines obstacle spawn timing and placement.
type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	MaxInterval     float64 `yaml:"max_interval"`
	EdgeMargin      float64 `yaml:"edge_margin"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// PlayerConfig defines player placement and hitbox.
type PlayerConfig struct {
	X               float64 `yaml:"x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	DuckHeightRatio float64 `yaml:"duck_height_ratio"`
}

// ObstacleConfig defines obstacle size distributions.
type ObstacleConfig struct {
	MinWidth           float64 `yaml:"min_width"`
	MaxWidth           float64 `yaml:"max_width"`
	MinHeight          float64 `yaml:"min_height"`
	MaxHeight          float64 `yaml:"max_height"`
	BirdHeight         float64 `yaml:"bird_height"`
	BirdMinClearance   float64 `yaml:"bird_min_clearance"`
	BirdClearanceRange float64 `yaml:"bird_clearance_range"`
}

// ScoreConfig defines scoring parameters.
type ScoreConfig struct {
	ObstaclePoints int     `yaml:"obstacle_points"`
	ContinuousRate float64 `yaml:"continuous_rate"`
}

// EffectsConfig defines particle effect parameters.
type EffectsConfig struct {
	GameOverParticles int `yaml:"game_over_particles"`
	DebrisLifetime    int `yaml:"debris_lifetime"`
	ScoreTextLifetime int `yaml:"score_text_lifetime"`
}
