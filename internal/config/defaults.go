package config

import (
	_ "embed"
)

//go:embed defaults/dinorush.yaml
var defaultGameYAML []byte

// DefaultGame returns the default runner configuration.
// The values match the embedded defaults/dinorush.yaml.
func DefaultGame() Game {
	return Game{
		Canvas: CanvasConfig{
			Width:        900,
			Height:       260,
			GroundHeight: 40,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -12.0,
		},
		Speed: SpeedConfig{
			Initial:   4.0,
			Increment: 0.0009,
		},
		Spawn: SpawnConfig{
			InitialInterval: 90,
			MinInterval:     60,
			MaxInterval:     140,
			EdgeMargin:      20,
			DespawnMargin:   60,
		},
		Player: PlayerConfig{
			X:               80,
			Width:           44,
			Height:          44,
			DuckHeightRatio: 0.55,
		},
		Obstacles: ObstacleConfig{
			MinWidth:           20,
			MaxWidth:           50,
			MinHeight:          30,
			MaxHeight:          60,
			BirdHeight:         24,
			BirdMinClearance:   20,
			BirdClearanceRange: 40,
		},
		Score: ScoreConfig{
			ObstaclePoints: 10,
			ContinuousRate: 0.05,
		},
		Effects: EffectsConfig{
			GameOverParticles: 30,
			DebrisLifetime:    80,
			ScoreTextLifetime: 50,
		},
	}
}
