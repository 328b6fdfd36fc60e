package game

import "github.com/vovakirdan/dino-rush/internal/core"

// Kind identifies the obstacle variety. Birds fly above the ground line and
// must be ducked under; cacti and rocks rest on it and must be jumped.
type Kind string

const (
	KindCactus Kind = "cactus"
	KindBird   Kind = "bird"
	KindRock   Kind = "rock"
)

// kinds is the uniform spawn pool.
var kinds = []Kind{KindCactus, KindBird, KindRock}

// Obstacle is a single scrolling hazard.
type Obstacle struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	Passed bool // Scoring already awarded for this obstacle
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}
