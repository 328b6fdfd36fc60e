package game

import (
	"math"

	"github.com/vovakirdan/dino-rush/internal/core"
)

// Player is the runner character. X is fixed for the whole run; only the
// vertical axis is simulated.
type Player struct {
	X, Y      float64
	W, H      float64
	VY        float64
	OnGround  bool
	Duck      bool
	BaseY     float64 // Resting y, derived from canvas and ground geometry
	DuckRatio float64 // Fraction of H used for the hitbox while ducking
}

// Hitbox returns the duck-adjusted collision rectangle. Ducking shrinks the
// box height and shifts its top edge down so the feet stay on the ground.
func (p Player) Hitbox() core.Rect {
	if !p.Duck {
		return core.NewRect(p.X, p.Y, p.W, p.H)
	}
	h := math.Round(p.H * p.DuckRatio)
	offset := math.Round(p.H - h)
	return core.NewRect(p.X, p.Y+offset, p.W, h)
}
