package game

// particleGravity is the constant downward acceleration applied to every
// particle each tick.
const particleGravity = 0.3

// Particle is a short-lived visual effect. A non-empty Text means a floating
// score label; an empty Text means a debris fragment from the death burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Remaining lifetime in ticks
	Text   string
}

// IsDebris reports whether this is a debris particle (no label text).
func (p Particle) IsDebris() bool {
	return p.Text == ""
}
