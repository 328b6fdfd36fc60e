// Package game implements the endless-runner simulation: player physics,
// obstacle spawning and scoring, collision detection, and particle effects.
// The engine is driven by an external tick source through Advance and reports
// everything account-related through a Listener, so it can be tested in
// complete isolation.
package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-rush/internal/config"
)

// Engine owns the whole simulation state for one session. It is not safe for
// concurrent use; the tick source must serialize Advance with all reads.
type Engine struct {
	cfg      config.Game
	rng      *rand.Rand
	listener Listener

	score         float64 // Accumulated score; displayed value is the floor
	displayScore  int
	sessionBest   int
	running       bool
	speed         float64
	locationIndex int
	obstacles     []Obstacle
	particles     []Particle
	spawnTimer    int
	spawnInterval float64
	duckHeld      bool
	player        Player
}

// New creates an engine with the given tuning config and RNG seed.
// A nil listener is replaced with a no-op one. The engine starts running.
func New(cfg config.Game, seed int64, l Listener) *Engine {
	if l == nil {
		l = NopListener{}
	}
	e := &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		listener: l,
	}
	e.Reset()
	return e
}

// Reset reinitializes all mutable state for a new run, preserving only the
// active location and the session best.
func (e *Engine) Reset() {
	e.obstacles = e.obstacles[:0]
	e.particles = e.particles[:0]
	e.score = 0
	e.displayScore = 0
	e.speed = e.cfg.Speed.Initial
	e.spawnTimer = 0
	e.spawnInterval = e.cfg.Spawn.InitialInterval
	e.duckHeld = false
	e.running = true

	baseY := e.cfg.Canvas.Height - e.cfg.Canvas.GroundHeight - e.cfg.Player.Height
	e.player = Player{
		X:         e.cfg.Player.X,
		Y:         baseY,
		W:         e.cfg.Player.Width,
		H:         e.cfg.Player.Height,
		BaseY:     baseY,
		OnGround:  true,
		DuckRatio: e.cfg.Player.DuckHeightRatio,
	}

	e.listener.RunStarted()
}

// Jump makes the player jump if grounded and not ducking.
// After a game over it restarts the run instead.
func (e *Engine) Jump() {
	if !e.running {
		e.Reset()
		return
	}
	if e.player.OnGround && !e.player.Duck {
		e.player.VY = e.cfg.Physics.JumpImpulse
		e.player.OnGround = false
	}
}

// SetDuck updates the held duck flag. Ducking only takes effect while the
// player is grounded; the flag is re-evaluated every tick.
func (e *Engine) SetDuck(held bool) {
	e.duckHeld = held
}

// CycleLocation advances to the next backdrop.
func (e *Engine) CycleLocation() {
	e.locationIndex = (e.locationIndex + 1) % len(Locations)
}

// Advance moves the simulation forward by one tick. delta is the normalized
// frame delta (1.0 = one nominal 60Hz frame); negative values clamp to zero.
// After a game over only the queued death-burst particles keep decaying.
func (e *Engine) Advance(delta float64) {
	if delta < 0 {
		delta = 0
	}

	if !e.running {
		e.updateParticles()
		return
	}

	// Speed ramps forever, matching the browser game; there is no cap.
	e.speed += e.cfg.Speed.Increment * delta

	// Spawn accounting counts whole ticks, not normalized time.
	e.spawnTimer++
	if float64(e.spawnTimer) > e.spawnInterval {
		e.spawnTimer = 0
		e.spawnInterval = e.cfg.Spawn.MinInterval +
			e.rng.Float64()*(e.cfg.Spawn.MaxInterval-e.cfg.Spawn.MinInterval)
		e.spawnObstacle()
	}

	e.updatePlayer()
	collided := e.updateObstacles()
	e.updateParticles()
	e.updateScore(delta)

	if collided {
		e.listener.GameEnded(e.displayScore)
	}
}

// updatePlayer applies gravity while airborne and re-evaluates the duck flag.
func (e *Engine) updatePlayer() {
	p := &e.player

	if !p.OnGround {
		p.VY += e.cfg.Physics.Gravity
		p.Y += p.VY

		if p.Y >= p.BaseY {
			p.Y = p.BaseY
			p.VY = 0
			p.OnGround = true
		}
	}

	// Ducking is only possible on the ground
	p.Duck = e.duckHeld && p.OnGround
}

// spawnObstacle creates one obstacle of a random kind at the right edge.
func (e *Engine) spawnObstacle() {
	ob := e.cfg.Obstacles
	groundLine := e.cfg.Canvas.Height - e.cfg.Canvas.GroundHeight

	o := Obstacle{
		Kind: kinds[e.rng.Intn(len(kinds))],
		X:    e.cfg.Canvas.Width + e.cfg.Spawn.EdgeMargin,
		W:    ob.MinWidth + e.rng.Float64()*(ob.MaxWidth-ob.MinWidth),
	}

	if o.Kind == KindBird {
		o.H = ob.BirdHeight
		clearance := ob.BirdMinClearance + e.rng.Float64()*ob.BirdClearanceRange
		o.Y = groundLine - o.H - clearance
	} else {
		o.H = ob.MinHeight + e.rng.Float64()*(ob.MaxHeight-ob.MinHeight)
		o.Y = groundLine - o.H
	}

	e.obstacles = append(e.obstacles, o)
}

// updateObstacles translates, prunes, scores, and collision-checks obstacles.
// Traversal is newest-first so in-place removal stays safe. Returns true when
// a collision ended the run; the remaining obstacles are skipped that tick.
func (e *Engine) updateObstacles() bool {
	for i := len(e.obstacles) - 1; i >= 0; i-- {
		o := &e.obstacles[i]
		o.X -= e.speed

		// Fully past the de-spawn threshold
		if o.X+o.W < -e.cfg.Spawn.DespawnMargin {
			e.obstacles = append(e.obstacles[:i], e.obstacles[i+1:]...)
			continue
		}

		if o.Passed {
			continue
		}

		if o.X+o.W < e.player.X {
			o.Passed = true
			points := e.cfg.Score.ObstaclePoints
			e.score += float64(points)
			e.spawnScoreParticle(o.X+o.W/2, o.Y, points)
			e.listener.ObstaclePassed(points)
			continue
		}

		if e.player.Hitbox().Intersects(o.Rect()) {
			e.endRun()
			return true
		}
	}
	return false
}

// endRun freezes the simulation and queues the death burst.
func (e *Engine) endRun() {
	e.running = false

	p := e.player
	cx := p.X + p.W/2
	for i := 0; i < e.cfg.Effects.GameOverParticles; i++ {
		e.particles = append(e.particles, Particle{
			X:    cx,
			Y:    p.Y,
			VX:   (e.rng.Float64() - 0.5) * 6,
			VY:   -e.rng.Float64() * 6,
			Life: e.cfg.Effects.DebrisLifetime,
		})
	}
}

// spawnScoreParticle queues a floating "+N" label above a cleared obstacle.
func (e *Engine) spawnScoreParticle(x, y float64, points int) {
	e.particles = append(e.particles, Particle{
		X:    x,
		Y:    y,
		VX:   (e.rng.Float64() - 0.5) * 2,
		VY:   -3,
		Life: e.cfg.Effects.ScoreTextLifetime,
		Text: fmt.Sprintf("+%d", points),
	})
}

// updateParticles integrates particle motion and prunes expired ones.
func (e *Engine) updateParticles() {
	for i := len(e.particles) - 1; i >= 0; i-- {
		pt := &e.particles[i]
		pt.VY += particleGravity
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--

		if pt.Life <= 0 {
			e.particles = append(e.particles[:i], e.particles[i+1:]...)
		}
	}
}

// updateScore accrues continuous score and reports display-score changes.
func (e *Engine) updateScore(delta float64) {
	e.score += e.cfg.Score.ContinuousRate * delta

	display := int(math.Floor(e.score))
	if display != e.displayScore {
		e.displayScore = display
		if display > e.sessionBest {
			e.sessionBest = display
		}
		e.listener.ScoreChanged(display)
	}
}

// Running reports whether the run is still alive.
func (e *Engine) Running() bool {
	return e.running
}

// Score returns the displayed (floored) score.
func (e *Engine) Score() int {
	return e.displayScore
}

// Best returns the best displayed score this session. It survives Reset.
func (e *Engine) Best() int {
	return e.sessionBest
}

// Speed returns the current scroll speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Player returns a copy of the player state.
func (e *Engine) Player() Player {
	return e.player
}

// Obstacles returns the live obstacle list. Callers must not mutate it.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles
}

// Particles returns the live particle list. Callers must not mutate it.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Location returns the active backdrop.
func (e *Engine) Location() Location {
	return Locations[e.locationIndex]
}

// LocationIndex returns the active backdrop index.
func (e *Engine) LocationIndex() int {
	return e.locationIndex
}
