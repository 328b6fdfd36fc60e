package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/dino-rush/internal/config"
)

// recordListener captures emitted events for assertions.
type recordListener struct {
	starts int
	passes int
	scores []int
	ends   []int
}

func (r *recordListener) RunStarted()            { r.starts++ }
func (r *recordListener) ObstaclePassed(int)     { r.passes++ }
func (r *recordListener) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recordListener) GameEnded(score int)    { r.ends = append(r.ends, score) }

func newTestEngine(seed int64, l Listener) *Engine {
	return New(config.DefaultGame(), seed, l)
}

func TestFirstTickScenario(t *testing.T) {
	e := newTestEngine(1, nil)
	cfg := config.DefaultGame()

	baseY := e.player.BaseY
	e.Advance(1)

	if e.player.Y != baseY {
		t.Errorf("Player should stay at baseY %f, got %f", baseY, e.player.Y)
	}
	if got, want := e.speed, cfg.Speed.Initial+cfg.Speed.Increment; math.Abs(got-want) > 1e-12 {
		t.Errorf("Speed should be %f after one tick, got %f", want, got)
	}
	if e.Score() != 0 {
		t.Errorf("Displayed score should stay 0 until accumulated >= 1, got %d", e.Score())
	}
	if math.Abs(e.score-cfg.Score.ContinuousRate) > 1e-12 {
		t.Errorf("Raw score should be %f, got %f", cfg.Score.ContinuousRate, e.score)
	}
	if len(e.obstacles) != 0 {
		t.Errorf("No spawn should be pending on the first tick, got %d obstacles", len(e.obstacles))
	}
}

func TestScoreMonotonic(t *testing.T) {
	e := newTestEngine(42, nil)

	prev := 0.0
	for i := 0; i < 500 && e.Running(); i++ {
		if i%30 == 0 {
			e.Jump()
		}
		e.Advance(1)
		if e.score < prev {
			t.Fatalf("Score decreased at tick %d: %f -> %f", i, prev, e.score)
		}
		prev = e.score
	}
}

func TestDisplayScoreAccrues(t *testing.T) {
	e := newTestEngine(1, nil)

	// 0.05 per normalized frame: 19 ticks stay below 1, the 20th reaches it.
	for i := 0; i < 19; i++ {
		e.Advance(1)
	}
	if e.Score() != 0 {
		t.Errorf("Score should still display 0 after 19 ticks, got %d", e.Score())
	}
	e.Advance(1)
	if e.Score() != 1 {
		t.Errorf("Score should display 1 after 20 ticks, got %d", e.Score())
	}
}

func TestNegativeDeltaClamped(t *testing.T) {
	e := newTestEngine(1, nil)
	e.Advance(1)
	before := e.score
	speedBefore := e.speed

	e.Advance(-5)

	if e.score != before {
		t.Errorf("Negative delta must not change score: %f -> %f", before, e.score)
	}
	if e.speed != speedBefore {
		t.Errorf("Negative delta must not change speed: %f -> %f", speedBefore, e.speed)
	}
}

func TestJumpPhysics(t *testing.T) {
	e := newTestEngine(1, nil)
	baseY := e.player.BaseY

	e.Jump()
	if e.player.OnGround {
		t.Fatal("Jump should leave the ground")
	}

	e.Advance(1)
	if e.player.Y >= baseY {
		t.Errorf("Player should rise after jump, y=%f baseY=%f", e.player.Y, baseY)
	}

	// Gravity eventually brings the player back and clamps to rest.
	for i := 0; i < 200 && !e.player.OnGround; i++ {
		e.Advance(1)
	}
	if !e.player.OnGround {
		t.Fatal("Player never landed")
	}
	if e.player.Y != baseY {
		t.Errorf("Landing should clamp to baseY %f, got %f", baseY, e.player.Y)
	}
	if e.player.VY != 0 {
		t.Errorf("Landing should zero velocity, got %f", e.player.VY)
	}
}

func TestDuckOnlyOnGround(t *testing.T) {
	e := newTestEngine(1, nil)

	e.SetDuck(true)
	e.Advance(1)
	if !e.player.Duck {
		t.Error("Grounded player with duck held should duck")
	}

	// Ducking blocks jumping
	e.Jump()
	if !e.player.OnGround {
		t.Error("Jump while ducking should be ignored")
	}

	e.SetDuck(false)
	e.Advance(1)
	e.Jump()
	e.SetDuck(true)
	e.Advance(1)
	if e.player.Duck {
		t.Error("Airborne player should not duck")
	}
}

func TestDuckHitbox(t *testing.T) {
	e := newTestEngine(1, nil)

	full := e.player.Hitbox()
	e.SetDuck(true)
	e.Advance(1)
	ducked := e.player.Hitbox()

	wantH := math.Round(e.player.H * e.player.DuckRatio)
	if ducked.H != wantH {
		t.Errorf("Duck height should be %f, got %f", wantH, ducked.H)
	}
	if ducked.H >= full.H {
		t.Error("Ducking must strictly reduce hitbox height")
	}
	wantOffset := math.Round(e.player.H - wantH)
	if got := ducked.Y - full.Y; got != wantOffset {
		t.Errorf("Duck should shift top edge down by %f, got %f", wantOffset, got)
	}
	if ducked.Bottom() != full.Bottom() {
		t.Errorf("Duck should keep feet on the ground: bottom %f vs %f", ducked.Bottom(), full.Bottom())
	}
}

func TestObstaclePruning(t *testing.T) {
	e := newTestEngine(1, nil)
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: -61, W: 0, H: 30})

	e.Advance(1)

	if len(e.obstacles) != 0 {
		t.Errorf("Obstacle past the de-spawn threshold should be pruned, %d left", len(e.obstacles))
	}
}

func TestObstacleKeptUntilFullyOffscreen(t *testing.T) {
	e := newTestEngine(1, nil)
	// Right edge still above the threshold after one translation by speed.
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: -50, W: 5, H: 30, Passed: true})

	e.Advance(1)

	if len(e.obstacles) != 1 {
		t.Fatalf("Obstacle not yet past the threshold should survive, %d left", len(e.obstacles))
	}
}

func TestObstaclePassScoring(t *testing.T) {
	rec := &recordListener{}
	e := newTestEngine(1, rec)
	cfg := config.DefaultGame()

	// Fully behind the player after the next translation.
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindRock, X: 20, W: 10, Y: 186, H: 34})
	e.Advance(1)

	o := e.obstacles[0]
	if !o.Passed {
		t.Fatal("Obstacle behind the player should be marked passed")
	}
	if e.score < float64(cfg.Score.ObstaclePoints) {
		t.Errorf("Pass should award %d points, raw score %f", cfg.Score.ObstaclePoints, e.score)
	}
	if rec.passes != 1 {
		t.Errorf("Expected 1 ObstaclePassed event, got %d", rec.passes)
	}

	// A floating score label should be queued.
	found := false
	for _, pt := range e.particles {
		if pt.Text == "+10" {
			found = true
		}
	}
	if !found {
		t.Error("Expected a +10 score particle")
	}

	// Passing is awarded once.
	e.Advance(1)
	if rec.passes != 1 {
		t.Errorf("Pass should be awarded once, got %d events", rec.passes)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	rec := &recordListener{}
	e := newTestEngine(1, rec)

	// Overlap the player's box directly.
	p := e.player
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: p.X, Y: p.Y, W: p.W, H: p.H})
	e.Advance(1)

	if e.Running() {
		t.Fatal("Collision should end the run")
	}
	if len(rec.ends) != 1 {
		t.Fatalf("Expected 1 GameEnded event, got %d", len(rec.ends))
	}

	debris := 0
	for _, pt := range e.particles {
		if pt.IsDebris() {
			debris++
		}
	}
	if want := config.DefaultGame().Effects.GameOverParticles; debris != want {
		t.Errorf("Death burst should queue %d debris particles, got %d", want, debris)
	}
}

func TestFrozenAfterGameOver(t *testing.T) {
	e := newTestEngine(1, nil)
	p := e.player
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: p.X, Y: p.Y, W: p.W, H: p.H})
	e.Advance(1)
	if e.Running() {
		t.Fatal("Setup: run should have ended")
	}

	score := e.score
	speed := e.speed
	obstacles := len(e.obstacles)
	particlesBefore := len(e.particles)

	e.Advance(1)

	if e.score != score {
		t.Errorf("Score changed while ended: %f -> %f", score, e.score)
	}
	if e.speed != speed {
		t.Errorf("Speed changed while ended: %f -> %f", speed, e.speed)
	}
	if len(e.obstacles) != obstacles {
		t.Errorf("Obstacles changed while ended: %d -> %d", obstacles, len(e.obstacles))
	}
	if particlesBefore == 0 {
		t.Fatal("Setup: expected queued death-burst particles")
	}

	// Only particle decay continues; the burst eventually drains.
	for i := 0; i < config.DefaultGame().Effects.DebrisLifetime+1; i++ {
		e.Advance(1)
	}
	if len(e.particles) != 0 {
		t.Errorf("Death burst should decay to nothing, %d left", len(e.particles))
	}
}

func TestJumpWhileEndedResets(t *testing.T) {
	rec := &recordListener{}
	e := newTestEngine(1, rec)
	e.CycleLocation()
	locIdx := e.LocationIndex()

	p := e.player
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: p.X, Y: p.Y, W: p.W, H: p.H})
	for i := 0; i < 25; i++ { // Accrue some display score before dying
		e.Advance(1)
	}
	if e.Running() {
		t.Fatal("Setup: run should have ended")
	}
	best := e.Best()

	e.Jump()

	if !e.Running() {
		t.Fatal("Jump after game over should restart the run")
	}
	if e.Score() != 0 {
		t.Errorf("Reset should zero the score, got %d", e.Score())
	}
	if e.LocationIndex() != locIdx {
		t.Error("Reset should preserve the active location")
	}
	if e.Best() != best {
		t.Errorf("Reset should preserve session best %d, got %d", best, e.Best())
	}
	if rec.starts != 2 { // Initial start plus restart
		t.Errorf("Expected 2 RunStarted events, got %d", rec.starts)
	}
}

func TestSpawnDistributions(t *testing.T) {
	e := newTestEngine(7, nil)
	cfg := config.DefaultGame()
	groundLine := cfg.Canvas.Height - cfg.Canvas.GroundHeight

	seen := make(map[Kind]int)
	for i := 0; i < 20; i++ {
		e.spawnObstacle()
	}

	for _, o := range e.obstacles {
		seen[o.Kind]++

		if o.X != cfg.Canvas.Width+cfg.Spawn.EdgeMargin {
			t.Errorf("Obstacle should spawn at the right edge plus margin, got x=%f", o.X)
		}
		if o.W < cfg.Obstacles.MinWidth || o.W >= cfg.Obstacles.MaxWidth {
			t.Errorf("Width %f outside [%f,%f)", o.W, cfg.Obstacles.MinWidth, cfg.Obstacles.MaxWidth)
		}

		switch o.Kind {
		case KindBird:
			if o.H != cfg.Obstacles.BirdHeight {
				t.Errorf("Bird height should be %f, got %f", cfg.Obstacles.BirdHeight, o.H)
			}
			clearance := groundLine - o.H - o.Y
			min := cfg.Obstacles.BirdMinClearance
			max := min + cfg.Obstacles.BirdClearanceRange
			if clearance < min || clearance >= max {
				t.Errorf("Bird clearance %f outside [%f,%f)", clearance, min, max)
			}
		case KindCactus, KindRock:
			if o.H < cfg.Obstacles.MinHeight || o.H >= cfg.Obstacles.MaxHeight {
				t.Errorf("Height %f outside [%f,%f)", o.H, cfg.Obstacles.MinHeight, cfg.Obstacles.MaxHeight)
			}
			if o.Y != groundLine-o.H {
				t.Errorf("Ground obstacle should rest on the ground line, y=%f h=%f", o.Y, o.H)
			}
		default:
			t.Errorf("Unknown obstacle kind %q", o.Kind)
		}
	}

	if len(seen) < 2 {
		t.Errorf("20 spawns should produce at least two kinds, got %v", seen)
	}
}

func TestSpawnTiming(t *testing.T) {
	e := newTestEngine(3, nil)
	cfg := config.DefaultGame()

	// The first spawn happens once the tick counter exceeds the initial interval.
	for i := 0; i < int(cfg.Spawn.InitialInterval); i++ {
		e.Advance(1)
		if len(e.obstacles) != 0 {
			t.Fatalf("Spawn fired early at tick %d", i+1)
		}
	}
	e.Advance(1)
	if len(e.obstacles) != 1 {
		t.Fatalf("Expected the first spawn after %d ticks, got %d obstacles", int(cfg.Spawn.InitialInterval)+1, len(e.obstacles))
	}

	// The redrawn interval falls inside the configured range.
	if e.spawnInterval < cfg.Spawn.MinInterval || e.spawnInterval >= cfg.Spawn.MaxInterval {
		t.Errorf("Redrawn interval %f outside [%f,%f)", e.spawnInterval, cfg.Spawn.MinInterval, cfg.Spawn.MaxInterval)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (*Engine, int) {
		e := newTestEngine(12345, nil)
		ticks := 0
		for i := 0; i < 2000 && e.Running(); i++ {
			if i%40 == 0 {
				e.Jump()
			}
			if i%90 < 20 {
				e.SetDuck(true)
			} else {
				e.SetDuck(false)
			}
			e.Advance(1)
			ticks++
		}
		return e, ticks
	}

	e1, t1 := run()
	e2, t2 := run()

	if t1 != t2 {
		t.Errorf("Determinism failed: tick counts differ %d vs %d", t1, t2)
	}
	if e1.Score() != e2.Score() {
		t.Errorf("Determinism failed: scores differ %d vs %d", e1.Score(), e2.Score())
	}
	if len(e1.obstacles) != len(e2.obstacles) {
		t.Errorf("Determinism failed: obstacle counts differ %d vs %d", len(e1.obstacles), len(e2.obstacles))
	}
}

func TestNormalizeDelta(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		want  float64
	}{
		{name: "one nominal frame", in: 16.67, want: 1.0},
		{name: "negative clamps to zero", in: -10, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "capped at 60ms", in: 250, want: 60 / 16.67},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDelta(tc.in)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("NormalizeDelta(%f) = %f, expected %f", tc.in, got, tc.want)
			}
		})
	}
}

func TestCycleLocationWraps(t *testing.T) {
	e := newTestEngine(1, nil)
	for i := 0; i < len(Locations); i++ {
		e.CycleLocation()
	}
	if e.LocationIndex() != 0 {
		t.Errorf("Cycling through all locations should wrap to 0, got %d", e.LocationIndex())
	}
}
