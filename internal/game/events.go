package game

// Listener receives simulation events. The engine has no knowledge of
// accounts or persistence; anything that should happen on scoring or game
// over is wired in through this interface.
//
// Callbacks run synchronously inside Advance, so implementations must not
// block the tick.
type Listener interface {
	// RunStarted fires when a fresh run begins (initial start and every reset).
	RunStarted()

	// ObstaclePassed fires once per obstacle cleared, with the points awarded.
	ObstaclePassed(points int)

	// ScoreChanged fires whenever the displayed (floored) score changes.
	ScoreChanged(score int)

	// GameEnded fires once per run, after the collision tick completes,
	// with the final displayed score.
	GameEnded(score int)
}

// NopListener is a Listener that ignores all events.
type NopListener struct{}

func (NopListener) RunStarted()        {}
func (NopListener) ObstaclePassed(int) {}
func (NopListener) ScoreChanged(int)   {}
func (NopListener) GameEnded(int)      {}
