package game

const (
	// frameMillis is the nominal duration of one 60Hz frame.
	frameMillis = 16.67

	// maxDeltaMillis caps the raw frame delta so a stalled tab or suspended
	// process cannot fast-forward the simulation.
	maxDeltaMillis = 60
)

// NormalizeDelta converts a raw elapsed-time delta in milliseconds into units
// of one nominal 60Hz frame. Negative deltas clamp to zero so time never
// moves backward.
func NormalizeDelta(deltaMillis float64) float64 {
	if deltaMillis < 0 {
		deltaMillis = 0
	}
	if deltaMillis > maxDeltaMillis {
		deltaMillis = maxDeltaMillis
	}
	return deltaMillis / frameMillis
}
