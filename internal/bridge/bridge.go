// Package bridge connects simulation events to the account ledger and to the
// device-wide best score. Ledger and storage failures are logged and never
// allowed to interrupt a simulation tick.
package bridge

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-rush/internal/account"
	"github.com/vovakirdan/dino-rush/internal/game"
	"github.com/vovakirdan/dino-rush/internal/storage"
)

// bestKey is the storage key for the best score seen on this device,
// independent of any account. Matches the key used by the original client.
const bestKey = "dino_best"

// coinsPerObstacle is the coin reward for each cleared obstacle.
const coinsPerObstacle = 1

// Bridge implements game.Listener. One bridge serves one engine.
type Bridge struct {
	ledger *account.Ledger
	store  storage.Store
	logger *log.Logger

	globalBest int
	runStart   time.Time
	now        func() time.Time
}

// New creates a bridge and loads the persisted device best.
// Logger may be nil, in which case the default logger is used.
func New(ledger *account.Ledger, store storage.Store, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}

	b := &Bridge{
		ledger: ledger,
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	var best int
	if _, err := store.Get(bestKey, &best); err != nil {
		// Degrade to zero; the next record will rewrite the key.
		b.logger.Warn("could not read device best", "error", err)
	}
	b.globalBest = best

	return b
}

// GlobalBest returns the best score seen on this device.
func (b *Bridge) GlobalBest() int {
	return b.globalBest
}

// RunStarted records the wall-clock start of a run.
func (b *Bridge) RunStarted() {
	b.runStart = b.now()
}

// ObstaclePassed awards coins when a session is active.
func (b *Bridge) ObstaclePassed(points int) {
	if _, ok := b.ledger.Current(); !ok {
		return
	}
	if err := b.ledger.AwardCoins(coinsPerObstacle); err != nil {
		b.logger.Warn("could not award coins", "error", err)
	}
}

// ScoreChanged tracks and persists the device-wide best score.
func (b *Bridge) ScoreChanged(score int) {
	if score <= b.globalBest {
		return
	}
	b.globalBest = score
	if err := b.store.Set(bestKey, score); err != nil {
		b.logger.Warn("could not persist device best", "error", err)
	}
}

// GameEnded records the run in the account history, then the personal best.
// The history write deliberately happens first; both persist independently.
func (b *Bridge) GameEnded(score int) {
	if _, ok := b.ledger.Current(); !ok {
		return
	}

	duration := int(b.now().Sub(b.runStart).Seconds())
	if duration < 0 {
		duration = 0
	}

	if err := b.ledger.RecordGameResult(score, duration); err != nil {
		b.logger.Warn("could not record game result", "error", err)
	}
	if _, err := b.ledger.RecordBest(score); err != nil {
		b.logger.Warn("could not record best score", "error", err)
	}
}

// Ensure Bridge implements game.Listener
var _ game.Listener = (*Bridge)(nil)
