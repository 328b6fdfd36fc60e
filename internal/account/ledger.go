package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/dino-rush/internal/skins"
	"github.com/vovakirdan/dino-rush/internal/storage"
)

// usersKey is the storage key holding the whole account collection, keyed by
// username. It matches the key used by the original client.
const usersKey = "dino_users"

// Ledger manages accounts and the single active session. It is designed for
// one session at a time; every mutation persists the full record immediately
// with last-writer-wins semantics.
type Ledger struct {
	store   storage.Store
	current string // Active username; empty means no session
	now     func() time.Time
}

// NewLedger creates a ledger over the given store.
func NewLedger(store storage.Store) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
	}
}

// loadUsers reads the account collection. Storage read failures degrade to an
// empty collection so a broken backend never takes the game down.
func (l *Ledger) loadUsers() map[string]Record {
	users := make(map[string]Record)
	if _, err := l.store.Get(usersKey, &users); err != nil {
		return make(map[string]Record)
	}
	return users
}

// saveUsers writes the full account collection back.
func (l *Ledger) saveUsers(users map[string]Record) error {
	if err := l.store.Set(usersKey, users); err != nil {
		return fmt.Errorf("%w: saving accounts: %v", ErrStorage, err)
	}
	return nil
}

// Register creates a new account and begins a session for it.
func (l *Ledger) Register(username, password string) (*Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	users := l.loadUsers()
	if _, exists := users[username]; exists {
		return nil, fmt.Errorf("%w: user %q already exists", ErrConflict, username)
	}

	rec := Record{
		Pwd:              HashPassword(password),
		Coins:            0,
		Purchased:        []string{skins.DefaultID},
		Selected:         skins.DefaultID,
		Best:             0,
		RegistrationDate: l.now().UTC().Format(time.RFC3339),
		RecentGames:      []GameRecord{},
	}
	users[username] = rec

	if err := l.saveUsers(users); err != nil {
		return nil, err
	}

	l.current = username
	return &Account{Username: username, Record: rec}, nil
}

// Login verifies credentials and begins a session.
func (l *Ledger) Login(username, password string) (*Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	users := l.loadUsers()
	rec, exists := users[username]
	if !exists {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	if !VerifyPassword(password, rec.Pwd) {
		return nil, fmt.Errorf("%w: wrong password", ErrAuth)
	}

	l.current = username
	return &Account{Username: username, Record: rec}, nil
}

// Logout ends the active session. Safe to call with no session.
func (l *Ledger) Logout() {
	l.current = ""
}

// Current returns the active account, or false when no session is active.
// The record is re-read from the store on every call.
func (l *Ledger) Current() (*Account, bool) {
	if l.current == "" {
		return nil, false
	}

	users := l.loadUsers()
	rec, exists := users[l.current]
	if !exists {
		return nil, false
	}
	return &Account{Username: l.current, Record: rec}, true
}

// mutate applies fn to the active account's record and persists it.
func (l *Ledger) mutate(fn func(rec *Record) error) error {
	if l.current == "" {
		return fmt.Errorf("%w: no active session", ErrAuth)
	}

	users := l.loadUsers()
	rec, exists := users[l.current]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, l.current)
	}

	if err := fn(&rec); err != nil {
		return err
	}

	users[l.current] = rec
	return l.saveUsers(users)
}

// AwardCoins adds coins to the active account's balance.
func (l *Ledger) AwardCoins(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative coin amount", ErrValidation)
	}
	return l.mutate(func(rec *Record) error {
		rec.Coins += amount
		return nil
	})
}

// RecordBest updates the account's best score if the given score beats it.
// Returns true iff a new record was set.
func (l *Ledger) RecordBest(score int) (bool, error) {
	improved := false
	err := l.mutate(func(rec *Record) error {
		if score > rec.Best {
			rec.Best = score
			improved = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return improved, nil
}

// RecordGameResult prepends a run to the account's history (capped at the 20
// most recent) and accumulates total play time.
func (l *Ledger) RecordGameResult(score, durationSeconds int) error {
	return l.mutate(func(rec *Record) error {
		entry := GameRecord{
			Date:     l.now().UTC().Format(time.RFC3339),
			Score:    score,
			Duration: durationSeconds,
		}
		rec.RecentGames = append([]GameRecord{entry}, rec.RecentGames...)
		if len(rec.RecentGames) > historyCap {
			rec.RecentGames = rec.RecentGames[:historyCap]
		}
		rec.TotalTimePlayed += durationSeconds
		return nil
	})
}

// SelectSkin sets the account's equipped skin.
func (l *Ledger) SelectSkin(id string) error {
	if !skins.Exists(id) {
		return fmt.Errorf("%w: skin %q", ErrNotFound, id)
	}
	return l.mutate(func(rec *Record) error {
		rec.Selected = id
		return nil
	})
}

// PurchaseSkin unlocks a skin for coins and equips it.
func (l *Ledger) PurchaseSkin(id string) error {
	skin := skins.Resolve(id)
	if !skins.Exists(id) {
		return fmt.Errorf("%w: skin %q", ErrNotFound, id)
	}

	return l.mutate(func(rec *Record) error {
		if rec.Owns(id) {
			return fmt.Errorf("%w: skin %q already unlocked", ErrConflict, id)
		}
		if rec.Coins < skin.Price {
			return fmt.Errorf("%w: need %d coins, have %d", ErrInsufficientFunds, skin.Price, rec.Coins)
		}
		rec.Coins -= skin.Price
		rec.Purchased = append(rec.Purchased, id)
		rec.Selected = id
		return nil
	})
}

// EquippedSkin resolves the active account's selected skin, falling back to
// the default when no session is active.
func (l *Ledger) EquippedSkin() skins.Skin {
	acc, ok := l.Current()
	if !ok {
		return skins.Resolve(skins.DefaultID)
	}
	return skins.Resolve(acc.Selected)
}
