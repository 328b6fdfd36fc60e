// Package account implements user accounts for the runner: registration and
// login, coin balances, skin purchases, best scores, and recent game history,
// persisted through the abstract key-value store.
package account

// historyCap bounds the recent-games list per account.
const historyCap = 20

// GameRecord is one finished run in an account's history.
type GameRecord struct {
	Date     string `json:"date"`     // ISO-8601
	Score    int    `json:"score"`
	Duration int    `json:"duration"` // Seconds
}

// Record is the persisted account payload. Field names match the stored JSON
// written by the original client, so existing saves remain readable.
type Record struct {
	Pwd              string       `json:"pwd"`
	Coins            int          `json:"coins"`
	Purchased        []string     `json:"purchased"`
	Selected         string       `json:"selected"`
	Best             int          `json:"best"`
	RegistrationDate string       `json:"registrationDate"`
	TotalTimePlayed  int          `json:"totalTimePlayed"` // Seconds
	RecentGames      []GameRecord `json:"recentGames"`
}

// Account is a username paired with its record, as handed to callers.
type Account struct {
	Username string
	Record
}

// Owns reports whether the account has unlocked the given skin.
func (r Record) Owns(skinID string) bool {
	for _, id := range r.Purchased {
		if id == skinID {
			return true
		}
	}
	return false
}
