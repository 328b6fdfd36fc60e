package account

import (
	"strconv"
	"unicode/utf16"
)

// HashPassword computes the legacy password hash: the classic djb2-style
// string hash over UTF-16 code units with 32-bit wraparound, rendered as a
// decimal string. It is deliberately compatible with hashes produced by the
// original browser client so existing stored accounts keep working.
//
// This is not a password hash in any cryptographic sense. See DESIGN.md for
// the migration decision.
func HashPassword(password string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(password)) {
		h = (h << 5) - h + int32(u)
	}
	return strconv.FormatInt(int64(h), 10)
}

// VerifyPassword reports whether password matches the stored legacy hash.
func VerifyPassword(password, storedHash string) bool {
	return HashPassword(password) == storedHash
}
