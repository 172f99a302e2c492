package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "sid"

// DefaultTTL is the fixed session lifetime.
const DefaultTTL = 7 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Session binds a browser cookie token to a user id.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session lifetime has lapsed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// NewToken returns a cryptographically random session token.
func NewToken() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
