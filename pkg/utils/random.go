package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateShortCode draws length characters uniformly from the 62-char
// alphanumeric alphabet. Uniqueness, not unpredictability, is the goal;
// the unique index on links.short_code is the real guard.
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}

// GenerateAPIKey generates a UUID string to be used as an API key
func GenerateAPIKey() string {
	return uuid.NewString()
}

// GenerateOwnerID mints the opaque identity string stored as links.owner_id
func GenerateOwnerID() string {
	return uuid.NewString()
}
