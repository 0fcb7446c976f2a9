package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// NewMatchID returns a short random identifier used to tie the log lines of
// one game together.
func NewMatchID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(bytes)
}
