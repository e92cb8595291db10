package utils

/**
 * Helpers that format the keys of the Redis (key, value) pairs, so that every
 * caller builds a given key the same way.
 */

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// FormatGameInfoKey returns the cache key of a validated game. The name is
// normalised and hashed so arbitrary user input maps to a fixed-size key.
func FormatGameInfoKey(gameName string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(gameName))))
	return fmt.Sprintf("game:%s:info", hex.EncodeToString(sum[:16]))
}

func FormatChatHistoryKey(sessionID string) string {
	return fmt.Sprintf("chat:%s:history", sessionID)
}
