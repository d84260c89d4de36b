package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const eventCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateEventCode returns length uniformly random uppercase ASCII letters.
// Codes are for sharing, not for access control.
func GenerateEventCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	max := big.NewInt(int64(len(eventCodeAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		b[i] = eventCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}
