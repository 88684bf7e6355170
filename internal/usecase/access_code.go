package usecase

import (
	"crypto/rand"
	"fmt"
)

const (
	accessCodeLength   = 8
	accessCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// newAccessCode returns an 8-character uppercase base-36 token.
//
// Uniqueness is best-effort: the token space (36^8) makes collisions
// overwhelmingly unlikely for the expected order volume, and no re-check is
// performed against existing lotes.
func newAccessCode() (string, error) {
	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating access code: %w", err)
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}
	return string(buf), nil
}
