package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns an opaque unique identifier with the given prefix.
func NewID(prefix string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return prefix + "-" + hex.EncodeToString(buf)
}
