package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomURLToken returns n random bytes encoded as unpadded URL-safe base64,
// suitable for OAuth state values and query strings.
func RandomURLToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
