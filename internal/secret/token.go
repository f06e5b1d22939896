package secret

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Token returns a URL-safe secret built from n cryptographically secure
// random bytes. The encoded string is longer than n because of base64
// expansion; callers choose entropy in bytes, not output characters.
func Token(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("secret length must be at least 1 byte, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
