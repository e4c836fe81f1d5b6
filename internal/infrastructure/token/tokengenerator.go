package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes yields 256 bits of entropy per token.
const tokenBytes = 32

// Generator produces unguessable confirmation tokens suitable for
// embedding in URLs without further escaping.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a fresh URL-safe token. The unpadded base64url
// encoding of 32 random bytes is always 43 characters.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
