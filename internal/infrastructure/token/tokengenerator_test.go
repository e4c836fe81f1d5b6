package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	token, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, token, 43)

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenBytes)
}

func TestGenerator_Generate_URLSafe(t *testing.T) {
	g := NewGenerator()

	token, err := g.Generate()
	require.NoError(t, err)

	for _, c := range token {
		assert.NotContains(t, "+/=", string(c))
	}
}

func TestGenerator_Generate_Unique(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := g.Generate()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}
