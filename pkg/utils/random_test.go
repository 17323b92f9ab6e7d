package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.Len(t, id, 16)
		_, err := hex.DecodeString(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
