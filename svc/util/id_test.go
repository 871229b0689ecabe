package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPasteIDLength(t *testing.T) {
	id := NewPasteID()
	assert.Len(t, id, PasteIDLen)
	for _, r := range id {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewPasteIDSequentialCallsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPasteID()
		assert.False(t, seen[id], "duplicate id %s after %d draws", id, i)
		seen[id] = true
	}
}
