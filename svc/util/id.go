package util

import (
	"strings"

	"github.com/google/uuid"
)

// PasteIDLen is the length of generated paste identifiers.
const PasteIDLen = 8

// NewPasteID returns a short random token: the first 8 hex characters of a
// random UUID. No check is made against existing records, so a collision
// (astronomically unlikely) overwrites the older paste.
func NewPasteID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:PasteIDLen]
}
