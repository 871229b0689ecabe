package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExcerptLen is how much of the content the derived description keeps.
const ExcerptLen = 150

type Paste struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateParams struct {
	Content     string
	Title       string
	Description string
}

func DefaultTitle(id string) string {
	return fmt.Sprintf("Paste %s", id)
}

// Excerpt returns the stored description, or one derived from the content:
// the first ExcerptLen characters with line breaks flattened to spaces and
// "..." appended when the content is longer than that. Counted in runes so
// multibyte content is never split mid-character.
func (p *Paste) Excerpt() string {
	if p.Description != "" {
		return p.Description
	}
	runes := []rune(p.Content)
	if len(runes) <= ExcerptLen {
		return p.Content
	}
	d := string(runes[:ExcerptLen]) + "..."
	d = strings.ReplaceAll(d, "\n", " ")
	d = strings.ReplaceAll(d, "\r", " ")
	return d
}
