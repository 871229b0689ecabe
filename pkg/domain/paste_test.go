package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Paste ab12cd34", DefaultTitle("ab12cd34"))
}

func TestExcerptStoredDescriptionWins(t *testing.T) {
	p := &Paste{Content: strings.Repeat("x", 500), Description: "my description"}
	assert.Equal(t, "my description", p.Excerpt())
}

func TestExcerptShortContentUnmodified(t *testing.T) {
	p := &Paste{Content: "hello\nworld"}
	assert.Equal(t, "hello\nworld", p.Excerpt())
}

func TestExcerptExactLimitUnmodified(t *testing.T) {
	content := strings.Repeat("a", ExcerptLen)
	p := &Paste{Content: content}
	assert.Equal(t, content, p.Excerpt())
}

func TestExcerptTruncatesMultibyteOnRuneBoundary(t *testing.T) {
	content := "x" + strings.Repeat("世", 199)
	p := &Paste{Content: content}
	got := p.Excerpt()
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, ExcerptLen+3, utf8.RuneCountInString(got))
	assert.Equal(t, string([]rune(content)[:ExcerptLen])+"...", got)
}

func TestExcerptShortMultibyteUnmodified(t *testing.T) {
	// 160 bytes but only 80 runes: under the limit, so no truncation.
	content := strings.Repeat("界", 80)
	p := &Paste{Content: content}
	assert.Equal(t, content, p.Excerpt())
}

func TestExcerptTruncatesAndStripsNewlines(t *testing.T) {
	content := strings.Repeat("line1\n", 100)
	p := &Paste{Content: content}
	got := p.Excerpt()
	assert.Len(t, got, ExcerptLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "\n")
	assert.NotContains(t, got, "\r")
	assert.Equal(t, strings.ReplaceAll(content[:ExcerptLen], "\n", " ")+"...", got)
}
