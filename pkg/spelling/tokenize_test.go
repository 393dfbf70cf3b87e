package spelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCandidatesPlainWords(t *testing.T) {
	words := extractCandidates("# bad coment")
	assert.Equal(t, []string{"bad", "coment"}, words)
}

func TestExtractCandidatesDropsCodeTokens(t *testing.T) {
	// Mixed-case tokens longer than two characters look like class names
	words := extractCandidates("see MyClassName for details")
	assert.Equal(t, []string{"see", "for", "details"}, words)

	// Underscored tokens look like parameter names
	words = extractCandidates("pass foo_bar here")
	assert.Equal(t, []string{"pass", "here"}, words)

	// Tokens with digits are never prose
	words = extractCandidates("open file123 first")
	assert.Equal(t, []string{"open", "first"}, words)
}

func TestExtractCandidatesKeepsShortMixedCase(t *testing.T) {
	// Two-character mixed-case tokens survive the class-name filter
	words := extractCandidates("an Io error")
	assert.Equal(t, []string{"an", "Io", "error"}, words)
}

func TestExtractCandidatesContractions(t *testing.T) {
	// The apostrophe inside a contraction is part of the word
	words := extractCandidates("# don't touch this")
	assert.Equal(t, []string{"don't", "touch", "this"}, words)
}

func TestExtractCandidatesStripsQuoteArtifacts(t *testing.T) {
	// Quoting apostrophes next to non-letters are stray punctuation
	words := extractCandidates("use 'value' here")
	assert.Equal(t, []string{"use", "value", "here"}, words)

	words = extractCandidates("'leading and trailing'")
	assert.Equal(t, []string{"leading", "and", "trailing"}, words)
}

func TestExtractCandidatesPunctuation(t *testing.T) {
	words := extractCandidates("// first, second; third.")
	assert.Equal(t, []string{"first", "second", "third"}, words)
}

func TestExtractCandidatesEmpty(t *testing.T) {
	assert.Empty(t, extractCandidates(""))
	assert.Empty(t, extractCandidates("   "))
	assert.Empty(t, extractCandidates("# ----------"))
}
