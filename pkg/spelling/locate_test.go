package spelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateBoundedMatch(t *testing.T) {
	col, indicator := locate("coment", "# bad coment")
	assert.Equal(t, 6, col)
	assert.Equal(t, "      ^^^^^^", indicator)
}

func TestLocateWordBoundaries(t *testing.T) {
	// "an" must not be found inside "bananas"
	col, indicator := locate("an", "bananas an apple")
	assert.Equal(t, 8, col)
	assert.Equal(t, "        ^^", indicator)
}

func TestLocateCaseInsensitive(t *testing.T) {
	// Candidates are lower-cased before lookup, the line is not
	col, _ := locate("coment", "# Bad Coment")
	assert.Equal(t, 6, col)
}

func TestLocateFallbackIndex(t *testing.T) {
	// No non-word boundary around the occurrence, plain index applies
	col, _ := locate("oment", "# coment")
	assert.Equal(t, 3, col)
}

func TestLocateMissingWord(t *testing.T) {
	col, indicator := locate("absent", "# nothing here")
	assert.Equal(t, 0, col)
	assert.Equal(t, "^^^^^^", indicator)
}
