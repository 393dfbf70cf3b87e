package spelling

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callSpellCheck(t *testing.T, arguments map[string]interface{}) string {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Name = "spellcheck"
	req.Params.Arguments = arguments

	result, err := HandleSpellCheck(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestHandleSpellCheckMissingInput(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Name = "spellcheck"
	req.Params.Arguments = map[string]interface{}{}

	_, err := HandleSpellCheck(context.Background(), req)
	assert.Error(t, err)
}

func TestHandleSpellCheckText(t *testing.T) {
	text := callSpellCheck(t, map[string]interface{}{
		"text": "# bad coment",
	})

	assert.Contains(t, text, "Found 1 spelling issues:")
	assert.Contains(t, text, "Wrong spelling of a word 'coment' in a comment:")
	assert.Contains(t, text, "# bad coment")
	assert.Contains(t, text, "      ^^^^^^")
	assert.Contains(t, text, "Did you mean:")
}

func TestHandleSpellCheckCleanText(t *testing.T) {
	text := callSpellCheck(t, map[string]interface{}{
		"text": "# a clean comment",
	})
	assert.Equal(t, "No spelling issues found.", text)
}

func TestHandleSpellCheckDisabled(t *testing.T) {
	text := callSpellCheck(t, map[string]interface{}{
		"text":       "# bad coment",
		"dictionary": "",
	})
	assert.Equal(t, "Spelling checker is disabled (no dictionary selected).", text)
}

func TestHandleSpellCheckIgnoreWords(t *testing.T) {
	text := callSpellCheck(t, map[string]interface{}{
		"text":         "# bad coment",
		"ignore_words": "coment",
	})
	assert.Equal(t, "No spelling issues found.", text)
}

func TestHandleSpellCheckPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	content := `"""A speling mistake in the docstring."""
x = 1  # a coment mistake
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	text := callSpellCheck(t, map[string]interface{}{
		"path": path,
	})

	assert.Contains(t, text, "Found 2 spelling issues:")
	assert.Contains(t, text, "Wrong spelling of a word 'speling' in a docstring:")
	assert.Contains(t, text, "Wrong spelling of a word 'coment' in a comment:")
}

func TestHandleSpellCheckLearnModeRequiresPrivateDict(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Name = "spellcheck"
	req.Params.Arguments = map[string]interface{}{
		"text":       "# bad coment",
		"learn_mode": true,
	}

	_, err := HandleSpellCheck(context.Background(), req)
	assert.Error(t, err)
}

func TestHandleSpellCheckLearnMode(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "sample.go")
	dictPath := filepath.Join(dir, "private-dict.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("// a coment mistake\npackage sample\n"), 0644))

	text := callSpellCheck(t, map[string]interface{}{
		"path":              srcPath,
		"private_dict_file": dictPath,
		"learn_mode":        true,
	})
	assert.Contains(t, text, "Stored 1 unknown words to the private dictionary: coment")

	// A second run finds the learned word in the private dictionary
	text = callSpellCheck(t, map[string]interface{}{
		"path":              srcPath,
		"private_dict_file": dictPath,
	})
	assert.Equal(t, "No spelling issues found.", text)
}
