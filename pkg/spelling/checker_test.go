package spelling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDict is a deterministic dictionary for checker tests: a fixed word
// set and a fixed suggestion list for every unknown word.
type fakeDict struct {
	words       map[string]bool
	suggestions []string
}

func (d *fakeDict) Check(word string) bool {
	return d.words[word]
}

func (d *fakeDict) Suggest(word string) []string {
	return d.suggestions
}

func newFakeChecker(dict *fakeDict) *Checker {
	return &Checker{
		enabled: true,
		dict:    dict,
		ignore:  map[string]bool{"param": true, "nolint": true},
	}
}

func TestOpenDisabledWithoutDictionary(t *testing.T) {
	checker, err := Open(Config{})
	require.NoError(t, err)
	assert.False(t, checker.Enabled())

	diags, err := checker.CheckComment("# zzyzx gibberish", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.NoError(t, checker.Close())
}

func TestOpenDisabledWithUnknownDictionary(t *testing.T) {
	checker, err := Open(Config{Dictionary: "xx_XX"})
	require.NoError(t, err)
	assert.False(t, checker.Enabled())
}

func TestOpenLearnModeRequiresPrivateDict(t *testing.T) {
	_, err := Open(Config{Dictionary: "en_US", LearnMode: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private dictionary")
}

func TestCheckCommentReportsUnknownWord(t *testing.T) {
	dict := &fakeDict{
		words:       map[string]bool{"bad": true},
		suggestions: []string{"comment", "moment"},
	}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckComment("# bad coment", 42)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	diag := diags[0]
	assert.Equal(t, MsgWrongSpellingInComment, diag.MsgID)
	assert.Equal(t, KindComment, diag.Kind)
	assert.Equal(t, 42, diag.LineNumber)
	assert.Equal(t, 6, diag.Column)
	assert.Equal(t, "coment", diag.Word)
	assert.Equal(t, "# bad coment", diag.Line)
	assert.Equal(t, "      ^^^^^^", diag.Indicator)
	assert.Equal(t, []string{"comment", "moment"}, diag.Suggestions)
}

func TestCheckDocstringLineNumbers(t *testing.T) {
	dict := &fakeDict{words: map[string]bool{"first": true, "line": true}}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckDocstring("first line\nsecnod line", 10)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, MsgWrongSpellingInDocstring, diags[0].MsgID)
	assert.Equal(t, 11, diags[0].LineNumber)
	assert.Equal(t, "secnod", diags[0].Word)
}

func TestCheckCommentBlockLineNumbers(t *testing.T) {
	dict := &fakeDict{words: map[string]bool{"good": true}}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckComment("/* good\nbda */", 7)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, 8, diags[0].LineNumber)
	assert.Equal(t, "bda", diags[0].Word)
}

func TestSuggestionsCapped(t *testing.T) {
	dict := &fakeDict{
		words:       map[string]bool{},
		suggestions: []string{"one", "two", "three", "four", "five", "six"},
	}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckComment("# wrod", 1)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"one", "two", "three", "four"}, diags[0].Suggestions)
}

func TestIgnoreWordsCaseInsensitive(t *testing.T) {
	dict := &fakeDict{words: map[string]bool{}}
	checker := newFakeChecker(dict)
	checker.ignore["zzyzx"] = true

	diags, err := checker.CheckComment("# Zzyzx ZZYZX zzyzx", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestBuiltinIgnoreWords(t *testing.T) {
	dict := &fakeDict{words: map[string]bool{}}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckComment("# param nolint", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestLiteralPrefixStripped(t *testing.T) {
	dict := &fakeDict{words: map[string]bool{"text": true}}
	checker := newFakeChecker(dict)

	diags, err := checker.CheckComment("# u'text r'text", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestEndToEndWithRealDictionary(t *testing.T) {
	checker, err := Open(Config{Dictionary: "en_US"})
	require.NoError(t, err)
	require.True(t, checker.Enabled())
	defer checker.Close()

	diags, err := checker.CheckComment("# bad coment", 1)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "coment", diags[0].Word)
	assert.Equal(t, "      ^^^^^^", diags[0].Indicator)
	assert.Contains(t, diags[0].Suggestions, "comment")
}

func TestLearnModeStoresWordsOnce(t *testing.T) {
	dir := t.TempDir()
	dictFile := filepath.Join(dir, "private-dict.txt")

	checker, err := Open(Config{
		Dictionary:      "en_US",
		PrivateDictFile: dictFile,
		LearnMode:       true,
	})
	require.NoError(t, err)
	defer checker.Close()

	// The same unknown word on two lines is stored a single time
	diags, err := checker.CheckComment("# bad coment", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)

	diags, err = checker.CheckComment("# another coment", 2)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, []string{"coment"}, checker.Learned())
	require.NoError(t, checker.Close())

	data, err := os.ReadFile(dictFile)
	require.NoError(t, err)
	assert.Equal(t, "coment\n", string(data))
}

func TestPrivateDictionarySeedsChecker(t *testing.T) {
	dir := t.TempDir()
	dictFile := filepath.Join(dir, "private-dict.txt")
	require.NoError(t, os.WriteFile(dictFile, []byte("coment\n"), 0644))

	checker, err := Open(Config{
		Dictionary:      "en_US",
		PrivateDictFile: dictFile,
	})
	require.NoError(t, err)
	defer checker.Close()

	diags, err := checker.CheckComment("# bad coment", 1)
	require.NoError(t, err)
	assert.Empty(t, diags)
}
