package spelling

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Code-Monger/SpellWeaver/pkg/dictionary"
	"github.com/Code-Monger/SpellWeaver/pkg/userdict"
)

// maxSuggestions is the number of suggestions carried per diagnostic
const maxSuggestions = 4

// Words that always appear in comments and docstrings without being prose:
// "param" shows up in parameter descriptions, "nolint" in suppression
// pragmas.
var builtinIgnore = []string{"param", "nolint"}

// Checker validates the spelling of words in comments and docstrings.
// A checker whose configuration selects no dictionary is disabled: every
// check is a no-op and Close releases nothing. A checker instance is not
// safe for concurrent use.
type Checker struct {
	enabled   bool
	dict      dictionary.Dictionary
	ignore    map[string]bool
	learnMode bool
	learned   map[string]bool
	writer    *userdict.Writer
}

// Open resolves a configuration into a ready checker. A missing or unknown
// dictionary silently yields a disabled checker; a private dictionary file
// that cannot be read or opened for append is an error, as is learn mode
// without a private dictionary file to store words in.
func Open(cfg Config) (*Checker, error) {
	c := &Checker{}

	if cfg.Dictionary == "" || !dictionary.Exists(cfg.Dictionary) {
		return c, nil
	}

	if cfg.LearnMode && cfg.PrivateDictFile == "" {
		return nil, fmt.Errorf("learn mode requires a private dictionary file")
	}

	c.ignore = make(map[string]bool)
	for _, w := range cfg.IgnoreWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			c.ignore[w] = true
		}
	}
	for _, w := range builtinIgnore {
		c.ignore[w] = true
	}

	if cfg.PrivateDictFile != "" {
		dict, err := dictionary.NewWithPersonal(cfg.Dictionary, cfg.PrivateDictFile)
		if err != nil {
			return nil, err
		}
		writer, err := userdict.OpenWriter(cfg.PrivateDictFile)
		if err != nil {
			return nil, err
		}
		c.dict = dict
		c.writer = writer
	} else {
		dict, err := dictionary.New(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		c.dict = dict
	}

	if cfg.LearnMode {
		c.learnMode = true
		c.learned = make(map[string]bool)
	}

	c.enabled = true
	return c, nil
}

// Enabled reports whether the checker will do any work
func (c *Checker) Enabled() bool {
	return c.enabled
}

// Close releases the private dictionary writer, if one was opened.
// It is safe to call more than once.
func (c *Checker) Close() error {
	if c.writer != nil {
		w := c.writer
		c.writer = nil
		return w.Close()
	}
	return nil
}

// Learned returns the words stored to the private dictionary so far,
// sorted. Empty unless the checker runs in learn mode.
func (c *Checker) Learned() []string {
	words := make([]string, 0, len(c.learned))
	for w := range c.learned {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CheckComment checks one comment token. Line comments are single physical
// lines; a block comment spanning several lines is decomposed the same way
// a docstring is, one check per line with offset line numbers.
func (c *Checker) CheckComment(text string, line int) ([]Diagnostic, error) {
	return c.CheckText(KindComment, text, line)
}

// CheckDocstring checks a docstring, one physical line at a time, with
// line numbers offset from the docstring's starting line
func (c *Checker) CheckDocstring(doc string, startLine int) ([]Diagnostic, error) {
	return c.CheckText(KindDocstring, doc, startLine)
}

// CheckText is the single entry point the driver calls for every text
// unit. Multi-line text is decomposed into one check per physical line.
// In learn mode no diagnostics are produced; unknown words are appended to
// the private dictionary instead, each unique word exactly once per
// checker lifetime.
func (c *Checker) CheckText(kind Kind, text string, startLine int) ([]Diagnostic, error) {
	if !c.enabled {
		return nil, nil
	}

	var diags []Diagnostic
	for idx, line := range strings.Split(text, "\n") {
		lineDiags, err := c.checkLine(kind, line, startLine+idx)
		if err != nil {
			return diags, err
		}
		diags = append(diags, lineDiags...)
	}
	return diags, nil
}

func (c *Checker) checkLine(kind Kind, line string, lineNum int) ([]Diagnostic, error) {
	var diags []Diagnostic

	for _, orig := range extractCandidates(line) {
		word := strings.ToLower(orig)
		if c.ignore[word] {
			continue
		}

		// Unwrap literal-string prefix markers captured from nearby code
		// fragments, e.g. u'text or r"text.
		if len(word) > 2 && hasLiteralPrefix(word) {
			word = word[2:]
		}

		if c.dict.Check(word) {
			continue
		}

		if c.learnMode {
			if !c.learned[word] {
				if err := c.writer.Append(word); err != nil {
					return diags, fmt.Errorf("error storing unknown word to private dictionary: %v", err)
				}
				c.learned[word] = true
			}
			continue
		}

		suggestions := c.dict.Suggest(word)
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}

		col, indicator := locate(word, line)
		diags = append(diags, Diagnostic{
			MsgID:       kind.MsgID(),
			Kind:        kind,
			LineNumber:  lineNum,
			Column:      col,
			Word:        orig,
			Line:        line,
			Indicator:   indicator,
			Suggestions: suggestions,
		})
	}

	return diags, nil
}

func hasLiteralPrefix(word string) bool {
	switch word[:2] {
	case "u'", "u\"", "r'", "r\"":
		return true
	}
	return false
}
