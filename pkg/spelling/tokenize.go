package spelling

import (
	"regexp"
	"strings"
)

// Quoting artifacts around words: an apostrophe next to a non-letter (or the
// string boundary) is a stray quote, an apostrophe between letters is a
// contraction ("don't") and must survive.
var (
	trailingQuoteRe = regexp.MustCompile(`'([^a-zA-Z]|$)`)
	leadingQuoteRe  = regexp.MustCompile(`([^a-zA-Z]|^)'`)
)

// punctReplacer maps every ASCII punctuation character except apostrophe and
// underscore to a space. Those two are left for the quoting rules above and
// the identifier filter below.
var punctReplacer = func() *strings.Replacer {
	const puncts = "!\"#$%&()*+,-./:;<=>?@[\\]^`{|}~"
	pairs := make([]string, 0, 2*len(puncts))
	for _, p := range puncts {
		pairs = append(pairs, string(p), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// extractCandidates splits one line of text into words that look like
// natural-language prose. Tokens that look like code are dropped: anything
// with a digit, mixed-case tokens longer than two characters (class names),
// and anything with an underscore (parameter and variable names).
func extractCandidates(line string) []string {
	line = strings.TrimSpace(line)
	line = trailingQuoteRe.ReplaceAllString(line, " ")
	line = leadingQuoteRe.ReplaceAllString(line, " ")
	line = punctReplacer.Replace(line)

	var words []string
	for _, tok := range strings.Fields(line) {
		if containsDigit(tok) {
			continue
		}
		if containsUpper(tok) && containsLower(tok) && len(tok) > 2 {
			continue
		}
		if strings.Contains(tok, "_") {
			continue
		}
		words = append(words, tok)
	}
	return words
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func containsUpper(s string) bool {
	return strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

func containsLower(s string) bool {
	return strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz")
}
