package spelling

import (
	"regexp"
	"strings"
)

// locate finds the column of word within the original line and builds the
// caret indicator that underlines it. The word is searched bounded by
// non-word characters (or the line boundaries) so that "an" is not found
// inside "bananas"; when the bounded search fails the plain first index of
// the word is used instead.
func locate(word, line string) (int, string) {
	lower := strings.ToLower(line)

	col := -1
	if re, err := regexp.Compile(`(\W|^)(` + regexp.QuoteMeta(word) + `)(\W|$)`); err == nil {
		if m := re.FindStringSubmatchIndex(lower); m != nil {
			col = m[4] // start of the word group, not the delimiter
		}
	}
	if col < 0 {
		col = strings.Index(lower, word)
	}
	if col < 0 {
		col = 0
	}

	return col, strings.Repeat(" ", col) + strings.Repeat("^", len(word))
}
