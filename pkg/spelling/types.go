package spelling

// Kind identifies what sort of text unit a diagnostic was found in
type Kind string

const (
	KindComment   Kind = "comment"
	KindDocstring Kind = "docstring"
)

// Message IDs emitted for the two diagnostic kinds
const (
	MsgWrongSpellingInComment   = "wrong-spelling-in-comment"
	MsgWrongSpellingInDocstring = "wrong-spelling-in-docstring"
)

// MsgID returns the message ID for a diagnostic kind
func (k Kind) MsgID() string {
	if k == KindDocstring {
		return MsgWrongSpellingInDocstring
	}
	return MsgWrongSpellingInComment
}

// Config holds the checker configuration supplied by the driver.
// An empty Dictionary disables the checker entirely.
type Config struct {
	Dictionary      string   `json:"dictionary"`
	IgnoreWords     []string `json:"ignore_words,omitempty"`
	PrivateDictFile string   `json:"private_dict_file,omitempty"`
	LearnMode       bool     `json:"learn_mode,omitempty"`
}

// Diagnostic represents a misspelled word found in a comment or docstring
type Diagnostic struct {
	MsgID       string   `json:"msg_id"`
	Kind        Kind     `json:"kind"`
	LineNumber  int      `json:"line_number"`
	Column      int      `json:"column"`
	Word        string   `json:"word"`
	Line        string   `json:"line"`
	Indicator   string   `json:"indicator"`
	Suggestions []string `json:"suggestions,omitempty"`
}
