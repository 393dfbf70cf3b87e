package dictionary

import (
	"fmt"
	"log"
	"strings"

	"github.com/sajari/fuzzy"

	"github.com/Code-Monger/SpellWeaver/pkg/userdict"
)

// modelSuggestions is how many candidates the fuzzy model is asked for;
// callers apply their own caps on top.
const modelSuggestions = 5

// fuzzyDict backs the Dictionary capability with a sajari/fuzzy model for
// suggestions and an exact membership set for checks.
type fuzzyDict struct {
	words map[string]bool
	model *fuzzy.Model
}

func newFuzzyDict(id, personalWordList string) (*fuzzyDict, error) {
	words, err := loadEmbeddedWordList(id)
	if err != nil {
		return nil, err
	}

	model := fuzzy.NewModel()
	model.SetDepth(2)     // Maximum edit distance
	model.SetThreshold(1) // Minimum frequency threshold

	d := &fuzzyDict{
		words: make(map[string]bool, len(words)),
		model: model,
	}
	for _, word := range words {
		d.addWord(word)
	}

	if personalWordList != "" {
		personal, err := userdict.Load(personalWordList)
		if err != nil {
			return nil, fmt.Errorf("error loading personal word list: %v", err)
		}
		for _, word := range personal {
			d.addWord(word)
		}
		log.Printf("[Dictionary] Loaded %s with %d personal words", id, len(personal))
	}

	return d, nil
}

func (d *fuzzyDict) addWord(word string) {
	word = strings.ToLower(word)
	d.words[word] = true
	d.model.TrainWord(word)
}

// Check reports whether the word is known, case-insensitively
func (d *fuzzyDict) Check(word string) bool {
	return d.words[strings.ToLower(word)]
}

// Suggest returns correction candidates in model order
func (d *fuzzyDict) Suggest(word string) []string {
	suggestions := d.model.SpellCheckSuggestions(strings.ToLower(word), modelSuggestions)

	// The model echoes the input back when it can't do better; a word we
	// just failed to Check is not a suggestion.
	out := suggestions[:0]
	for _, s := range suggestions {
		if !strings.EqualFold(s, word) {
			out = append(out, s)
		}
	}
	return out
}
