package dictionary

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.txt
var embeddedFS embed.FS

// loadEmbeddedWordList reads the embedded word list for a dictionary ID
func loadEmbeddedWordList(id string) ([]string, error) {
	file, err := embeddedFS.Open("data/" + id + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown dictionary %q: %v", id, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary %q: %v", id, err)
	}

	return words, nil
}
