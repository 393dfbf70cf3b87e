package userdict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a private dictionary file: plain text, one word per line.
// A missing file is an empty word list, not an error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening private dictionary: %v", err)
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
		return nil, fmt.Errorf("error reading private dictionary: %v", err)
	}

	return words, nil
}

// Writer appends words to a private dictionary file. Close is safe to
// call more than once; the file handle is released exactly once.
type Writer struct {
	file *os.File
}

// OpenWriter opens a private dictionary file for appending, creating it
// if needed
func OpenWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening private dictionary for append: %v", err)
	}
	return &Writer{file: file}, nil
}

// Append writes one word on its own line. Failures are returned to the
// caller; a silently lost word would change later runs.
func (w *Writer) Append(word string) error {
	if w.file == nil {
		return fmt.Errorf("private dictionary writer is closed")
	}
	if _, err := fmt.Fprintf(w.file, "%s\n", word); err != nil {
		return fmt.Errorf("error writing to private dictionary: %v", err)
	}
	return nil
}

// Close releases the underlying file
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	file := w.file
	w.file = nil
	return file.Close()
}
