package scanner

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Unit kinds produced by the scanner
const (
	UnitComment   = "comment"
	UnitDocstring = "docstring"
)

// TextUnit is one piece of natural-language text lifted out of a source
// file: a comment token or a docstring block, with its 1-based starting
// line number. Comment units keep the comment marker so diagnostics align
// with the source line.
type TextUnit struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line int    `json:"line"`
}

// FileText holds the text units extracted from one file
type FileText struct {
	Path  string     `json:"path"`
	Units []TextUnit `json:"units"`
}

// ScanFile extracts comment and docstring units from a single source file.
// The language is resolved from the argument or the file extension.
func ScanFile(filePath, language string) ([]TextUnit, error) {
	var lang Language
	var found bool
	if language == "" {
		lang, found = GetLanguageByExtension(filepath.Ext(filePath))
		if !found {
			return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filePath))
		}
	} else {
		lang, found = GetLanguageByName(language)
		if !found {
			return nil, fmt.Errorf("unsupported language: %s", language)
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()

	var units []TextUnit

	// Docstring collection state
	var docLines []string
	var docDelim string
	docStart := 0

	// Block comment collection state
	var blockLines []string
	inBlock := false
	blockStart := 0

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if docDelim != "" {
			// Inside a docstring block: collect until the closing delimiter
			if end := strings.Index(line, docDelim); end >= 0 {
				docLines = append(docLines, line[:end])
				units = append(units, TextUnit{
					Kind: UnitDocstring,
					Text: strings.Join(docLines, "\n"),
					Line: docStart,
				})
				docLines = nil
				docDelim = ""
			} else {
				docLines = append(docLines, line)
			}
			continue
		}

		if inBlock {
			// Inside a block comment: collect until the closing marker
			if end := strings.Index(line, lang.MultiLineCommentEnd); end >= 0 {
				blockLines = append(blockLines, line[:end+len(lang.MultiLineCommentEnd)])
				units = append(units, TextUnit{
					Kind: UnitComment,
					Text: strings.Join(blockLines, "\n"),
					Line: blockStart,
				})
				blockLines = nil
				inBlock = false
			} else {
				blockLines = append(blockLines, line)
			}
			continue
		}

		if delim, rest, ok := docstringOpen(line, lang); ok {
			if end := strings.Index(rest, delim); end >= 0 {
				// Single-line docstring
				units = append(units, TextUnit{
					Kind: UnitDocstring,
					Text: rest[:end],
					Line: lineNumber,
				})
			} else {
				docDelim = delim
				docStart = lineNumber
				docLines = append(docLines, rest)
			}
			continue
		}

		// Comment tokens keep everything from the marker onward; when both
		// marker kinds appear on a line, the earlier one wins.
		lineIdx := strings.Index(line, lang.SingleLineComment)
		blockIdx := -1
		if lang.MultiLineCommentStart != "" {
			blockIdx = strings.Index(line, lang.MultiLineCommentStart)
		}

		if blockIdx >= 0 && (lineIdx < 0 || blockIdx < lineIdx) {
			rest := line[blockIdx:]
			inner := rest[len(lang.MultiLineCommentStart):]
			if end := strings.Index(inner, lang.MultiLineCommentEnd); end >= 0 {
				// Block comment opened and closed on one line
				units = append(units, TextUnit{
					Kind: UnitComment,
					Text: rest[:len(lang.MultiLineCommentStart)+end+len(lang.MultiLineCommentEnd)],
					Line: lineNumber,
				})
			} else {
				inBlock = true
				blockStart = lineNumber
				blockLines = append(blockLines, rest)
			}
			continue
		}

		if lineIdx >= 0 {
			units = append(units, TextUnit{
				Kind: UnitComment,
				Text: line[lineIdx:],
				Line: lineNumber,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}

	// Unterminated docstrings and block comments are still checked
	if docDelim != "" {
		units = append(units, TextUnit{
			Kind: UnitDocstring,
			Text: strings.Join(docLines, "\n"),
			Line: docStart,
		})
	}
	if inBlock {
		units = append(units, TextUnit{
			Kind: UnitComment,
			Text: strings.Join(blockLines, "\n"),
			Line: blockStart,
		})
	}

	return units, nil
}

// docstringOpen reports whether the line opens a docstring and returns the
// delimiter and the text after it
func docstringOpen(line string, lang Language) (delim, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for _, d := range lang.DocstringDelimiters {
		if strings.HasPrefix(trimmed, d) {
			return d, trimmed[len(d):], true
		}
	}
	return "", "", false
}

// ScanDir extracts text units from every supported file in a directory
func ScanDir(dirPath, language string, recursive bool) ([]FileText, error) {
	var languages []Language
	if language != "" {
		lang, found := GetLanguageByName(language)
		if !found {
			return nil, fmt.Errorf("unsupported language: %s", language)
		}
		languages = []Language{lang}
	} else {
		languages = GetSupportedLanguages()
	}

	extToLang := make(map[string]Language)
	for _, lang := range languages {
		for _, ext := range lang.FileExtensions {
			extToLang[ext] = lang
		}
	}

	var files []FileText
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dirPath && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		lang, ok := extToLang[filepath.Ext(path)]
		if !ok {
			return nil
		}

		units, err := ScanFile(path, lang.Name)
		if err != nil {
			log.Printf("[Scanner] Error scanning file %s: %v", path, err)
			return nil
		}
		if len(units) > 0 {
			files = append(files, FileText{Path: path, Units: units})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %v", err)
	}

	return files, nil
}
