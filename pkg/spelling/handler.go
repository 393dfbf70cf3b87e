package spelling

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Code-Monger/SpellWeaver/pkg/scanner"
	"github.com/Code-Monger/SpellWeaver/pkg/stats"
	"github.com/Code-Monger/SpellWeaver/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// fileDiagnostics groups diagnostics by the file they were found in
type fileDiagnostics struct {
	Path        string
	Diagnostics []Diagnostic
}

// HandleSpellCheck is the handler function for the spellcheck tool
func HandleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract the input: raw text or a file/directory path
	text, _ := arguments["text"].(string)
	path, _ := arguments["path"].(string)
	if text == "" && path == "" {
		return nil, fmt.Errorf("either text or path must be provided")
	}

	// Extract the dictionary ID; an empty ID disables the checker
	dictionaryID := "en_US"
	if dictVal, ok := arguments["dictionary"].(string); ok {
		dictionaryID = dictVal
	}

	// Extract the ignore list (comma-separated)
	var ignoreWords []string
	if ignoreVal, ok := arguments["ignore_words"].(string); ok && ignoreVal != "" {
		ignoreWords = strings.Split(ignoreVal, ",")
	}

	// Extract the private dictionary path and learn mode flag
	privateDictFile, _ := arguments["private_dict_file"].(string)
	learnMode := false
	if learnVal, ok := arguments["learn_mode"].(bool); ok {
		learnMode = learnVal
	}

	// Extract language (optional)
	language, _ := arguments["language"].(string)

	// Extract recursive flag
	recursive := true
	if recursiveBool, ok := arguments["recursive"].(bool); ok {
		recursive = recursiveBool
	}

	// Extract use_relative_paths flag
	useRelativePaths := true
	if useRelativePathsBool, ok := arguments["use_relative_paths"].(bool); ok {
		useRelativePaths = useRelativePathsBool
	}

	// Extract session ID
	sessionID, _ := arguments["session_id"].(string)

	checker, err := Open(Config{
		Dictionary:      dictionaryID,
		IgnoreWords:     ignoreWords,
		PrivateDictFile: privateDictFile,
		LearnMode:       learnMode,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing spelling checker: %v", err)
	}
	defer checker.Close()

	result := &mcp.CallToolResult{}

	if !checker.Enabled() {
		result.Content = append(result.Content, mcp.TextContent{
			Text: "Spelling checker is disabled (no dictionary selected).",
			Type: "text",
		})
		return result, nil
	}

	var files []fileDiagnostics
	if text != "" {
		diags, err := checker.CheckText(KindComment, text, 1)
		if err != nil {
			return nil, fmt.Errorf("error performing spell check: %v", err)
		}
		files = append(files, fileDiagnostics{Diagnostics: diags})
	} else {
		// Get root directory from workspace
		rootDir := workspace.GetRootDir(sessionID)
		log.Printf("[SpellCheck] Using workspace root directory: %s", rootDir)

		fullPath := workspace.ResolveRelativePath(path, sessionID)

		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return nil, fmt.Errorf("error accessing path: %v", err)
		}

		var scanned []scanner.FileText
		if fileInfo.IsDir() {
			scanned, err = scanner.ScanDir(fullPath, language, recursive)
			if err != nil {
				return nil, fmt.Errorf("error scanning directory: %v", err)
			}
		} else {
			units, err := scanner.ScanFile(fullPath, language)
			if err != nil {
				return nil, fmt.Errorf("error scanning file: %v", err)
			}
			scanned = []scanner.FileText{{Path: fullPath, Units: units}}
		}

		for _, file := range scanned {
			displayPath := file.Path
			if useRelativePaths {
				if relPath, err := filepath.Rel(rootDir, file.Path); err == nil {
					displayPath = relPath
				}
			}

			var diags []Diagnostic
			for _, unit := range file.Units {
				kind := KindComment
				if unit.Kind == scanner.UnitDocstring {
					kind = KindDocstring
				}
				unitDiags, err := checker.CheckText(kind, unit.Text, unit.Line)
				if err != nil {
					return nil, fmt.Errorf("error performing spell check: %v", err)
				}
				diags = append(diags, unitDiags...)
			}
			if len(diags) > 0 {
				files = append(files, fileDiagnostics{Path: displayPath, Diagnostics: diags})
			}
		}
	}

	result.Content = append(result.Content, mcp.TextContent{
		Text: formatResults(files, checker),
		Type: "text",
	})
	return result, nil
}

// formatResults renders diagnostics (or the learn-mode summary) as text
func formatResults(files []fileDiagnostics, checker *Checker) string {
	if learned := checker.Learned(); len(learned) > 0 {
		return fmt.Sprintf("Stored %d unknown words to the private dictionary: %s\n",
			len(learned), strings.Join(learned, ", "))
	}

	total := 0
	for _, file := range files {
		total += len(file.Diagnostics)
	}
	if total == 0 {
		return "No spelling issues found."
	}

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Found %d spelling issues:\n\n", total))

	i := 0
	for _, file := range files {
		for _, diag := range file.Diagnostics {
			i++
			if file.Path != "" {
				summary.WriteString(fmt.Sprintf("%d. File: %s, Line: %d\n", i, file.Path, diag.LineNumber))
			} else {
				summary.WriteString(fmt.Sprintf("%d. Line: %d\n", i, diag.LineNumber))
			}
			summary.WriteString(fmt.Sprintf("   Wrong spelling of a word '%s' in a %s:\n", diag.Word, diag.Kind))
			summary.WriteString(fmt.Sprintf("   %s\n", diag.Line))
			summary.WriteString(fmt.Sprintf("   %s\n", diag.Indicator))
			if len(diag.Suggestions) > 0 {
				summary.WriteString(fmt.Sprintf("   Did you mean: '%s'?\n", strings.Join(diag.Suggestions, "' or '")))
			}
			summary.WriteString("\n")
		}
	}
	return summary.String()
}

// RegisterSpellCheck registers the spellcheck tool with the MCP server
func RegisterSpellCheck(mcpServer *server.MCPServer) {
	spellCheckTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Checks spelling of natural-language text in code comments and docstrings. Code-like tokens (identifiers, parameter names, numeric tokens) are filtered out before lookup. Reports each unknown word with a caret indicator locating it in the source line and up to 4 suggestions, or stores unknown words to a private dictionary in learn mode."),
		mcp.WithString("text",
			mcp.Description("Raw comment text to check directly (alternative to path)"),
		),
		mcp.WithString("path",
			mcp.Description("The path of the file or directory to check (absolute or relative to working directory)"),
		),
		mcp.WithString("language",
			mcp.Description("The programming language to check (default: auto-detect from file extension)"),
		),
		mcp.WithString("dictionary",
			mcp.Description("Spelling dictionary ID, e.g. 'en_US' (default: 'en_US'; empty disables checking)"),
		),
		mcp.WithString("ignore_words",
			mcp.Description("Comma-separated list of words that should not be checked"),
		),
		mcp.WithString("private_dict_file",
			mcp.Description("Path to a private dictionary file; one word per line"),
		),
		mcp.WithBoolean("learn_mode",
			mcp.Description("Store unknown words to the private dictionary instead of reporting them; requires private_dict_file (default: false)"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Whether to check files recursively in subdirectories (default: true)"),
		),
		mcp.WithBoolean("use_relative_paths",
			mcp.Description("Whether to use relative paths in the results (default: true)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID to use for resolving relative paths"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("spellcheck", HandleSpellCheck)

	mcpServer.AddTool(spellCheckTool, wrappedHandler)

	log.Printf("[SpellCheck] Registered spellcheck tool")
}
