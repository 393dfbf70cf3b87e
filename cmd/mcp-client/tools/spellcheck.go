// Package tools provides test functions for MCP tools
package tools

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestSpellCheck tests the spellcheck tool
func TestSpellCheck(ctx context.Context, c client.MCPClient) error {
	// Create a temporary test directory
	tempDir := os.TempDir()
	testDir := filepath.Join(tempDir, "mcp_test_spellcheck")

	// Create the test directory
	err := os.MkdirAll(testDir, 0755)
	if err != nil {
		log.Printf("Failed to create test directory: %v", err)
		return err
	}

	defer func() {
		// Clean up the test directory
		os.RemoveAll(testDir)
		log.Println("Test directory removed")
	}()

	log.Printf("Created test directory at: %s", testDir)

	// Create test files with spelling issues in comments and docstrings
	testFiles := map[string]string{
		"test_comments.go": `package main

import (
	"fmt"
)

// This is a coment with a speling mistake
func main() {
	// Another coment with a mispelled word
	fmt.Println("Hello, World!")
}
`,
		"test_docstrings.py": `"""Module docstring with a speling mistake."""


def greet(name):
    """Greet the given uesr by name."""
    print("Hello, " + name)
`,
		"test_clean.go": `package main

// This comment is spelled correctly
func helper() {}
`,
	}

	// Write the test files
	for filename, content := range testFiles {
		filePath := filepath.Join(testDir, filename)
		err := os.WriteFile(filePath, []byte(content), 0644)
		if err != nil {
			log.Printf("Failed to create test file %s: %v", filename, err)
			return err
		}
		log.Printf("Created test file: %s", filePath)
	}

	privateDictFile := filepath.Join(testDir, "private-dict.txt")

	// Define test cases
	testCases := []struct {
		name      string
		arguments map[string]interface{}
	}{
		{
			name: "Check directory recursively",
			arguments: map[string]interface{}{
				"path":               testDir,
				"recursive":          true,
				"use_relative_paths": true,
			},
		},
		{
			name: "Check raw text",
			arguments: map[string]interface{}{
				"text": "# This is a coment with a speling mistake",
			},
		},
		{
			name: "Check with ignore words",
			arguments: map[string]interface{}{
				"path":         filepath.Join(testDir, "test_comments.go"),
				"ignore_words": "coment,speling,mispelled",
			},
		},
		{
			name: "Check with British dictionary",
			arguments: map[string]interface{}{
				"path":       filepath.Join(testDir, "test_docstrings.py"),
				"dictionary": "en_GB",
			},
		},
		{
			name: "Learn unknown words",
			arguments: map[string]interface{}{
				"path":              filepath.Join(testDir, "test_comments.go"),
				"private_dict_file": privateDictFile,
				"learn_mode":        true,
			},
		},
		{
			name: "Recheck with learned words",
			arguments: map[string]interface{}{
				"path":              filepath.Join(testDir, "test_comments.go"),
				"private_dict_file": privateDictFile,
			},
		},
	}

	// Run test cases
	for _, tc := range testCases {
		log.Printf("Running spellcheck test: %s", tc.name)

		callReq := mcp.CallToolRequest{}
		callReq.Params.Name = "spellcheck"
		callReq.Params.Arguments = tc.arguments

		result, err := c.CallTool(ctx, callReq)
		if err != nil {
			log.Printf("Failed to call spellcheck: %v", err)
			continue
		}

		if len(result.Content) > 0 {
			if textContent, ok := result.Content[0].(mcp.TextContent); ok {
				log.Printf("Spellcheck result:\n%s", textContent.Text)
			}
		}
	}

	return nil
}
