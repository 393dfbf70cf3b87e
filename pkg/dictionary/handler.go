package dictionary

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Code-Monger/SpellWeaver/pkg/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleListDictionaries is the handler function for the listdictionaries
// tool
func HandleListDictionaries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := Available()

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Available spelling dictionaries (%d):\n", len(infos)))
	for _, info := range infos {
		summary.WriteString(fmt.Sprintf("  - %s (%s)\n", info.ID, info.Description))
	}

	result := &mcp.CallToolResult{}
	result.Content = append(result.Content, mcp.TextContent{
		Text: summary.String(),
		Type: "text",
	})
	return result, nil
}

// RegisterListDictionaries registers the listdictionaries tool with the
// MCP server
func RegisterListDictionaries(mcpServer *server.MCPServer) {
	listTool := mcp.NewTool("listdictionaries",
		mcp.WithDescription("Lists the spelling dictionaries available to the spellcheck tool, with their IDs and human-readable descriptions."),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("listdictionaries", HandleListDictionaries)

	mcpServer.AddTool(listTool, wrappedHandler)

	log.Printf("[Dictionary] Registered listdictionaries tool")
}
