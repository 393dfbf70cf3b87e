package tools

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestListDictionaries tests the listdictionaries tool
func TestListDictionaries(ctx context.Context, c client.MCPClient) error {
	log.Printf("Running listdictionaries test")

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "listdictionaries"
	callReq.Params.Arguments = map[string]interface{}{}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call listdictionaries: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Available dictionaries:\n%s", textContent.Text)
		}
	}

	return nil
}
