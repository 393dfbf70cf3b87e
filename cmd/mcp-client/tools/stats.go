package tools

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestStats tests the stats tool
func TestStats(ctx context.Context, c client.MCPClient) error {
	// Generate some usage first so the report has content
	log.Printf("Running stats test: generating tool usage")

	checkReq := mcp.CallToolRequest{}
	checkReq.Params.Name = "spellcheck"
	checkReq.Params.Arguments = map[string]interface{}{
		"text": "# a coment to exercise the stats counters",
	}
	if _, err := c.CallTool(ctx, checkReq); err != nil {
		log.Printf("Failed to call spellcheck: %v", err)
	}

	log.Printf("Running stats test: fetching usage report")

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "stats"
	callReq.Params.Arguments = map[string]interface{}{}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call stats: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Stats result:\n%s", textContent.Text)
		}
	}

	return nil
}
