package stats

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Global stats manager instance
var globalStatsManager *StatsManager

// InitStatsManager initializes the global stats manager
func InitStatsManager(dataDir string) error {
	statsFilePath := filepath.Join(dataDir, "stats.json")
	var err error
	globalStatsManager, err = NewStatsManager(statsFilePath)
	return err
}

// GetStatsManager returns the global stats manager
func GetStatsManager() *StatsManager {
	return globalStatsManager
}

// HandleGetStats handles requests to get tool usage statistics
func HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if globalStatsManager == nil {
		return nil, fmt.Errorf("stats manager not initialized")
	}

	statsText := FormatStats(globalStatsManager.GetSessionStats(), globalStatsManager.GetPersistentStats())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// RecordToolUsage records statistics for a tool usage
func RecordToolUsage(toolName string, startTime time.Time, request mcp.CallToolRequest, result *mcp.CallToolResult) {
	if globalStatsManager == nil {
		log.Printf("[Stats] Warning: stats manager not initialized, cannot record tool usage")
		return
	}

	executionTime := time.Since(startTime)
	inputTokens := estimateInputTokens(request)
	outputTokens := estimateOutputTokens(result)

	if err := globalStatsManager.RecordToolUsage(toolName, executionTime, inputTokens, outputTokens); err != nil {
		// Log the error but don't fail the request
		log.Printf("[Stats] Failed to record tool usage: %v", err)
	}
}

// WrapHandler wraps a tool handler with stats tracking
func WrapHandler(toolName string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		result, err := handler(ctx, request)
		if err != nil {
			log.Printf("[Stats] Error executing tool '%s': %v", toolName, err)
			return nil, err
		}

		RecordToolUsage(toolName, startTime, request, result)

		return result, nil
	}
}

// HandleClientDisconnect logs the session statistics when a client
// disconnects and resets them
func HandleClientDisconnect(sessionID string) {
	if globalStatsManager == nil {
		return
	}

	statsText := FormatStats(globalStatsManager.GetSessionStats(), globalStatsManager.GetPersistentStats())
	log.Printf("[Stats] Session statistics for client %s:\n%s", sessionID, statsText)

	globalStatsManager.ResetSessionStats()
}

// estimateInputTokens estimates the number of tokens in the request
func estimateInputTokens(request mcp.CallToolRequest) int {
	tokens := len(request.Params.Name)
	for key, value := range request.Params.Arguments {
		tokens += len(key)
		switch v := value.(type) {
		case string:
			tokens += len(v)
		case []interface{}:
			tokens += len(v)
		default:
			tokens++
		}
	}
	return tokens
}

// estimateOutputTokens estimates the number of tokens in the result
func estimateOutputTokens(result *mcp.CallToolResult) int {
	tokens := 0
	for _, content := range result.Content {
		if c, ok := content.(mcp.TextContent); ok {
			tokens += len(c.Text)
		}
	}
	return tokens
}

// RegisterStats registers the stats tool with the MCP server
func RegisterStats(mcpServer *server.MCPServer, dataDir string) error {
	if err := InitStatsManager(dataDir); err != nil {
		return err
	}

	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Retrieves usage statistics for MCP tools"),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := WrapHandler("stats", HandleGetStats)

	mcpServer.AddTool(statsTool, wrappedHandler)

	log.Printf("[Stats] Registered stats tool")

	return nil
}
