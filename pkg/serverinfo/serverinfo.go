package serverinfo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/Code-Monger/SpellWeaver/pkg/dictionary"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// startTime is used to calculate uptime
var startTime = time.Now()

// HandleServerInfo is the handler function for the server info resource
func HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	infoStr := "Server Information:\n\n"
	infoStr += fmt.Sprintf("timestamp: %s\n", time.Now().Format(time.RFC3339))
	infoStr += fmt.Sprintf("go_version: %s\n", runtime.Version())
	infoStr += fmt.Sprintf("os: %s\n", runtime.GOOS)
	infoStr += fmt.Sprintf("architecture: %s\n", runtime.GOARCH)
	infoStr += fmt.Sprintf("cpu_cores: %d\n", runtime.NumCPU())
	infoStr += fmt.Sprintf("goroutines: %d\n", runtime.NumGoroutine())
	infoStr += fmt.Sprintf("alloc_mb: %.2f\n", float64(memStats.Alloc)/1024/1024)
	infoStr += fmt.Sprintf("sys_mb: %.2f\n", float64(memStats.Sys)/1024/1024)
	infoStr += fmt.Sprintf("uptime_seconds: %.0f\n", time.Since(startTime).Seconds())

	infoStr += "\nSpelling dictionaries:\n"
	for _, info := range dictionary.Available() {
		infoStr += fmt.Sprintf("  %s: %s\n", info.ID, info.Description)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     infoStr,
		},
	}, nil
}

// RegisterServerInfo registers the server info resource with the MCP server
func RegisterServerInfo(mcpServer *server.MCPServer) {
	mcpServer.AddResource(
		mcp.NewResource(
			"server://info",
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		HandleServerInfo,
	)
}
