package workspace

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Code-Monger/SpellWeaver/pkg/stats"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// WorkspaceInfo represents the workspace information for one session
type WorkspaceInfo struct {
	RootDir    string    `json:"root_dir"`
	UserTask   string    `json:"user_task"`
	InitTime   time.Time `json:"init_time"`
	SessionID  string    `json:"session_id"`
	LastAccess time.Time `json:"last_access"`
}

// SessionStore manages workspace information for multiple sessions
type SessionStore struct {
	sessions map[string]WorkspaceInfo
	mutex    sync.RWMutex
}

// Global session store
var sessionStore = &SessionStore{
	sessions: make(map[string]WorkspaceInfo),
}

// GetWorkspaceInfo returns the workspace info for a session
func GetWorkspaceInfo(sessionID string) (WorkspaceInfo, bool) {
	sessionStore.mutex.Lock()
	defer sessionStore.mutex.Unlock()

	info, exists := sessionStore.sessions[sessionID]
	if exists {
		info.LastAccess = time.Now()
		sessionStore.sessions[sessionID] = info
	}

	return info, exists
}

// SetWorkspaceInfo sets the workspace info for a session, assigning a
// session ID when the caller didn't supply one
func SetWorkspaceInfo(info WorkspaceInfo) WorkspaceInfo {
	if info.SessionID == "" {
		info.SessionID = uuid.NewString()
	}

	sessionStore.mutex.Lock()
	defer sessionStore.mutex.Unlock()

	info.InitTime = time.Now()
	info.LastAccess = time.Now()
	sessionStore.sessions[info.SessionID] = info

	return info
}

// ListSessions returns a list of all session IDs
func ListSessions() []string {
	sessionStore.mutex.RLock()
	defer sessionStore.mutex.RUnlock()

	sessions := make([]string, 0, len(sessionStore.sessions))
	for sessionID := range sessionStore.sessions {
		sessions = append(sessions, sessionID)
	}

	return sessions
}

// GetRootDir returns the workspace root directory for a session,
// defaulting to the current directory for unknown sessions
func GetRootDir(sessionID string) string {
	info, exists := GetWorkspaceInfo(sessionID)
	if !exists || info.RootDir == "" {
		return "."
	}

	return info.RootDir
}

// ResolveRelativePath resolves a relative path against the workspace root
// directory for a session
func ResolveRelativePath(path string, sessionID string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(GetRootDir(sessionID), path)
}

// HandleWorkspace is the handler function for the workspace tool
func HandleWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	operation, ok := arguments["operation"].(string)
	if !ok {
		return nil, fmt.Errorf("operation must be a string")
	}

	switch operation {
	case "initialize":
		rootDir, ok := arguments["root_dir"].(string)
		if !ok {
			return nil, fmt.Errorf("root_dir must be a string")
		}

		userTask, _ := arguments["user_task"].(string)
		sessionID, _ := arguments["session_id"].(string)

		info := SetWorkspaceInfo(WorkspaceInfo{
			RootDir:   rootDir,
			UserTask:  userTask,
			SessionID: sessionID,
		})

		resultText := "Workspace initialized successfully\n\n"
		resultText += fmt.Sprintf("Root directory: %s\n", info.RootDir)
		resultText += fmt.Sprintf("Session ID: %s\n", info.SessionID)

		return textResult(resultText), nil

	case "get":
		sessionID, ok := arguments["session_id"].(string)
		if !ok {
			return nil, fmt.Errorf("session_id must be a string")
		}

		info, exists := GetWorkspaceInfo(sessionID)
		if !exists {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		}

		return textResult(formatWorkspaceInfo(info)), nil

	case "list":
		sessions := ListSessions()

		resultText := fmt.Sprintf("Active Sessions (%d)\n\n", len(sessions))
		for i, sessionID := range sessions {
			info, _ := GetWorkspaceInfo(sessionID)
			resultText += fmt.Sprintf("%d. %s", i+1, formatWorkspaceInfo(info))
			resultText += "\n"
		}

		return textResult(resultText), nil

	default:
		return nil, fmt.Errorf("unsupported operation: %s", operation)
	}
}

func formatWorkspaceInfo(info WorkspaceInfo) string {
	text := fmt.Sprintf("Session ID: %s\n", info.SessionID)
	text += fmt.Sprintf("Root directory: %s\n", info.RootDir)
	if info.UserTask != "" {
		text += fmt.Sprintf("User task: %s\n", info.UserTask)
	}
	text += fmt.Sprintf("Initialized: %s\n", info.InitTime.Format(time.RFC3339))
	text += fmt.Sprintf("Last accessed: %s\n", info.LastAccess.Format(time.RFC3339))
	return text
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// HandleWorkspaceResource is the handler function for the workspace
// resource. URI format: workspace://info/session_id
func HandleWorkspaceResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessionID := strings.TrimPrefix(request.Params.URI, "workspace://info/")
	if sessionID == request.Params.URI {
		sessionID = ""
	}

	var infoStr string
	if sessionID == "" {
		sessions := ListSessions()
		infoStr = fmt.Sprintf("Active Sessions (%d):\n\n", len(sessions))
		for i, id := range sessions {
			info, _ := GetWorkspaceInfo(id)
			infoStr += fmt.Sprintf("%d. %s\n", i+1, formatWorkspaceInfo(info))
		}
	} else {
		info, exists := GetWorkspaceInfo(sessionID)
		if !exists {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		}
		infoStr = formatWorkspaceInfo(info)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     infoStr,
		},
	}, nil
}

// RegisterWorkspace registers the workspace tool and resource with the MCP server
func RegisterWorkspace(mcpServer *server.MCPServer) {
	workspaceTool := mcp.NewTool("workspace",
		mcp.WithDescription("Initializes and manages the workspace that spell-check paths are resolved against"),
		mcp.WithString("operation",
			mcp.Description("Operation to perform: 'initialize' to set up the workspace, 'get' to retrieve workspace information, 'list' to list all sessions"),
			mcp.Required(),
		),
		mcp.WithString("root_dir",
			mcp.Description("Root directory of the source code (for 'initialize' operation)"),
		),
		mcp.WithString("user_task",
			mcp.Description("Task the user has set (for 'initialize' operation)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID (required for 'get' operation, optional for 'initialize' operation)"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("workspace", HandleWorkspace)

	mcpServer.AddTool(workspaceTool, wrappedHandler)

	mcpServer.AddResource(
		mcp.NewResource(
			"workspace://info",
			"Workspace Information",
			mcp.WithMIMEType("text/plain"),
		),
		HandleWorkspaceResource,
	)

	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"workspace://info/{session_id}",
			"Workspace Session Information",
			mcp.WithTemplateMIMEType("text/plain"),
			mcp.WithTemplateDescription("Information about a specific workspace session"),
		),
		HandleWorkspaceResource,
	)

	log.Printf("[Workspace] Registered workspace tool and resource")
}
