package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDesignlintMCPServer creates an MCP server with all designlint tools
// registered. The documentPath points at the design document export to
// analyze; it is re-read per call so a refreshed export is picked up.
func NewDesignlintMCPServer(documentPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"designlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, documentPath)

	return s
}
