package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSkillCheckMCPServer creates a new MCP server with all SkillCheck tools
// and resources registered. The rootPath is the directory under which skills
// are discovered; relative tool paths resolve against it.
func NewSkillCheckMCPServer(rootPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"skillcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, rootPath)
	registerResources(s, rootPath)

	return s
}
