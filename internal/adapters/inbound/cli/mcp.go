package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/skillcheck/skillcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the SkillCheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var rootPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start SkillCheck MCP server (stdio)",
		Long:  "Start the SkillCheck MCP server using stdio transport. This lets agents validate skill packages, browse discovered skills, and read rule documentation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootPath == "" {
				rootPath = "."
			}
			s := mcpadapter.NewSkillCheckMCPServer(rootPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&rootPath, "path", "", "Skills root (defaults to current working directory)")

	return cmd
}
