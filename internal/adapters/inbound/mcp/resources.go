package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all SkillCheck MCP resources on the given
// server.
func registerResources(s *server.MCPServer, rootPath string) {
	// 1. skillcheck://skills - summary of every discovered skill
	s.AddResource(
		mcplib.NewResource(
			"skillcheck://skills",
			"Skills",
			mcplib.WithResourceDescription("Validation summary for every skill under the server root"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSkillsResource(rootPath),
	)

	// 2. skillcheck://skills/{name} - full report per skill (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"skillcheck://skills/{name}",
			"Skill Report",
			mcplib.WithTemplateDescription("Full validation report for a skill, addressed by directory name"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSkillResource(rootPath),
	)
}

func handleSkillsResource(rootPath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, discoverSvc := newServices()
		reports, err := discoverSvc.ValidateAll(ctx, rootPath)
		if err != nil {
			return nil, fmt.Errorf("listing skills: %w", err)
		}

		data, err := json.MarshalIndent(summarize(reports), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling summaries: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "skillcheck://skills",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSkillResource(rootPath string) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// The skill name is populated by template matching.
		name, ok := request.Params.Arguments["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("skill name is required")
		}

		validateSvc, discoverSvc := newServices()

		dirs, err := discoverSvc.FindSkills(rootPath)
		if err != nil {
			return nil, err
		}

		var skillPath string
		for _, dir := range dirs {
			if filepath.Base(dir) == name {
				skillPath = dir
				break
			}
		}
		if skillPath == "" {
			return nil, fmt.Errorf("no skill named %q under %s", name, rootPath)
		}

		report := validateSvc.Validate(ctx, skillPath)

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
