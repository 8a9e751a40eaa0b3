package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/config"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/scanner"
	"github.com/skillcheck/skillcheck/internal/application"
	"github.com/skillcheck/skillcheck/internal/domain"
	"github.com/skillcheck/skillcheck/internal/domain/rules"
)

// registerTools registers all SkillCheck MCP tools on the given server.
func registerTools(s *server.MCPServer, rootPath string) {
	// 1. skillcheck_validate
	s.AddTool(
		mcplib.NewTool("skillcheck_validate",
			mcplib.WithDescription("Validate a skill package and return the full report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Skill directory, absolute or relative to the server root"),
			),
		),
		handleValidate(rootPath),
	)

	// 2. skillcheck_list
	s.AddTool(
		mcplib.NewTool("skillcheck_list",
			mcplib.WithDescription("Discover and validate every skill under a directory, returning one summary per skill"),
			mcplib.WithString("root",
				mcplib.Description("Directory to search, absolute or relative to the server root (default: server root)"),
			),
		),
		handleList(rootPath),
	)

	// 3. skillcheck_describe_rules
	s.AddTool(
		mcplib.NewTool("skillcheck_describe_rules",
			mcplib.WithDescription("Returns the full check battery with the severity and meaning of each check"),
		),
		handleDescribeRules(),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.ValidateService, *application.DiscoverService) {
	sc := scanner.New()
	validateSvc := application.NewValidateService(sc, config.New())
	return validateSvc, application.NewDiscoverService(sc, validateSvc)
}

// resolve joins a relative path against the server root.
func resolve(rootPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootPath, path)
}

func handleValidate(rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		skillPath, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		validateSvc, _ := newServices()
		report := validateSvc.Validate(ctx, resolve(rootPath, skillPath))
		return jsonResult(report)
	}
}

func handleList(rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root := rootPath
		if arg, ok := request.GetArguments()["root"].(string); ok && arg != "" {
			root = resolve(rootPath, arg)
		}

		_, discoverSvc := newServices()
		reports, err := discoverSvc.ValidateAll(ctx, root)
		if err != nil {
			return errorResult(fmt.Sprintf("listing skills: %v", err)), nil
		}
		return jsonResult(summarize(reports))
	}
}

func handleDescribeRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rules.Describe())
	}
}

// skillSummary is the per-skill line returned by list-style surfaces.
type skillSummary struct {
	SkillName string `json:"skill_name"`
	SkillPath string `json:"skill_path"`
	Valid     bool   `json:"valid"`
	Errors    int    `json:"errors"`
	Warnings  int    `json:"warnings"`
}

func summarize(reports []*domain.Report) []skillSummary {
	summaries := make([]skillSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, skillSummary{
			SkillName: r.SkillName,
			SkillPath: r.SkillPath,
			Valid:     r.Valid,
			Errors:    r.ErrorCount(),
			Warnings:  r.WarningCount(),
		})
	}
	return summaries
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
