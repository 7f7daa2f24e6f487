package mcpserver

// Implementation Plan:
// 1. AddCodebaseMapperTool - composable tool registration function
// 2. createCodebaseMapperHandler - handler factory that captures config
// 3. Parse path/format arguments from MCP request
// 4. Scan the directory, run the mapper, render the report
// 5. Return rendered report as text (mcp-go convention)

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codemap-dev/codemap/internal/config"
	"github.com/codemap-dev/codemap/internal/lang"
	"github.com/codemap-dev/codemap/internal/mapper"
	"github.com/codemap-dev/codemap/internal/scanner"
)

// AddCodebaseMapperTool registers the codebase_mapper tool with an MCP server.
// This function is composable - it can be combined with other tool registrations.
func AddCodebaseMapperTool(s *server.MCPServer, cfg *config.Config) {
	tool := mcp.NewTool(
		"codebase_mapper",
		mcp.WithDescription("Build a structural map of a code directory. Analyzes source files across many languages and reports classes, functions, inheritance relationships and imports, plus per-language statistics and any files that could not be parsed."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to the directory to analyze")),
		mcp.WithString("format",
			mcp.Description("Report format: 'json' (structured document) or 'text' (tree view). Default: json")),
	)

	s.AddTool(tool, createCodebaseMapperHandler(cfg))
}

// createCodebaseMapperHandler creates the handler function for codebase_mapper.
func createCodebaseMapperHandler(cfg *config.Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		path, ok := argsMap["path"].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		format := "json"
		if f, ok := argsMap["format"].(string); ok && f != "" {
			format = strings.ToLower(f)
		}
		if format != "json" && format != "text" {
			return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: must be 'json' or 'text'", format)), nil
		}

		info, err := os.Stat(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("cannot access path: %v", err)), nil
		}
		if !info.IsDir() {
			return mcp.NewToolResultError(fmt.Sprintf("path is not a directory: %s", path)), nil
		}

		report, err := mapDirectory(ctx, cfg, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc := mapper.BuildDocument(report)

		if format == "text" {
			return mcp.NewToolResultText(mapper.RenderText(doc)), nil
		}

		jsonData, err := mapper.EncodeJSON(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// mapDirectory runs one full scan-and-analyze pass over root.
func mapDirectory(ctx context.Context, cfg *config.Config, root string) (*mapper.Report, error) {
	sc, err := scanner.New(root, cfg.Scan.Ignore, cfg.Scan.UseGitignore)
	if err != nil {
		return nil, fmt.Errorf("failed to set up scanner: %w", err)
	}

	paths, err := sc.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate files: %w", err)
	}

	analyzer := mapper.NewAnalyzer(lang.NewRegistry(), int(cfg.Limits.MaxFileSize))
	m := mapper.NewMapper(analyzer, nil, mapper.Options{Concurrency: cfg.Scan.Concurrency})
	return m.Run(ctx, root, paths, sc.ReadFile), nil
}
