package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemap-dev/codemap/internal/config"
	"github.com/codemap-dev/codemap/internal/mcpserver"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing the codebase mapper",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants request structural maps of codebases.

The MCP server:
- Provides the codebase_mapper tool (JSON or text reports)
- Applies the same scan and size limits as the map command
- Communicates via stdio (standard MCP transport)

Example:
  codemap mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration from .codemap/config.yml
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Codemap MCP Server\n\n")

	server, err := mcpserver.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Serve (blocks until shutdown)
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
