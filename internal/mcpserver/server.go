// Package mcpserver exposes the codebase mapper over the Model Context
// Protocol so coding assistants can request structural reports directly.
package mcpserver

// Implementation Plan:
// 1. Server struct wrapping mcp-go's stdio server
// 2. NewServer - creates server, registers the codebase_mapper tool
// 3. Serve - starts MCP server on stdio with graceful shutdown
// 4. Graceful shutdown on SIGTERM/SIGINT

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/codemap-dev/codemap/internal/config"
)

// Server manages the MCP server lifecycle.
type Server struct {
	cfg *config.Config
	mcp *server.MCPServer
}

// NewServer creates an MCP server serving the codebase_mapper tool. The
// configuration supplies scan and limit defaults for every tool call.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	mcpServer := server.NewMCPServer(
		"codemap-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddCodebaseMapperTool(mcpServer, cfg)

	return &Server{
		cfg: cfg,
		mcp: mcpServer,
	}, nil
}

// Serve starts the MCP server and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
