// Package mcpserver exposes TFS version-control operations as MCP tools
// backed by the tfcli translator.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tfstool/tfsmcp/internal/config"
	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// Server bridges MCP tool calls to tf invocations. The tfcli client and
// configuration are fixed at construction; handlers share them read-only.
type Server struct {
	cfg config.Config
	tf  *tfcli.Client
}

// New creates a Server over an already-validated configuration.
func New(cfg config.Config, tf *tfcli.Client) *Server {
	return &Server{cfg: cfg, tf: tf}
}

// MCP builds the MCP server with all tools and resources registered.
func (s *Server) MCP(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tfsmcp",
		Title:   s.cfg.Name,
		Version: version,
	}, nil)

	s.registerTools(server)
	s.registerResources(server)
	return server
}

// Run serves MCP on the configured transport. It blocks until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context, version string) error {
	server := s.MCP(version)
	if s.cfg.Transport == config.TransportStdio {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
	return s.serveHTTP(ctx, server)
}
