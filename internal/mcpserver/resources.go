package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// Resource URIs. The status resource is a template; {path} is the file or
// folder to query.
const (
	workspaceInfoURI  = "tfs://workspace/info"
	statusURITemplate = "tfs://status/{path}"
	statusURIPrefix   = "tfs://status/"
)

// registerResources adds the workspace and status resources to the MCP
// server.
func (s *Server) registerResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         workspaceInfoURI,
		Name:        "workspace-info",
		Title:       "TFS workspace information",
		Description: "Current workspace name, owner, computer, and collection URL.",
		MIMEType:    "application/json",
	}, s.handleWorkspaceInfo)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: statusURITemplate,
		Name:        "path-status",
		Title:       "TFS status for a path",
		Description: "Pending changes for a single file or folder.",
		MIMEType:    "application/json",
	}, s.handlePathStatus)
}

// handleWorkspaceInfo serves tfs://workspace/info. The workspace snapshot is
// recomputed on every read. Query failures become a JSON error body rather
// than a protocol fault.
func (s *Server) handleWorkspaceInfo(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var body any
	ws, err := s.tf.WorkspaceInfo(ctx)
	if err != nil {
		body = map[string]string{"error": err.Error()}
	} else {
		body = ws
	}
	return jsonResource(workspaceInfoURI, body)
}

// handlePathStatus serves tfs://status/{path}.
func (s *Server) handlePathStatus(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := ""
	if req != nil && req.Params != nil {
		uri = strings.TrimSpace(req.Params.URI)
	}
	if !strings.HasPrefix(uri, statusURIPrefix) {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	path, err := url.PathUnescape(strings.TrimPrefix(uri, statusURIPrefix))
	if err != nil || path == "" {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	res, runErr := s.tf.Status(ctx, "", []string{path}, false)
	if runErr != nil {
		return jsonResource(uri, map[string]string{"path": path, "error": runErr.Error()})
	}
	return jsonResource(uri, map[string]any{
		"path":    path,
		"success": res.Ok(),
		"entries": tfcli.ParseStatus(res.Stdout),
		"output":  res.Stdout,
		"error":   res.Stderr,
	})
}

// jsonResource wraps a value as a single JSON resource content.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
