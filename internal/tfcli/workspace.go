package tfcli

import (
	"context"
	"fmt"
	"os"
)

// WorkspaceInfo queries the current workspace mapping and parses it into a
// snapshot. Nothing is cached; every call re-runs the query.
func (c *Client) WorkspaceInfo(ctx context.Context) (*Workspace, error) {
	res, err := c.Run(ctx, "", WorkfoldArgs())
	if err != nil {
		return nil, fmt.Errorf("workspace query: %w", err)
	}
	if !res.Ok() {
		return nil, fmt.Errorf("workspace query failed (exit %d): %s", res.ExitCode, res.Stderr)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "Unknown"
	}
	ws := ParseWorkspace(res.Stdout, hostname)
	return &ws, nil
}
