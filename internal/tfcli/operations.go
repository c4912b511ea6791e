package tfcli

import "context"

// Per-operation entry points. Each resolves request paths against the
// supplied working directory (or the client default when empty), builds the
// argument vector, and runs a single best-effort invocation. Retrying is the
// caller's decision.

func (c *Client) resolveDir(workingDir string) string {
	if workingDir == "" {
		return c.workingDir
	}
	return workingDir
}

// Checkout checks files out for editing.
func (c *Client) Checkout(ctx context.Context, workingDir string, o CheckoutOptions) (*Result, error) {
	wd := c.resolveDir(workingDir)
	o.Paths = ResolveAll(wd, o.Paths)
	return c.Run(ctx, wd, CheckoutArgs(o))
}

// Checkin commits pending changes.
func (c *Client) Checkin(ctx context.Context, workingDir string, o CheckinOptions) (*Result, error) {
	wd := c.resolveDir(workingDir)
	o.Paths = ResolveAll(wd, o.Paths)
	return c.Run(ctx, wd, CheckinArgs(o))
}

// Add schedules files for addition to source control.
func (c *Client) Add(ctx context.Context, workingDir string, paths []string, recursive bool) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, AddArgs(ResolveAll(wd, paths), recursive))
}

// Delete schedules files for deletion.
func (c *Client) Delete(ctx context.Context, workingDir string, paths []string, recursive bool) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, DeleteArgs(ResolveAll(wd, paths), recursive))
}

// Rename moves a file to a new path.
func (c *Client) Rename(ctx context.Context, workingDir, oldPath, newPath string) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, RenameArgs(Resolve(wd, oldPath), Resolve(wd, newPath)))
}

// Undo discards pending changes.
func (c *Client) Undo(ctx context.Context, workingDir string, paths []string, recursive bool) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, UndoArgs(ResolveAll(wd, paths), recursive))
}

// Status queries pending changes. An empty path list covers the working
// directory.
func (c *Client) Status(ctx context.Context, workingDir string, paths []string, recursive bool) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, StatusArgs(ResolveAll(wd, paths), recursive))
}

// GetLatest updates local files to the latest server version.
func (c *Client) GetLatest(ctx context.Context, workingDir string, paths []string, recursive, force bool) (*Result, error) {
	wd := c.resolveDir(workingDir)
	return c.Run(ctx, wd, GetLatestArgs(ResolveAll(wd, paths), recursive, force))
}

// Branch creates a branch from source to target.
func (c *Client) Branch(ctx context.Context, workingDir string, o BranchOptions) (*Result, error) {
	wd := c.resolveDir(workingDir)
	o.SourcePath = Resolve(wd, o.SourcePath)
	o.TargetPath = Resolve(wd, o.TargetPath)
	return c.Run(ctx, wd, BranchArgs(o))
}

// Merge merges changes from source into target.
func (c *Client) Merge(ctx context.Context, workingDir string, o MergeOptions) (*Result, error) {
	wd := c.resolveDir(workingDir)
	o.Source = Resolve(wd, o.Source)
	o.Target = Resolve(wd, o.Target)
	return c.Run(ctx, wd, MergeArgs(o))
}

// History retrieves changeset history for a path.
func (c *Client) History(ctx context.Context, workingDir string, o HistoryOptions) (*Result, error) {
	wd := c.resolveDir(workingDir)
	o.Path = Resolve(wd, o.Path)
	return c.Run(ctx, wd, HistoryArgs(o))
}
