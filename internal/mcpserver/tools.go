package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// CheckoutInput is the input schema for the tf_checkout tool.
type CheckoutInput struct {
	Paths            []string `json:"paths" jsonschema:"File or folder paths to check out for editing"`
	LockType         string   `json:"lock_type,omitempty" jsonschema:"Lock type: none, checkin, or checkout"`
	Recursive        bool     `json:"recursive,omitempty" jsonschema:"Recursively check out files in folders"`
	FileType         string   `json:"file_type,omitempty" jsonschema:"File type specification"`
	WorkingDirectory string   `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// CheckinInput is the input schema for the tf_checkin tool.
type CheckinInput struct {
	Paths            []string `json:"paths" jsonschema:"File or folder paths to check in"`
	Comment          string   `json:"comment" jsonschema:"Checkin comment (required)"`
	Recursive        bool     `json:"recursive,omitempty" jsonschema:"Recursively check in files in folders"`
	Associate        []int    `json:"associate,omitempty" jsonschema:"Work item IDs to associate with this checkin"`
	Resolve          []int    `json:"resolve,omitempty" jsonschema:"Work item IDs to resolve with this checkin"`
	OverrideReason   string   `json:"override_reason,omitempty" jsonschema:"Reason for overriding policy failures"`
	WorkingDirectory string   `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// PathsInput is the shared input schema for tools that act on a path list.
type PathsInput struct {
	Paths            []string `json:"paths" jsonschema:"File or folder paths to operate on"`
	Recursive        bool     `json:"recursive,omitempty" jsonschema:"Recursively apply to files in folders"`
	WorkingDirectory string   `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// RenameInput is the input schema for the tf_rename tool.
type RenameInput struct {
	OldPath          string `json:"old_path" jsonschema:"Current path of the file"`
	NewPath          string `json:"new_path" jsonschema:"New path for the file"`
	WorkingDirectory string `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// StatusInput is the input schema for the tf_status tool.
type StatusInput struct {
	Paths            []string `json:"paths,omitempty" jsonschema:"Paths to check status for (defaults to the working directory)"`
	Recursive        bool     `json:"recursive,omitempty" jsonschema:"Recursively check status in folders"`
	WorkingDirectory string   `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// GetLatestInput is the input schema for the tf_get_latest tool.
type GetLatestInput struct {
	Paths            []string `json:"paths,omitempty" jsonschema:"Paths to update (defaults to the working directory)"`
	Recursive        bool     `json:"recursive,omitempty" jsonschema:"Recursively update files in folders"`
	Force            bool     `json:"force,omitempty" jsonschema:"Force overwrite of local changes"`
	WorkingDirectory string   `json:"working_directory,omitempty" jsonschema:"Directory relative paths resolve against (defaults to the server working directory)"`
}

// BranchInput is the input schema for the tf_branch tool.
type BranchInput struct {
	SourcePath string `json:"source_path" jsonschema:"Source path to branch from"`
	TargetPath string `json:"target_path" jsonschema:"Target path for the new branch"`
	Version    string `json:"version,omitempty" jsonschema:"Version specification"`
}

// MergeInput is the input schema for the tf_merge tool.
type MergeInput struct {
	Source    string `json:"source" jsonschema:"Source path or branch to merge from"`
	Target    string `json:"target" jsonschema:"Target path to merge to"`
	Version   string `json:"version,omitempty" jsonschema:"Version specification"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"Recursively merge folders"`
	Discard   bool   `json:"discard,omitempty" jsonschema:"Discard changes instead of merging"`
	Baseless  bool   `json:"baseless,omitempty" jsonschema:"Perform a baseless merge"`
}

// HistoryInput is the input schema for the tf_history tool.
type HistoryInput struct {
	Path      string `json:"path" jsonschema:"Path to get history for"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"Recursively get history for folders"`
	StopAfter int    `json:"stopafter,omitempty" jsonschema:"Maximum number of changesets to return"`
	Version   string `json:"version,omitempty" jsonschema:"Version range specification"`
	User      string `json:"user,omitempty" jsonschema:"Filter history by user"`
}

// Output is the uniform payload returned by every tf tool. Success mirrors
// the subprocess exit code; stderr is carried verbatim either way.
type Output struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Command    string              `json:"command"`
	ExitCode   int                 `json:"exit_code"`
	Output     string              `json:"output,omitempty"`
	Stderr     string              `json:"stderr,omitempty"`
	Files      []string            `json:"files,omitempty"`
	Entries    []tfcli.StatusEntry `json:"entries,omitempty"`
	Changesets []tfcli.Changeset   `json:"changesets,omitempty"`
}

// outcome maps a completed tf invocation onto the uniform payload. A
// non-zero exit is a failed operation, not a protocol error.
func outcome(op string, res *tfcli.Result) Output {
	out := Output{
		Success:  res.Ok(),
		Command:  res.Command(),
		ExitCode: res.ExitCode,
		Output:   res.Stdout,
		Stderr:   res.Stderr,
	}
	if res.Ok() {
		out.Message = op + " completed"
	} else {
		out.Message = fmt.Sprintf("%s failed with exit code %d", op, res.ExitCode)
		slog.Warn("tf command failed", "operation", op, "exit_code", res.ExitCode)
	}
	return out
}

// fileOutcome additionally extracts per-file action lines from the output.
// When parsing finds nothing the raw output stands on its own.
func fileOutcome(op, past string, res *tfcli.Result) Output {
	out := outcome(op, res)
	if !out.Success {
		return out
	}
	out.Files = tfcli.ChangedFiles(out.Output)
	if len(out.Files) > 0 {
		out.Message = fmt.Sprintf("%s %d file(s)", past, len(out.Files))
	}
	return out
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all tf tools to the MCP server.
func (s *Server) registerTools(server *mcp.Server) {
	mutating := &mcp.ToolAnnotations{
		ReadOnlyHint:    false,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
	destructive := &mcp.ToolAnnotations{
		ReadOnlyHint:    false,
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_checkout",
		Description: "Check out files from TFS for editing.",
		Annotations: mutating,
	}, s.handleCheckout)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_checkin",
		Description: "Check in pending changes to TFS with a comment.",
		Annotations: mutating,
	}, s.handleCheckin)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_add",
		Description: "Add files to TFS source control.",
		Annotations: mutating,
	}, s.handleAdd)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_delete",
		Description: "Delete files from TFS source control.",
		Annotations: destructive,
	}, s.handleDelete)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_rename",
		Description: "Rename or move a file in TFS source control.",
		Annotations: mutating,
	}, s.handleRename)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_undo",
		Description: "Undo pending changes in TFS, discarding local edits.",
		Annotations: destructive,
	}, s.handleUndo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_status",
		Description: "Get the status of pending changes in TFS.",
		Annotations: readOnly,
	}, s.handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_get_latest",
		Description: "Get the latest version of files from TFS.",
		Annotations: mutating,
	}, s.handleGetLatest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_branch",
		Description: "Create a branch in TFS from a source path to a target path.",
		Annotations: mutating,
	}, s.handleBranch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_merge",
		Description: "Merge changes between TFS branches or paths.",
		Annotations: mutating,
	}, s.handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tf_history",
		Description: "Get changeset history for a TFS file or folder.",
		Annotations: readOnly,
	}, s.handleHistory)
}

func (s *Server) handleCheckout(ctx context.Context, _ *mcp.CallToolRequest, in CheckoutInput) (*mcp.CallToolResult, Output, error) {
	if err := requirePaths(in.Paths); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Checkout(ctx, in.WorkingDirectory, tfcli.CheckoutOptions{
		Paths:     in.Paths,
		LockType:  in.LockType,
		Recursive: in.Recursive,
		FileType:  in.FileType,
	})
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("checkout", "checked out", res), nil
}

func (s *Server) handleCheckin(ctx context.Context, _ *mcp.CallToolRequest, in CheckinInput) (*mcp.CallToolResult, Output, error) {
	if err := requirePaths(in.Paths); err != nil {
		return nil, Output{}, err
	}
	if err := requireString("comment", in.Comment); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Checkin(ctx, in.WorkingDirectory, tfcli.CheckinOptions{
		Paths:          in.Paths,
		Comment:        in.Comment,
		Recursive:      in.Recursive,
		Associate:      in.Associate,
		Resolve:        in.Resolve,
		OverrideReason: in.OverrideReason,
	})
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("checkin", "checked in", res), nil
}

func (s *Server) handleAdd(ctx context.Context, _ *mcp.CallToolRequest, in PathsInput) (*mcp.CallToolResult, Output, error) {
	if err := requirePaths(in.Paths); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Add(ctx, in.WorkingDirectory, in.Paths, in.Recursive)
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("add", "added", res), nil
}

func (s *Server) handleDelete(ctx context.Context, _ *mcp.CallToolRequest, in PathsInput) (*mcp.CallToolResult, Output, error) {
	if err := requirePaths(in.Paths); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Delete(ctx, in.WorkingDirectory, in.Paths, in.Recursive)
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("delete", "deleted", res), nil
}

func (s *Server) handleRename(ctx context.Context, _ *mcp.CallToolRequest, in RenameInput) (*mcp.CallToolResult, Output, error) {
	if err := requireString("old_path", in.OldPath); err != nil {
		return nil, Output{}, err
	}
	if err := requireString("new_path", in.NewPath); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Rename(ctx, in.WorkingDirectory, in.OldPath, in.NewPath)
	if err != nil {
		return nil, Output{}, err
	}
	return nil, outcome("rename", res), nil
}

func (s *Server) handleUndo(ctx context.Context, _ *mcp.CallToolRequest, in PathsInput) (*mcp.CallToolResult, Output, error) {
	if err := requirePaths(in.Paths); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Undo(ctx, in.WorkingDirectory, in.Paths, in.Recursive)
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("undo", "undid changes to", res), nil
}

func (s *Server) handleStatus(ctx context.Context, _ *mcp.CallToolRequest, in StatusInput) (*mcp.CallToolResult, Output, error) {
	res, err := s.tf.Status(ctx, in.WorkingDirectory, in.Paths, in.Recursive)
	if err != nil {
		return nil, Output{}, err
	}
	out := outcome("status", res)
	if out.Success {
		out.Entries = tfcli.ParseStatus(out.Output)
		out.Message = fmt.Sprintf("%d pending change(s)", len(out.Entries))
	}
	return nil, out, nil
}

func (s *Server) handleGetLatest(ctx context.Context, _ *mcp.CallToolRequest, in GetLatestInput) (*mcp.CallToolResult, Output, error) {
	res, err := s.tf.GetLatest(ctx, in.WorkingDirectory, in.Paths, in.Recursive, in.Force)
	if err != nil {
		return nil, Output{}, err
	}
	return nil, fileOutcome("get latest", "updated", res), nil
}

func (s *Server) handleBranch(ctx context.Context, _ *mcp.CallToolRequest, in BranchInput) (*mcp.CallToolResult, Output, error) {
	if err := requireString("source_path", in.SourcePath); err != nil {
		return nil, Output{}, err
	}
	if err := requireString("target_path", in.TargetPath); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Branch(ctx, "", tfcli.BranchOptions{
		SourcePath: in.SourcePath,
		TargetPath: in.TargetPath,
		Version:    in.Version,
	})
	if err != nil {
		return nil, Output{}, err
	}
	return nil, outcome("branch", res), nil
}

func (s *Server) handleMerge(ctx context.Context, _ *mcp.CallToolRequest, in MergeInput) (*mcp.CallToolResult, Output, error) {
	if err := requireString("source", in.Source); err != nil {
		return nil, Output{}, err
	}
	if err := requireString("target", in.Target); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.Merge(ctx, "", tfcli.MergeOptions{
		Source:    in.Source,
		Target:    in.Target,
		Version:   in.Version,
		Recursive: in.Recursive,
		Discard:   in.Discard,
		Baseless:  in.Baseless,
	})
	if err != nil {
		return nil, Output{}, err
	}
	return nil, outcome("merge", res), nil
}

func (s *Server) handleHistory(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, Output, error) {
	if err := requireString("path", in.Path); err != nil {
		return nil, Output{}, err
	}
	res, err := s.tf.History(ctx, "", tfcli.HistoryOptions{
		Path:      in.Path,
		Recursive: in.Recursive,
		StopAfter: in.StopAfter,
		Version:   in.Version,
		User:      in.User,
	})
	if err != nil {
		return nil, Output{}, err
	}
	out := outcome("history", res)
	if out.Success {
		out.Changesets = tfcli.ParseHistory(out.Output)
		out.Message = fmt.Sprintf("%d changeset(s)", len(out.Changesets))
	}
	return nil, out, nil
}
