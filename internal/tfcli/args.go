package tfcli

import "strconv"

// Option structs mirror the parameters each tf subcommand accepts. Paths are
// expected to be final (already resolved); builders only arrange syntax.

// CheckoutOptions configures a checkout invocation.
type CheckoutOptions struct {
	Paths     []string
	LockType  string // none, checkin, checkout
	Recursive bool
	FileType  string
}

// CheckinOptions configures a checkin invocation.
type CheckinOptions struct {
	Paths          []string
	Comment        string
	Recursive      bool
	Associate      []int // work item IDs to associate
	Resolve        []int // work item IDs to resolve
	OverrideReason string
}

// BranchOptions configures a branch invocation.
type BranchOptions struct {
	SourcePath string
	TargetPath string
	Version    string
}

// MergeOptions configures a merge invocation.
type MergeOptions struct {
	Source    string
	Target    string
	Version   string
	Recursive bool
	Discard   bool
	Baseless  bool
}

// HistoryOptions configures a history invocation.
type HistoryOptions struct {
	Path      string
	Recursive bool
	StopAfter int // maximum changesets to return, 0 = unlimited
	Version   string
	User      string
}

// CheckoutArgs builds the argument vector for tf checkout.
func CheckoutArgs(o CheckoutOptions) []string {
	args := []string{"checkout"}
	if o.LockType != "" {
		args = append(args, "/lock:"+o.LockType)
	}
	if o.Recursive {
		args = append(args, "/recursive")
	}
	if o.FileType != "" {
		args = append(args, "/type:"+o.FileType)
	}
	return append(args, o.Paths...)
}

// CheckinArgs builds the argument vector for tf checkin.
func CheckinArgs(o CheckinOptions) []string {
	args := []string{"checkin", "/comment:" + o.Comment}
	if o.Recursive {
		args = append(args, "/recursive")
	}
	for _, id := range o.Associate {
		args = append(args, "/associate:"+strconv.Itoa(id))
	}
	for _, id := range o.Resolve {
		args = append(args, "/resolve:"+strconv.Itoa(id))
	}
	if o.OverrideReason != "" {
		args = append(args, "/override:"+o.OverrideReason)
	}
	return append(args, o.Paths...)
}

// AddArgs builds the argument vector for tf add.
func AddArgs(paths []string, recursive bool) []string {
	args := []string{"add"}
	if recursive {
		args = append(args, "/recursive")
	}
	return append(args, paths...)
}

// DeleteArgs builds the argument vector for tf delete.
func DeleteArgs(paths []string, recursive bool) []string {
	args := []string{"delete"}
	if recursive {
		args = append(args, "/recursive")
	}
	return append(args, paths...)
}

// RenameArgs builds the argument vector for tf rename.
func RenameArgs(oldPath, newPath string) []string {
	return []string{"rename", oldPath, newPath}
}

// UndoArgs builds the argument vector for tf undo.
func UndoArgs(paths []string, recursive bool) []string {
	args := []string{"undo"}
	if recursive {
		args = append(args, "/recursive")
	}
	return append(args, paths...)
}

// StatusArgs builds the argument vector for tf status. An empty path list
// queries the working directory.
func StatusArgs(paths []string, recursive bool) []string {
	args := []string{"status"}
	if recursive {
		args = append(args, "/recursive")
	}
	if len(paths) == 0 {
		return append(args, ".")
	}
	return append(args, paths...)
}

// GetLatestArgs builds the argument vector for tf get. An empty path list
// updates the working directory.
func GetLatestArgs(paths []string, recursive, force bool) []string {
	args := []string{"get"}
	if recursive {
		args = append(args, "/recursive")
	}
	if force {
		args = append(args, "/force")
	}
	if len(paths) == 0 {
		return append(args, ".")
	}
	return append(args, paths...)
}

// BranchArgs builds the argument vector for tf branch.
func BranchArgs(o BranchOptions) []string {
	args := []string{"branch", o.SourcePath, o.TargetPath}
	if o.Version != "" {
		args = append(args, "/version:"+o.Version)
	}
	return args
}

// MergeArgs builds the argument vector for tf merge.
func MergeArgs(o MergeOptions) []string {
	args := []string{"merge", o.Source, o.Target}
	if o.Version != "" {
		args = append(args, "/version:"+o.Version)
	}
	if o.Recursive {
		args = append(args, "/recursive")
	}
	if o.Discard {
		args = append(args, "/discard")
	}
	if o.Baseless {
		args = append(args, "/baseless")
	}
	return args
}

// HistoryArgs builds the argument vector for tf history.
func HistoryArgs(o HistoryOptions) []string {
	args := []string{"history", o.Path}
	if o.Recursive {
		args = append(args, "/recursive")
	}
	if o.StopAfter > 0 {
		args = append(args, "/stopafter:"+strconv.Itoa(o.StopAfter))
	}
	if o.Version != "" {
		args = append(args, "/version:"+o.Version)
	}
	if o.User != "" {
		args = append(args, "/user:"+o.User)
	}
	return args
}

// WorkfoldArgs builds the argument vector for the workspace-mapping query
// backing WorkspaceInfo.
func WorkfoldArgs() []string {
	return []string{"workfold"}
}
