package tfcli

import (
	"path/filepath"
	"strings"
)

// Resolve maps a request path onto the working directory. Relative local
// paths are joined to workingDir; absolute paths and TFS server paths
// ($/...) pass through unchanged.
func Resolve(workingDir, p string) string {
	if p == "" {
		return workingDir
	}
	if strings.HasPrefix(p, "$/") || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workingDir, p)
}

// ResolveAll applies Resolve to every path, preserving order.
func ResolveAll(workingDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = Resolve(workingDir, p)
	}
	return out
}
