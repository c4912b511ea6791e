package mcpserver

import (
	"fmt"
	"strings"
)

// ValidationError reports a tool call rejected before any tf command was
// invoked.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// requirePaths checks that at least one non-empty path was supplied.
func requirePaths(paths []string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) != "" {
			return nil
		}
	}
	return &ValidationError{Field: "paths", Reason: "at least one path is required"}
}

// requireString checks that a required string parameter is non-empty.
func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}
