package main

import "fmt"

// Exit codes for tfsmcp.
const (
	ExitOK            = 0 // Clean shutdown.
	ExitInvalidConfig = 1 // Invalid flags, environment, or config file.
	ExitServerError   = 2 // Server failed to start or crashed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the process exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
