// Package redact strips credential material from strings before they appear
// in output, logs, or error messages.
package redact

import (
	"os"
	"regexp"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. TFS deployments commonly inject credentials through
// these when scripting the tf client.
var sensitiveEnvVars = []string{
	"TFS_PASSWORD",
	"TFS_PAT",
	"TF_ADDITIONAL_CREDENTIALS",
	"AZURE_DEVOPS_EXT_PAT",
}

// loginFlag matches the tf /login:user,password flag. The password half must
// never be logged.
var loginFlag = regexp.MustCompile(`(?i)(/login:[^,\s]+),\S+`)

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces any occurrence of a known sensitive environment variable
// value with "[REDACTED]", and masks the password portion of any embedded
// /login: flag. Returns the original string if nothing sensitive is found.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return loginFlag.ReplaceAllString(s, "$1,[REDACTED]")
}

// CommandLine renders an argument vector as a single loggable string with
// credential material removed.
func CommandLine(args []string) string {
	return String(strings.Join(args, " "))
}
