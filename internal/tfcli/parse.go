package tfcli

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsers turn tf's free-text output into structured records. They are
// deliberately tolerant: anything that does not match the expected table
// shape is skipped, and callers fall back to raw text when a parser returns
// nothing. tf's output format is an external contract this package cannot
// enforce.

// StatusEntry is one pending change reported by tf status.
type StatusEntry struct {
	FileName  string `json:"file_name"`
	Change    string `json:"change"`
	LocalPath string `json:"local_path,omitempty"`
}

// Changeset is one history record reported by tf history.
type Changeset struct {
	ID      int    `json:"changeset"`
	User    string `json:"user"`
	Date    string `json:"date"`
	Comment string `json:"comment,omitempty"`
}

// Workspace is the read-only snapshot returned by the workspace query.
type Workspace struct {
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	Computer   string `json:"computer"`
	Collection string `json:"collection"`
	Location   string `json:"location"`
}

// columnSep splits table rows on runs of two or more spaces, so local paths
// containing single spaces survive.
var columnSep = regexp.MustCompile(`\s{2,}`)

// ParseStatus extracts pending-change entries from tf status output.
// Returns nil when no table rows are recognized.
func ParseStatus(output string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if !isTableRow(line) {
			continue
		}
		cols := columnSep.Split(strings.TrimSpace(line), -1)
		if len(cols) < 2 {
			continue
		}
		entry := StatusEntry{FileName: cols[0], Change: cols[1]}
		if len(cols) > 2 {
			entry.LocalPath = cols[2]
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseHistory extracts changeset records from tf history output. Rows are
// recognized by a leading changeset number. Returns nil when nothing
// matches.
func ParseHistory(output string) []Changeset {
	var changesets []Changeset
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(strings.TrimRight(line, "\r"))
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		cs := Changeset{ID: id, User: fields[1], Date: fields[2]}
		if len(fields) > 3 {
			cs.Comment = strings.Join(fields[3:], " ")
		}
		changesets = append(changesets, cs)
	}
	return changesets
}

// ChangedFiles extracts file names from per-file action lines such as
// "file1.cs - checked out" or "file2.cs: added". Directory headers
// (lines ending in ":") and table decoration are skipped.
func ChangedFiles(output string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" || strings.HasSuffix(line, ":") || isDecoration(line) {
			continue
		}
		if name, _, ok := strings.Cut(line, " - "); ok {
			files = append(files, strings.TrimSpace(name))
			continue
		}
		if name, _, ok := strings.Cut(line, ": "); ok {
			files = append(files, strings.TrimSpace(name))
			continue
		}
		if !strings.ContainsAny(line, " \t") {
			files = append(files, line)
		}
	}
	return files
}

// ParseWorkspace extracts workspace fields from tf workfold output. Missing
// fields degrade to "Unknown" rather than failing the query.
func ParseWorkspace(output, computer string) Workspace {
	ws := Workspace{
		Name:       "Unknown",
		Owner:      "Unknown",
		Computer:   computer,
		Collection: "Unknown",
		Location:   "Local",
	}
	// Workfold aligns its colons ("Workspace : NAME"), so match on the
	// label and cut at the first colon.
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		switch {
		case strings.HasPrefix(line, "Workspace"):
			ws.Name = valueAfterColon(line)
		case strings.HasPrefix(line, "Owner"):
			ws.Owner = valueAfterColon(line)
		case strings.HasPrefix(line, "Collection"):
			ws.Collection = valueAfterColon(line)
		}
	}
	// Workfold prints the workspace name with its owner in parentheses:
	// "Workspace: NAME (owner)".
	if name, owner, ok := strings.Cut(ws.Name, " ("); ok {
		ws.Name = strings.TrimSpace(name)
		if ws.Owner == "Unknown" {
			ws.Owner = strings.TrimSuffix(strings.TrimSpace(owner), ")")
		}
	}
	return ws
}

func valueAfterColon(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return "Unknown"
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "Unknown"
	}
	return value
}

// isTableRow reports whether a status line is a data row rather than a
// header, separator, section, or summary line.
func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isDecoration(trimmed) {
		return false
	}
	if strings.HasSuffix(trimmed, ":") {
		return false // section header like "$/Project/src:"
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "file name") || strings.HasPrefix(lower, "detected change") {
		return false
	}
	if strings.Contains(lower, "change(s)") || strings.Contains(lower, "no pending changes") {
		return false
	}
	return true
}

// isDecoration reports whether a line is table underlining.
func isDecoration(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '=' && r != ' ' {
			return false
		}
	}
	return true
}
