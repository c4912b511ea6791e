package tfcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Table(t *testing.T) {
	output := `File name      Change     Local path
---------      ------     ----------
file1.cs       edit       C:\src\project\file1.cs
new file.cs    add        C:\src\project\new file.cs

2 change(s)
`
	entries := ParseStatus(output)
	require.Len(t, entries, 2)
	assert.Equal(t, StatusEntry{FileName: "file1.cs", Change: "edit", LocalPath: `C:\src\project\file1.cs`}, entries[0])
	assert.Equal(t, StatusEntry{FileName: "new file.cs", Change: "add", LocalPath: `C:\src\project\new file.cs`}, entries[1])
}

func TestParseStatus_SkipsSectionHeaders(t *testing.T) {
	output := `$/Project/src:
File name  Change  Local path
---------  ------  ----------
a.cs       edit    C:\src\a.cs
`
	entries := ParseStatus(output)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.cs", entries[0].FileName)
}

func TestParseStatus_NoPendingChanges(t *testing.T) {
	assert.Nil(t, ParseStatus("There are no pending changes.\n"))
}

func TestParseStatus_Garbage(t *testing.T) {
	assert.Nil(t, ParseStatus(""))
}

func TestParseHistory(t *testing.T) {
	output := `Changeset User           Date       Comment
--------- -------------- ---------- -----------------------------
12345     DOMAIN\jsmith  2024-01-15 Fixed the widget alignment
12340     DOMAIN\akumar  2024-01-12 Initial import
`
	changesets := ParseHistory(output)
	require.Len(t, changesets, 2)
	assert.Equal(t, 12345, changesets[0].ID)
	assert.Equal(t, `DOMAIN\jsmith`, changesets[0].User)
	assert.Equal(t, "2024-01-15", changesets[0].Date)
	assert.Equal(t, "Fixed the widget alignment", changesets[0].Comment)
	assert.Equal(t, 12340, changesets[1].ID)
}

func TestParseHistory_NoMatches(t *testing.T) {
	assert.Nil(t, ParseHistory("no history entries found for the item\n"))
}

func TestChangedFiles_DashStyle(t *testing.T) {
	files := ChangedFiles("file1.cs - checked out\nfile2.cs - checked out\n")
	assert.Equal(t, []string{"file1.cs", "file2.cs"}, files)
}

func TestChangedFiles_ColonStyle(t *testing.T) {
	files := ChangedFiles("a.cs: added\n")
	assert.Equal(t, []string{"a.cs"}, files)
}

func TestChangedFiles_DirectoryHeaderAndBareNames(t *testing.T) {
	output := `C:\src\project:
file1.cs
file2.cs
`
	assert.Equal(t, []string{"file1.cs", "file2.cs"}, ChangedFiles(output))
}

func TestChangedFiles_Empty(t *testing.T) {
	assert.Nil(t, ChangedFiles(""))
}

func TestParseWorkspace(t *testing.T) {
	output := `===============================================================
Workspace : BUILD-WS (Jane Smith)
Collection: https://tfs.example.com/tfs/DefaultCollection
 $/Project: C:\src\project
`
	ws := ParseWorkspace(output, "BUILDBOX")
	assert.Equal(t, "BUILD-WS", ws.Name)
	assert.Equal(t, "Jane Smith", ws.Owner)
	assert.Equal(t, "BUILDBOX", ws.Computer)
	assert.Equal(t, "https://tfs.example.com/tfs/DefaultCollection", ws.Collection)
}

func TestParseWorkspace_CanonicalForm(t *testing.T) {
	output := `Workspace: BUILD-WS (Jane Smith)
Collection: https://tfs.example.com/tfs/DefaultCollection
`
	ws := ParseWorkspace(output, "BUILDBOX")
	assert.Equal(t, "BUILD-WS", ws.Name)
	assert.Equal(t, "Jane Smith", ws.Owner)
	assert.Equal(t, "https://tfs.example.com/tfs/DefaultCollection", ws.Collection)
	assert.Equal(t, "Local", ws.Location)
}

func TestParseWorkspace_ExplicitOwnerLine(t *testing.T) {
	output := `Workspace: DEVBOX-WS
Owner: DOMAIN\jsmith
`
	ws := ParseWorkspace(output, "DEVBOX")
	assert.Equal(t, "DEVBOX-WS", ws.Name)
	assert.Equal(t, `DOMAIN\jsmith`, ws.Owner)
	assert.Equal(t, "Unknown", ws.Collection)
}

func TestParseWorkspace_EmptyOutput(t *testing.T) {
	ws := ParseWorkspace("", "HOST")
	assert.Equal(t, Workspace{
		Name: "Unknown", Owner: "Unknown", Computer: "HOST",
		Collection: "Unknown", Location: "Local",
	}, ws)
}
