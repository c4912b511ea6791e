package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfstool/tfsmcp/internal/config"
	"github.com/tfstool/tfsmcp/internal/testable"
	"github.com/tfstool/tfsmcp/internal/tfcli"
)

func newTestServer(mock *testable.MockCommandExecutor) *Server {
	cfg := config.Default()
	cfg.WorkingDir = "/work"
	return New(cfg, tfcli.New(tfcli.Options{WorkingDir: cfg.WorkingDir, Executor: mock}))
}

func readJSON(t *testing.T, res *mcp.ReadResourceResult) map[string]any {
	t.Helper()
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &body))
	return body
}

func TestWorkspaceInfoResource(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"tf workfold": "Workspace : DEV-WS (Jane Smith)\nCollection: https://tfs.example.com/tfs\n",
		},
	}
	s := newTestServer(mock)

	res, err := s.handleWorkspaceInfo(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "tfs://workspace/info"},
	})
	require.NoError(t, err)

	body := readJSON(t, res)
	assert.Equal(t, "DEV-WS", body["name"])
	assert.Equal(t, "Jane Smith", body["owner"])
	assert.Equal(t, "https://tfs.example.com/tfs", body["collection"])
}

func TestWorkspaceInfoResource_ErrorBecomesJSONBody(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		DefaultError: "TF30063: not authorized",
	}
	s := newTestServer(mock)

	res, err := s.handleWorkspaceInfo(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "tfs://workspace/info"},
	})
	require.NoError(t, err, "query failures must surface as JSON, not protocol faults")

	body := readJSON(t, res)
	assert.Contains(t, body["error"], "TF30063")
}

func TestPathStatusResource(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		DefaultOutput: "File name  Change  Local path\n---------  ------  ----------\nfile1.cs   edit    /work/file1.cs\n",
	}
	s := newTestServer(mock)

	res, err := s.handlePathStatus(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "tfs://status/file1.cs"},
	})
	require.NoError(t, err)

	body := readJSON(t, res)
	assert.Equal(t, "file1.cs", body["path"])
	assert.Equal(t, true, body["success"])
	entries, ok := body["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 1)
}

func TestPathStatusResource_UnescapesPath(t *testing.T) {
	mock := &testable.MockCommandExecutor{}
	s := newTestServer(mock)

	_, err := s.handlePathStatus(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "tfs://status/src%2Ffile1.cs"},
	})
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0], "/work/src/file1.cs")
}

func TestPathStatusResource_UnknownURI(t *testing.T) {
	s := newTestServer(&testable.MockCommandExecutor{})

	_, err := s.handlePathStatus(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "tfs://other/thing"},
	})
	require.Error(t, err)
}
