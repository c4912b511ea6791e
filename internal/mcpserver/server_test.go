package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfstool/tfsmcp/internal/config"
	"github.com/tfstool/tfsmcp/internal/testable"
	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// newTestSession builds a server over a mock executor and connects an
// in-memory client session to it.
func newTestSession(t *testing.T, mock *testable.MockCommandExecutor) *mcp.ClientSession {
	t.Helper()

	cfg := config.Default()
	cfg.WorkingDir = "/work"
	tf := tfcli.New(tfcli.Options{WorkingDir: cfg.WorkingDir, Executor: mock})
	server := New(cfg, tf).MCP("v0.0.1-test")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "v1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestNew_ReturnsServer(t *testing.T) {
	cfg := config.Default()
	server := New(cfg, tfcli.New(tfcli.Options{}))
	assert.NotNil(t, server.MCP("v0.0.1-test"))
}

func TestServer_ListsTools(t *testing.T) {
	session := newTestSession(t, &testable.MockCommandExecutor{})

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, result.Tools, 11)

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"tf_checkout", "tf_checkin", "tf_add", "tf_delete", "tf_rename",
		"tf_undo", "tf_status", "tf_get_latest", "tf_branch", "tf_merge",
		"tf_history",
	} {
		assert.True(t, names[want], "should have %s tool", want)
	}
}

func TestServer_ListsResources(t *testing.T) {
	session := newTestSession(t, &testable.MockCommandExecutor{})

	resources, err := session.ListResources(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	assert.Equal(t, "tfs://workspace/info", resources.Resources[0].URI)

	templates, err := session.ListResourceTemplates(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, templates.ResourceTemplates, 1)
	assert.Equal(t, "tfs://status/{path}", templates.ResourceTemplates[0].URITemplate)
}
