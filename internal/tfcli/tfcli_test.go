package tfcli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfstool/tfsmcp/internal/testable"
)

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, "tf", c.ExePath())
	assert.Equal(t, "", c.WorkingDir())
}

func TestRun_Success(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"tf status .": "file1.cs  edit  /src/file1.cs",
		},
	}
	c := New(Options{Executor: mock, WorkingDir: "/src"})

	res, err := c.Run(context.Background(), "", []string{"status", "."})
	require.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Stdout, "file1.cs")
	assert.Equal(t, []string{"status", "."}, res.Args)
}

func TestRun_NonZeroExitPreservesStderr(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		DefaultError: "TF14061: The workspace does not exist.",
	}
	c := New(Options{Executor: mock})

	res, err := c.Run(context.Background(), "", []string{"status", "."})
	require.NoError(t, err)
	assert.False(t, res.Ok())
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "TF14061: The workspace does not exist.")
}

func TestRun_ExecutableNotFound(t *testing.T) {
	mock := &testable.MockCommandExecutor{
		LookPathErr: fmt.Errorf("exec: \"tf\": executable file not found in $PATH"),
	}
	c := New(Options{Executor: mock})

	_, err := c.Run(context.Background(), "", []string{"status"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutableNotFound)
	assert.Empty(t, mock.Calls, "no subprocess should be spawned")
}

func TestRun_Timeout(t *testing.T) {
	// A simulated executable that never terminates within the deadline.
	c := New(Options{ExePath: "sleep", Timeout: 100 * time.Millisecond})

	start := time.Now()
	_, err := c.Run(context.Background(), "", []string{"30"})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, elapsed, 5*time.Second, "timeout must fire near the deadline, not at process end")
}

func TestRun_UsesRequestWorkingDirOverDefault(t *testing.T) {
	c := New(Options{ExePath: "pwd", WorkingDir: t.TempDir()})
	override := t.TempDir()

	res, err := c.Run(context.Background(), override, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, override)
}

func TestAvailable(t *testing.T) {
	ok := New(Options{Executor: &testable.MockCommandExecutor{LookPathResult: "/bin/tf"}})
	assert.NoError(t, ok.Available())

	missing := New(Options{Executor: &testable.MockCommandExecutor{LookPathErr: errors.New("nope")}})
	assert.ErrorIs(t, missing.Available(), ErrExecutableNotFound)
}

func TestResult_CommandRedactsLogin(t *testing.T) {
	res := &Result{Args: []string{"get", "/login:alice,secret99", "."}}
	cmd := res.Command()
	assert.NotContains(t, cmd, "secret99")
	assert.Contains(t, cmd, "/login:alice,[REDACTED]")
}
