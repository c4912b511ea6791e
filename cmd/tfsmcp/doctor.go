package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// doctorCmd checks that the server would come up healthy: configuration
// valid, tf executable resolvable, workspace reachable.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that tfsmcp can reach a usable TFS workspace",
	Long: `Run preflight checks without starting the server: validate the merged
configuration, resolve the tf executable, and query the current workspace
mapping. Useful when an MCP client reports the server as unhealthy.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	bold.Println("tfsmcp doctor")
	failures := 0

	cfg, err := buildConfig(rootCmd.Flags())
	if err != nil {
		red.Printf("  ✗ configuration: %v\n", err)
		return exitError(ExitInvalidConfig, "configuration is invalid")
	}
	green.Println("  ✓ configuration valid")
	fmt.Printf("    transport=%s working_dir=%s\n", cfg.Transport, cfg.WorkingDir)

	tf := tfcli.New(tfcli.Options{
		ExePath:    cfg.ExePath,
		WorkingDir: cfg.WorkingDir,
		Timeout:    cfg.Timeout,
	})

	if err := tf.Available(); err != nil {
		red.Printf("  ✗ tf executable: %v\n", err)
		failures++
	} else {
		green.Printf("  ✓ tf executable found (%s)\n", cfg.ExePath)
	}

	if failures == 0 {
		ws, err := tf.WorkspaceInfo(cmd.Context())
		if err != nil {
			red.Printf("  ✗ workspace query: %v\n", err)
			failures++
		} else {
			green.Printf("  ✓ workspace %s (owner %s)\n", ws.Name, ws.Owner)
			fmt.Printf("    collection=%s\n", ws.Collection)
		}
	}

	if failures > 0 {
		return exitError(ExitServerError, "%d check(s) failed", failures)
	}
	bold.Println("all checks passed")
	return nil
}
