package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tfstool/tfsmcp/internal/config"
	tfsmcplog "github.com/tfstool/tfsmcp/internal/log"
	"github.com/tfstool/tfsmcp/internal/mcpserver"
	"github.com/tfstool/tfsmcp/internal/tfcli"
)

// Global flag values.
var (
	verbose bool
	quiet   bool

	flagName       string
	flagExePath    string
	flagWorkingDir string
	flagTransport  string
	flagHost       string
	flagPort       int
	flagTimeout    time.Duration
	flagConfigFile string
)

// rootCmd runs the MCP server. tfsmcp has no separate serve subcommand; the
// binary's whole job is serving.
var rootCmd = &cobra.Command{
	Use:   "tfsmcp",
	Short: "MCP server exposing Team Foundation Server version control",
	Long: `tfsmcp is an MCP server that exposes Team Foundation Server (TFS)
version-control operations as tools. Each tool call is translated into an
invocation of the external tf command-line client: checkout, checkin, add,
delete, rename, undo, status, get latest, branch, merge, and history.

The server speaks MCP over stdio by default; http and sse transports are
available for network clients.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		tfsmcplog.Setup(verbose, quiet)
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.Flags().StringVar(&flagName, "name", "", "server name advertised to MCP clients")
	rootCmd.Flags().StringVar(&flagExePath, "tf-exe-path", "", "path to the tf executable")
	rootCmd.Flags().StringVar(&flagWorkingDir, "working-directory", "", "default directory relative paths resolve against")
	rootCmd.Flags().StringVar(&flagTransport, "transport", "", "transport: stdio, http, or sse")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "listen host for http and sse transports")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "listen port for http and sse transports")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-command timeout for tf invocations")
	rootCmd.Flags().StringVar(&flagConfigFile, "config", "", "config file (default "+config.FileName+" in the current directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// buildConfig merges configuration in precedence order: defaults, config
// file, environment, CLI flags. Flags only override when explicitly set.
func buildConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	path := flagConfigFile
	required := path != ""
	if path == "" {
		path = config.FileName
	}
	fileCfg, err := config.LoadFile(path, required)
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.Merge(cfg, fileCfg)

	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.Merge(cfg, envCfg)

	var overlay config.Config
	if flags.Changed("name") {
		overlay.Name = flagName
	}
	if flags.Changed("tf-exe-path") {
		overlay.ExePath = flagExePath
	}
	if flags.Changed("working-directory") {
		overlay.WorkingDir = flagWorkingDir
	}
	if flags.Changed("transport") {
		overlay.Transport = config.Transport(flagTransport)
	}
	if flags.Changed("host") {
		overlay.Host = flagHost
	}
	if flags.Changed("port") {
		overlay.Port = flagPort
	}
	if flags.Changed("timeout") {
		overlay.Timeout = flagTimeout
	}
	cfg = config.Merge(cfg, overlay)

	return config.Validate(cfg)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd.Flags())
	if err != nil {
		return exitError(ExitInvalidConfig, "invalid configuration: %v", err)
	}

	tf := tfcli.New(tfcli.Options{
		ExePath:    cfg.ExePath,
		WorkingDir: cfg.WorkingDir,
		Timeout:    cfg.Timeout,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting tfs mcp server",
		"name", cfg.Name,
		"transport", cfg.Transport,
		"working_dir", cfg.WorkingDir,
		"tf_exe", cfg.ExePath)

	if err := mcpserver.New(cfg, tf).Run(ctx, Version); err != nil {
		return exitError(ExitServerError, "server failed: %v", err)
	}
	return nil
}
