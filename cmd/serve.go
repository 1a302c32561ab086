package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marketlens/internal/app"
)

var (
	serveTransport  string
	serveHost       string
	servePort       int
	serveDebug      bool
	serveSilent     bool
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the marketlens MCP server",
	Long: `Starts the MCP server on the configured transport.

With the stdio transport (the default), the server speaks MCP over
stdin/stdout and is meant to be launched by an MCP host such as an AI
assistant. All logging goes to stderr.

With the streamable-http transport, the server listens on host:port and
serves MCP at /mcp. Other marketlens commands ('tools', 'call') connect to
it there.

Configuration is read from config.yaml in the marketlens config directory
(default ~/.config/marketlens), overridden by MARKETLENS_* environment
variables, overridden by the flags below. The config file is watched while
serving, so a rotated API key takes effect without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &app.Config{
		Debug:      serveDebug,
		Silent:     serveSilent,
		ConfigPath: serveConfigPath,
		Transport:  serveTransport,
		Host:       serveHost,
		Port:       servePort,
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, stop := signal.NotifyContext(base, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport to serve on: stdio or streamable-http (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host for streamable-http (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port for streamable-http (default from config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveSilent, "silent", false, "Suppress all log output")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory")
}
