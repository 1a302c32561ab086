package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"marketlens/internal/catalog"
	"marketlens/internal/cli"
	"marketlens/internal/config"
	"marketlens/internal/upstream"
	"marketlens/pkg/logging"
)

var (
	callEndpoint   string
	callQuiet      bool
	callConfigPath string
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value ...]",
	Short: "Call a tool and print the result",
	Long: `Calls one marketlens tool and prints the text result.

Without --endpoint the call runs in-process: the configuration is loaded,
the upstream API is called directly and the response is shaped exactly as
a server would. With --endpoint the call goes to a running marketlens
server over streamable HTTP instead.

Arguments are key=value pairs. Values that parse as JSON keep their type,
so limit=25 is a number and fields=["Ticker","Amount"] is an array;
anything else is passed as a string.

Examples:
  marketlens call get_congress_trading ticker=AAPL limit=10
  marketlens call get_ticker_snapshot ticker=NVDA 'sections=["trading","congress"]'
  marketlens call get_recent_lobbying format=table mode=summary
  marketlens call get_etf_holdings ticker=SPY --endpoint http://localhost:8421/mcp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	toolName := args[0]
	toolArgs, err := cli.ParseToolArgs(args[1:])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var s *spinner.Spinner
	if !callQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Calling %s...", toolName)
		s.Start()
	}
	stopSpinner := func() {
		if s != nil {
			s.Stop()
			s = nil
		}
	}
	defer stopSpinner()

	var text string
	if callEndpoint != "" {
		text, err = callRemote(ctx, toolName, toolArgs)
	} else {
		text, err = callInProcess(ctx, toolName, toolArgs)
	}
	stopSpinner()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// callRemote sends the call to a running server over streamable HTTP.
func callRemote(ctx context.Context, toolName string, toolArgs map[string]interface{}) (string, error) {
	client := cli.NewClient(callEndpoint)
	if err := client.Connect(ctx); err != nil {
		return "", fmt.Errorf("cannot reach marketlens server at %s (start one with: marketlens serve --transport streamable-http): %w", callEndpoint, err)
	}
	defer client.Close()

	return client.CallToolText(ctx, toolName, toolArgs)
}

// callInProcess wires up the invocation pipeline locally, skipping the MCP
// transport entirely.
func callInProcess(ctx context.Context, toolName string, toolArgs map[string]interface{}) (string, error) {
	logging.Init(logging.LevelWarn, io.Discard)

	cfg, err := config.Load(callConfigPath)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	registry, err := catalog.NewRegistry()
	if err != nil {
		return "", err
	}
	def, err := registry.LookupTool(toolName)
	if err != nil {
		return "", err
	}

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout.Std())
	invoker := catalog.NewInvoker(client)

	out, err := invoker.Invoke(ctx, def, toolArgs)
	if err != nil {
		return "", err
	}

	switch v := out.(type) {
	case catalog.ShapedOutput:
		data, err := json.MarshalIndent(v.Result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case catalog.TextOutput:
		if v.IsError {
			return "", fmt.Errorf("%s", v.Text)
		}
		return v.Text, nil
	default:
		return "", fmt.Errorf("unexpected output type %T", out)
	}
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringVar(&callEndpoint, "endpoint", "", "Call a running server at this URL instead of in-process")
	callCmd.Flags().BoolVarP(&callQuiet, "quiet", "q", false, "Disable the progress spinner")
	callCmd.Flags().StringVar(&callConfigPath, "config-path", "", "Custom configuration directory (in-process mode)")
}
