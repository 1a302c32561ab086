package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marketlens/internal/catalog"
	"marketlens/internal/cli"
)

var toolsOutput string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available MCP tools",
	Long: `Lists every tool in the marketlens catalog with its upstream
endpoint and default shaping options. The catalog is compiled in, so this
works without a running server.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	switch toolsOutput {
	case "json":
		type toolItem struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Path        string `json:"path"`
			Ticker      bool   `json:"requiresTicker"`
		}
		items := make([]toolItem, 0, len(registry.Tools()))
		for _, def := range registry.Tools() {
			items = append(items, toolItem{def.Name, def.Description, def.Path, def.RequiresTicker})
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

	case "table", "wide":
		wide := toolsOutput == "wide"
		w := cli.NewPlainTableWriter(cmd.OutOrStdout())
		headers := []string{"Name", "Ticker", "Default Limit", "Description"}
		if wide {
			headers = []string{"Name", "Ticker", "Default Limit", "Path", "Description"}
		}
		w.SetHeaders(headers)
		for _, def := range registry.Tools() {
			ticker := ""
			if def.RequiresTicker {
				ticker = "yes"
			}
			limit := ""
			if def.Defaults.Limit > 0 {
				limit = fmt.Sprintf("%d", def.Defaults.Limit)
			}
			if wide {
				w.AppendRow([]string{def.Name, ticker, limit, def.Path, def.Description})
			} else {
				w.AppendRow([]string{def.Name, ticker, limit, cli.Truncate(def.Description, 60)})
			}
		}
		w.Render()

	default:
		return fmt.Errorf("unsupported output format %q: use table, wide or json", toolsOutput)
	}
	return nil
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the available MCP prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := catalog.NewRegistry()
		if err != nil {
			return err
		}
		w := cli.NewPlainTableWriter(cmd.OutOrStdout())
		w.SetHeaders([]string{"Name", "Arguments", "Description"})
		for _, def := range registry.Prompts() {
			names := make([]string, 0, len(def.Args))
			for _, arg := range def.Args {
				names = append(names, arg.Name)
			}
			w.AppendRow([]string{def.Name, strings.Join(names, ","), cli.Truncate(def.Description, 60)})
		}
		w.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(promptsCmd)

	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "table", "Output format: table, wide or json")
}
