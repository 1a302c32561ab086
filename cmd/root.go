package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the entry point when marketlens is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "marketlens",
	Short: "MCP gateway for alternative financial data",
	Long: `marketlens exposes alternative financial datasets (congressional
trading, lobbying, government contracts, retail sentiment and more) as MCP
tools with built-in response shaping: field projection, pagination and
table/CSV rendering tuned for AI assistant context windows.`,
	// SilenceUsage keeps handled errors from dumping usage text.
	SilenceUsage: true,
}

// SetVersion injects the build version, typically from main via -ldflags.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the injected build version.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "marketlens version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
