// internal/cli/show_config.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged gateway configuration",
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runShowConfig() {
	file := viper.ConfigFileUsed()
	if file == "" {
		fmt.Println("No config file loaded (using env/defaults).")
	} else {
		fmt.Printf("Config file: %s\n\n", file)
	}

	cfg := GetConfig()
	fmt.Println("Current configuration:")
	fmt.Printf("  API base URL:  %s\n", cfg.BaseURL())
	fmt.Printf("  API token:     %s\n", maskToken(cfg.APIToken))
	fmt.Printf("  Listen addr:   %s\n", cfg.ListenAddr())
	fmt.Printf("  Timeout:       %s\n", cfg.RequestTimeout())
	fmt.Printf("  Log file:      %s\n", orNone(cfg.LogFilePath()))
	fmt.Printf("  Debug:         %v\n", cfg.Debug)
}

// maskToken keeps only a short prefix so config output is safe to share.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 8)
}

func orNone(s string) string {
	if s == "" {
		return "(stdout only)"
	}
	return s
}
