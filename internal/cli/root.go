// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/appvector/vector-mcp/internal/appconfig"
	"github.com/appvector/vector-mcp/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "vector-mcp",
	Short: "vector-mcp: MCP gateway for the AppVector app-store analytics API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file, env, or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set a flag, copy the config value into the
		//    flag so both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > env > config > defaults). This gives other packages a
		//    stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		currentConfig = &cfg

		return logging.Init(cfg.LogFilePath())
	},
}

// Execute runs the root command; it is the only entrypoint main uses.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (e.g., config/vector-mcp.json)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	viper.SetEnvPrefix("APPVECTOR")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	viper.SetConfigName("vector-mcp")
	viper.SetConfigType("json")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing
// config file is fine; env vars and flags still apply.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("port", appconfig.DefaultPort)
	viper.SetDefault("api_token", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("timeout", 0)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
