// internal/cli/serve.go
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/appvector/vector-mcp/internal/appconfig"
	"github.com/appvector/vector-mcp/internal/logging"
	"github.com/appvector/vector-mcp/internal/server"
	"github.com/appvector/vector-mcp/internal/tools"
	"github.com/appvector/vector-mcp/internal/upstream"
)

var stdioMode bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the AppVector MCP server",
	Long:  `Serve the tool catalog over JSON-RPC: HTTP on the configured port by default, or stdio with Content-Length framing when --stdio is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		client := upstream.NewClient(cfg.BaseURL(), cfg.APIToken, cfg.RequestTimeout())
		srv := server.New(tools.NewDispatcher(client))

		if stdioMode {
			// The stdio transport owns stdout; keep log lines out of it.
			if err := logging.InitFileOnly(cfg.LogFilePath()); err != nil {
				return err
			}
			return srv.ServeStdio(os.Stdin, os.Stdout)
		}

		if !client.Authenticated() {
			color.Yellow("No API token configured; upstream calls will be sent unauthenticated.")
		}
		logging.LogEvent("serving MCP over HTTP on %s", cfg.ListenAddr())
		return srv.Run(cfg.ListenAddr())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&stdioMode, "stdio", false, "serve over stdio instead of HTTP")
	serveCmd.Flags().Int("port", appconfig.DefaultPort, "HTTP listen port")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
