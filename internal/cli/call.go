// internal/cli/call.go
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/appvector/vector-mcp/internal/tools"
	"github.com/appvector/vector-mcp/internal/upstream"
	"github.com/appvector/vector-mcp/internal/util"
)

var (
	callArgsJSON string
	callOutput   string
)

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a single tool and print its response",
	Long:  `Dispatch one tool call from the shell without starting a server. Arguments are passed as a JSON object via --args.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := parseCallArgs(callArgsJSON)
		if err != nil {
			return err
		}

		cfg := GetConfig()
		if cfg.Debug {
			pp.Println(payload)
		}

		client := upstream.NewClient(cfg.BaseURL(), cfg.APIToken, cfg.RequestTimeout())
		content, err := tools.NewDispatcher(client).Dispatch(args[0], payload)
		if err != nil {
			return err
		}

		var out strings.Builder
		for _, part := range content {
			out.WriteString(part.Text)
			out.WriteString("\n")
		}
		if callOutput != "" {
			return util.WriteFile(callOutput, []byte(out.String()))
		}
		fmt.Print(out.String())
		return nil
	},
}

// parseCallArgs decodes the --args JSON object; empty input means no arguments.
func parseCallArgs(raw string) (map[string]any, error) {
	payload := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return payload, nil
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid --args JSON: %w", err)
	}
	return payload, nil
}

func init() {
	callCmd.Flags().StringVar(&callArgsJSON, "args", "", `tool arguments as a JSON object, e.g. '{"app":"com.spotify.music"}'`)
	callCmd.Flags().StringVarP(&callOutput, "output", "o", "", "write the response to a file instead of stdout")

	rootCmd.AddCommand(callCmd)
}
