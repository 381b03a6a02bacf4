// internal/cli/tools.go
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/appvector/vector-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed by the gateway",
	Run: func(cmd *cobra.Command, args []string) {
		runListTools()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// runListTools prints the catalog with each tool's required arguments.
func runListTools() {
	defs := tools.Catalog()
	fmt.Println(titleStyle.Render(fmt.Sprintf("AppVector tools (%d)", len(defs))))

	name := color.New(color.FgCyan, color.Bold)
	for _, def := range defs {
		name.Printf("  %s\n", def.Name)
		fmt.Printf("      %s\n", def.Description)
		if req := requiredFields(def); len(req) > 0 {
			fmt.Printf("      required: %s\n", strings.Join(req, ", "))
		}
	}
}

func requiredFields(def tools.Definition) []string {
	req, _ := def.InputSchema["required"].([]string)
	return req
}
