// cmd/vector-mcp/main.go
package main

import (
	"github.com/appvector/vector-mcp/internal/cli"
)

// main starts the vector-mcp CLI by delegating to the cobra root command.
func main() {
	cli.Execute()
}
