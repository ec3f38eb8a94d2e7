// Where: cli/cmd/create-api/main.go
// What: CLI entrypoint.
// Why: Execute the create command with configured dependencies.
package main

import (
	"os"

	"github.com/template-api/create-api/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
