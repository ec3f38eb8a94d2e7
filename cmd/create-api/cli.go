// Where: cli/cmd/create-api/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/template-api/create-api/internal/app"
	"github.com/template-api/create-api/internal/frontend"
	"github.com/template-api/create-api/internal/interaction"
	"github.com/template-api/create-api/internal/shell"
	"github.com/template-api/create-api/internal/ui"
)

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	runner := shell.ExecRunner{}
	console := ui.New(os.Stdout)

	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Runner:   runner,
		Scaffolder: &frontend.Scaffolder{
			Runner:  runner,
			Console: console,
		},
		Interactive: interaction.IsTerminal(os.Stdin),
	}
}
