// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/template-api/create-api/internal/frontend"
	"github.com/template-api/create-api/internal/generator"
	"github.com/template-api/create-api/internal/interaction"
	"github.com/template-api/create-api/internal/shell"
	"github.com/template-api/create-api/internal/ui"
	"github.com/template-api/create-api/internal/version"
)

// FrontendScaffolder is the orchestrator's view of the frontend step.
type FrontendScaffolder interface {
	Scaffold(ctx context.Context, req frontend.Request) (*frontend.Result, error)
}

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of the various collaborators.
type Dependencies struct {
	Out          io.Writer
	Prompter     interaction.Prompter
	Runner       shell.Runner
	Scaffolder   FrontendScaffolder
	GeneratorFor func(generator.Language, *ui.Console) (generator.Generator, error)
	Interactive  bool
	APIBaseURL   string
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Create  CreateCmd  `cmd:"" default:"withargs" help:"Create a new full-stack API project"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// CreateCmd holds the flags of the create command. Unset fields are
// filled from the preset file, interactive prompts, or defaults.
type CreateCmd struct {
	Directory      string   `arg:"" optional:"" help:"Target directory for the new project"`
	Name           string   `help:"Project name (default: directory name)"`
	Language       string   `short:"l" help:"Backend language (node)"`
	Feature        []string `help:"Feature flags to enable"`
	PackageManager string   `name:"package-manager" short:"p" help:"Package manager (npm|pnpm|yarn)"`
	DataProvider   []string `name:"data-provider" help:"Data providers to configure"`
	Frontend       string   `help:"Frontend framework (none|react-vite|nextjs)"`
	Preset         string   `help:"Preset file with prepared answers (YAML or JSON)"`
	Yes            bool     `short:"y" help:"Install dependencies and run tests without asking"`
	DryRun         bool     `name:"dry-run" help:"Report intended actions without writing or executing anything"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the requested
// handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	console := ui.New(out)

	// .env in the working directory may override the default API URL.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			console.Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
	if deps.APIBaseURL == "" {
		deps.APIBaseURL = os.Getenv("CREATE_API_URL")
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(console, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(console, err)
	}

	switch ctx.Command() {
	case "create", "create <directory>":
		return runCreate(context.Background(), cli.Create, deps, console)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// exitWithError prints the error and returns the failure exit code.
func exitWithError(console *ui.Console, err error) int {
	console.Error(err.Error())
	return 1
}
