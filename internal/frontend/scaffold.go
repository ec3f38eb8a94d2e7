// Where: cli/internal/frontend/scaffold.go
// What: Frontend scaffolding orchestration.
// Why: Delegate creation to the framework tool, then inject API wiring.
package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/template-api/create-api/internal/fsutil"
	"github.com/template-api/create-api/internal/pm"
	"github.com/template-api/create-api/internal/shell"
	"github.com/template-api/create-api/internal/ui"
)

// DefaultAPIBaseURL is the backend URL baked into the generated env file.
const DefaultAPIBaseURL = "http://localhost:3333"

// Request carries the inputs for one scaffolding run.
type Request struct {
	Framework       Framework
	PackageManager  pm.Manager
	TargetDirectory string
	ProjectName     string
	APIBaseURL      string // optional override for the generated env file
	DryRun          bool
}

// Result describes a scaffolded (or, under dry-run, planned) frontend.
type Result struct {
	Framework Framework
	Directory string
}

// Scaffolder creates the frontend by delegating to the external framework
// tool, then customizes the result with an env file and a typed API client.
type Scaffolder struct {
	Runner     shell.Runner
	Console    *ui.Console
	APIBaseURL string
}

// apiBaseURL resolves the URL for the generated env file: the request
// override wins, then the scaffolder's configured default.
func (s *Scaffolder) apiBaseURL(req Request) string {
	if req.APIBaseURL != "" {
		return req.APIBaseURL
	}
	if s.APIBaseURL != "" {
		return s.APIBaseURL
	}
	return DefaultAPIBaseURL
}

// Scaffold runs the full scaffold for req.
//
// Framework "none" returns (nil, nil) with zero side effects. Dry-run
// returns a synthetic result for the directory that would be created,
// without invoking any external tool or writing any file. A failure after
// the external tool succeeded leaves the partial frontend in place; the
// error names the directory so the user can inspect or remove it.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Result, error) {
	if req.Framework == FrameworkNone {
		return nil, nil
	}

	definition, err := DefinitionFor(req.Framework)
	if err != nil {
		return nil, err
	}

	frontendDir := filepath.Join(req.TargetDirectory, definition.AppDir)
	display := displayPath(frontendDir, definition.AppDir)

	if req.DryRun {
		s.Console.Info(fmt.Sprintf("[dry-run] %s frontend in %s (no commands executed).", definition.DisplayName, display))
		return &Result{Framework: req.Framework, Directory: frontendDir}, nil
	}

	if err := fsutil.EnsureAbsent(frontendDir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(frontendDir), 0o755); err != nil {
		return nil, err
	}

	s.Console.Info(fmt.Sprintf("[Front] Generating %s...", definition.DisplayName))

	scaffoldCommand, err := s.scaffoldCommand(req, frontendDir)
	if err != nil {
		return nil, err
	}

	// The external tool runs from the project root with a relative target:
	// some scaffolders refuse absolute paths or behave differently under them.
	s.Console.Command(scaffoldCommand)
	if err := s.Runner.Run(ctx, req.TargetDirectory, scaffoldCommand); err != nil {
		return nil, err
	}

	// Install before customizing so the tool's own files exist to overwrite.
	installCommand := pm.Command(req.PackageManager, pm.OpInstall)
	s.Console.Command(installCommand)
	if err := s.Runner.Run(ctx, frontendDir, installCommand); err != nil {
		return nil, fmt.Errorf("install in %s: %w", display, err)
	}

	if err := s.customize(req, frontendDir, definition.EnvFile); err != nil {
		return nil, fmt.Errorf("customize %s: %w", display, err)
	}

	s.Console.Success(fmt.Sprintf("%s frontend ready in %s.", definition.DisplayName, display))
	return &Result{Framework: req.Framework, Directory: frontendDir}, nil
}

// scaffoldCommand builds the external tool command line for req.
func (s *Scaffolder) scaffoldCommand(req Request, frontendDir string) (string, error) {
	relative := relativeTarget(req.TargetDirectory, frontendDir)

	switch req.Framework {
	case FrameworkReactVite:
		return fmt.Sprintf("npx --yes create-vite@latest %s -- --template react-ts", relative), nil
	case FrameworkNextJS:
		return fmt.Sprintf(
			`npx --yes create-next-app@latest %s --ts --app --src-dir --eslint --no-tailwind --import-alias "@/*" %s --skip-install --no-git`,
			relative, nextPackageFlag(req.PackageManager),
		), nil
	default:
		return "", &UnsupportedFrontendError{Framework: req.Framework}
	}
}

func nextPackageFlag(manager pm.Manager) string {
	switch manager {
	case pm.PNPM:
		return "--use-pnpm"
	case pm.Yarn:
		return "--use-yarn"
	default:
		return "--use-npm"
	}
}

// relativeTarget computes the scaffold target path relative to the project
// root, in POSIX form, falling back to "." when they coincide.
func relativeTarget(root, frontendDir string) string {
	relative, err := filepath.Rel(root, frontendDir)
	if err != nil || relative == "" {
		return "."
	}
	return filepath.ToSlash(relative)
}

// displayPath renders frontendDir relative to the working directory for
// messages, collapsing to the app directory name when that fails.
func displayPath(frontendDir, appDir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return appDir
	}
	relative, err := filepath.Rel(wd, frontendDir)
	if err != nil || relative == "" {
		return appDir
	}
	return filepath.ToSlash(relative)
}
