// Where: cli/internal/app/create.go
// What: The create command orchestrator.
// Why: Sequence safety checks, generation, scaffolding, and the optional bootstrap.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/template-api/create-api/internal/frontend"
	"github.com/template-api/create-api/internal/fsutil"
	"github.com/template-api/create-api/internal/generator"
	"github.com/template-api/create-api/internal/pm"
	"github.com/template-api/create-api/internal/ui"
)

// getwd is swapped in tests.
var getwd = os.Getwd

// runCreate executes one project-creation request end to end.
//
// Safety checks, backend generation, and frontend scaffolding are fatal:
// their errors propagate verbatim and partial output is left on disk for
// the user to inspect. The optional install+test bootstrap after a
// successful creation only ever produces warnings.
func runCreate(ctx context.Context, cmd CreateCmd, deps Dependencies, console *ui.Console) int {
	answers, err := resolveAnswers(cmd, deps)
	if err != nil {
		return exitWithError(console, err)
	}

	targetDir, err := filepath.Abs(answers.TargetDirectory)
	if err != nil {
		return exitWithError(console, err)
	}

	if err := fsutil.EnsureUsableProjectDir(targetDir); err != nil {
		return exitWithError(console, err)
	}

	generatorFor := deps.GeneratorFor
	if generatorFor == nil {
		generatorFor = generator.ForLanguage
	}
	gen, err := generatorFor(answers.Language, console)
	if err != nil {
		return exitWithError(console, err)
	}

	request := generator.Request{
		ProjectName:     answers.ProjectName,
		TargetDirectory: targetDir,
		Language:        answers.Language,
		Features:        answers.Features,
		PackageManager:  answers.PackageManager,
		DataProviders:   answers.DataProviders,
		WithFrontend:    answers.Framework != frontend.FrameworkNone,
		DryRun:          cmd.DryRun,
	}
	if err := gen.Generate(ctx, request); err != nil {
		return exitWithError(console, err)
	}

	result, err := deps.Scaffolder.Scaffold(ctx, frontend.Request{
		Framework:       answers.Framework,
		PackageManager:  answers.PackageManager,
		TargetDirectory: targetDir,
		ProjectName:     answers.ProjectName,
		APIBaseURL:      deps.APIBaseURL,
		DryRun:          cmd.DryRun,
	})
	if err != nil {
		return exitWithError(console, err)
	}

	console.Success("API project generated.")
	printInstructions(console, targetDir, answers.PackageManager, result)

	if cmd.DryRun {
		return 0
	}

	confirmed, err := confirmBootstrap(cmd, deps)
	if err != nil {
		console.Warn(fmt.Sprintf("confirmation failed: %v", err))
		return 0
	}
	if !confirmed {
		return 0
	}

	runBootstrap(ctx, deps, console, targetDir, answers.PackageManager)
	return 0
}

// confirmBootstrap decides whether to auto-run install and tests.
// Non-interactive sessions decline unless --yes was passed.
func confirmBootstrap(cmd CreateCmd, deps Dependencies) (bool, error) {
	if cmd.Yes {
		return true, nil
	}
	if !deps.Interactive {
		return false, nil
	}
	return deps.Prompter.Confirm("Install dependencies and run the test suite now?", true)
}

// runBootstrap runs install then test sequentially in targetDir.
// A failure in either step is reported as a warning with remediation
// instructions; it never changes the outcome of project creation.
func runBootstrap(ctx context.Context, deps Dependencies, console *ui.Console, targetDir string, manager pm.Manager) {
	installCommand := pm.Command(manager, pm.OpInstall)
	testCommand := pm.Command(manager, pm.OpTest)

	console.Info(fmt.Sprintf("Installing dependencies (%s)...", installCommand))
	if err := deps.Runner.Run(ctx, targetDir, installCommand); err != nil {
		warnBootstrapFailure(console, err)
		return
	}

	console.Info(fmt.Sprintf("Running tests (%s)...", testCommand))
	if err := deps.Runner.Run(ctx, targetDir, testCommand); err != nil {
		warnBootstrapFailure(console, err)
		return
	}

	console.Success("Tests passed.")
}

func warnBootstrapFailure(console *ui.Console, err error) {
	console.Warn(fmt.Sprintf("automatic install/test did not complete: %v", err))
	console.Warn("Run the commands listed above manually once you are ready.")
}

// printInstructions renders the human-readable next steps.
func printInstructions(console *ui.Console, targetDir string, manager pm.Manager, result *frontend.Result) {
	relativePath := relativeToCwd(targetDir)

	console.Header("Next steps:")
	console.Item(fmt.Sprintf("cd %s", relativePath), "")
	console.Item(pm.Command(manager, pm.OpInstall), "")
	console.Item(pm.Command(manager, pm.OpTest), "(optional)")
	console.Item(pm.Command(manager, pm.OpDev), "")
	console.Item(pm.Command(manager, pm.OpAPIStatus), "(optional)")

	if result == nil {
		return
	}

	definition, err := frontend.DefinitionFor(result.Framework)
	if err != nil {
		return
	}

	// When the project root is the working directory the frontend path
	// collapses to the app directory name instead of a nested join.
	frontendPath := definition.AppDir
	if relativePath != "." {
		frontendPath = filepath.ToSlash(filepath.Join(relativePath, definition.AppDir))
	}

	console.Header("Frontend:")
	console.Item(fmt.Sprintf("cd %s", frontendPath), "(optional)")
	console.Item(pm.RunScript(manager, "web:dev"), "(frontend dev server)")
	console.Item(pm.RunScript(manager, "web:build"), "(frontend build)")
}

// relativeToCwd renders path relative to the working directory,
// falling back to the absolute path when that is not possible.
func relativeToCwd(path string) string {
	wd, err := getwd()
	if err != nil {
		return path
	}
	relative, err := filepath.Rel(wd, path)
	if err != nil || relative == "" {
		return path
	}
	return filepath.ToSlash(relative)
}
