// Where: cli/internal/frontend/scaffold_test.go
// What: Tests for frontend scaffolding orchestration.
// Why: Ensure none/dry-run short-circuits, ordering, and failure points.
package frontend

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/template-api/create-api/internal/fsutil"
	"github.com/template-api/create-api/internal/pm"
	"github.com/template-api/create-api/internal/shell"
	"github.com/template-api/create-api/internal/ui"
)

type recordedCommand struct {
	Dir     string
	Command string
}

type fakeRunner struct {
	commands []recordedCommand
	failOn   string
	err      error
	onRun    func(dir, command string)
}

func (f *fakeRunner) Run(_ context.Context, dir, command string) error {
	f.commands = append(f.commands, recordedCommand{Dir: dir, Command: command})
	if f.onRun != nil {
		f.onRun(dir, command)
	}
	if f.failOn != "" && strings.Contains(command, f.failOn) {
		if f.err != nil {
			return f.err
		}
		return &shell.CommandError{Command: command, ExitCode: 1}
	}
	return nil
}

func newScaffolder(runner shell.Runner) (*Scaffolder, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Scaffolder{Runner: runner, Console: ui.New(buf)}, buf
}

func TestScaffoldNoneIsSilentNoOp(t *testing.T) {
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)

	result, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkNone,
		TargetDirectory: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no result for framework none")
	}
	if len(runner.commands) != 0 {
		t.Fatalf("expected zero commands, got %d", len(runner.commands))
	}
}

func TestScaffoldDryRunReturnsSyntheticResult(t *testing.T) {
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)
	target := t.TempDir()

	result, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.NPM,
		TargetDirectory: target,
		ProjectName:     "demo",
		DryRun:          true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil || result.Directory != filepath.Join(target, "web") {
		t.Fatalf("unexpected result: %#v", result)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("expected zero commands under dry-run, got %d", len(runner.commands))
	}
	if _, err := os.Stat(result.Directory); !os.IsNotExist(err) {
		t.Fatalf("expected dry-run not to create the directory")
	}
}

func TestScaffoldFailsWhenFrontendDirExists(t *testing.T) {
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)
	target := t.TempDir()
	if err := os.MkdirAll(filepath.Join(target, "web"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.NPM,
		TargetDirectory: target,
		ProjectName:     "demo",
	})
	var exists *fsutil.DirectoryExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected DirectoryExistsError, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("expected no commands after failed pre-check")
	}
}

func TestScaffoldCommandFailureStopsBeforeCustomization(t *testing.T) {
	runner := &fakeRunner{failOn: "create-vite"}
	scaffolder, _ := newScaffolder(runner)
	target := t.TempDir()

	_, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.NPM,
		TargetDirectory: target,
		ProjectName:     "demo",
	})
	var cmdErr *shell.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if len(runner.commands) != 1 {
		t.Fatalf("expected install to be skipped, got %d commands", len(runner.commands))
	}
	if _, statErr := os.Stat(filepath.Join(target, "web", ".env")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no customization writes after scaffold failure")
	}
}

func TestScaffoldReactViteSequenceAndCustomization(t *testing.T) {
	target := t.TempDir()
	webDir := filepath.Join(target, "web")

	runner := &fakeRunner{
		onRun: func(dir, command string) {
			// Simulate the external tool populating the directory.
			if strings.Contains(command, "create-vite") {
				_ = os.MkdirAll(filepath.Join(webDir, "src", "assets"), 0o755)
				_ = os.WriteFile(filepath.Join(webDir, "src", "App.tsx"), []byte("placeholder"), 0o644)
			}
		},
	}
	scaffolder, _ := newScaffolder(runner)

	result, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.PNPM,
		TargetDirectory: target,
		ProjectName:     "demo`app",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil || result.Framework != FrameworkReactVite {
		t.Fatalf("unexpected result: %#v", result)
	}

	if len(runner.commands) != 2 {
		t.Fatalf("expected scaffold then install, got %#v", runner.commands)
	}
	if runner.commands[0].Dir != target || !strings.HasPrefix(runner.commands[0].Command, "npx --yes create-vite@latest web") {
		t.Fatalf("unexpected scaffold invocation: %#v", runner.commands[0])
	}
	if runner.commands[1].Dir != webDir || runner.commands[1].Command != "pnpm install" {
		t.Fatalf("unexpected install invocation: %#v", runner.commands[1])
	}

	env, err := os.ReadFile(filepath.Join(webDir, ".env"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(env) != "VITE_API_URL=http://localhost:3333\n" {
		t.Fatalf("unexpected env content: %q", env)
	}

	api, err := os.ReadFile(filepath.Join(webDir, "src", "lib", "api.ts"))
	if err != nil {
		t.Fatalf("read api client: %v", err)
	}
	if !strings.Contains(string(api), "'/status'") || !strings.Contains(string(api), "StatusSnapshot") {
		t.Fatalf("unexpected api client:\n%s", api)
	}

	app, err := os.ReadFile(filepath.Join(webDir, "src", "App.tsx"))
	if err != nil {
		t.Fatalf("read app entry: %v", err)
	}
	if !strings.Contains(string(app), "demo\\`app") {
		t.Fatalf("expected escaped project name, got:\n%s", app)
	}
	if _, err := os.Stat(filepath.Join(webDir, "src", "App.css")); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
	if _, err := os.Stat(filepath.Join(webDir, "src", "assets")); !os.IsNotExist(err) {
		t.Fatalf("expected default assets to be removed")
	}
}

func TestScaffoldNextJSCommandLine(t *testing.T) {
	target := t.TempDir()
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)

	result, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkNextJS,
		PackageManager:  pm.Yarn,
		TargetDirectory: target,
		ProjectName:     "demo",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil {
		t.Fatalf("expected a result")
	}

	scaffold := runner.commands[0].Command
	for _, fragment := range []string{"create-next-app@latest web", "--ts", "--app", "--use-yarn", "--skip-install", "--no-git"} {
		if !strings.Contains(scaffold, fragment) {
			t.Fatalf("expected %q in scaffold command: %s", fragment, scaffold)
		}
	}

	env, err := os.ReadFile(filepath.Join(target, "web", ".env.local"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(env) != "NEXT_PUBLIC_API_URL=http://localhost:3333\n" {
		t.Fatalf("unexpected env content: %q", env)
	}
	for _, relPath := range []string{
		filepath.Join("src", "lib", "api.ts"),
		filepath.Join("src", "app", "layout.tsx"),
		filepath.Join("src", "app", "page.tsx"),
		filepath.Join("src", "app", "globals.css"),
	} {
		if _, err := os.Stat(filepath.Join(target, "web", relPath)); err != nil {
			t.Fatalf("expected %s: %v", relPath, err)
		}
	}
}

func TestDefinitionForUnknownFramework(t *testing.T) {
	_, err := DefinitionFor(Framework("svelte"))
	var unsupported *UnsupportedFrontendError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFrontendError, got %v", err)
	}
}

func TestScaffolderCustomAPIBaseURL(t *testing.T) {
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)
	scaffolder.APIBaseURL = "http://localhost:4000"
	target := t.TempDir()

	_, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.NPM,
		TargetDirectory: target,
		ProjectName:     "demo",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	env, err := os.ReadFile(filepath.Join(target, "web", ".env"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(env) != "VITE_API_URL=http://localhost:4000\n" {
		t.Fatalf("unexpected env content: %q", env)
	}
}

func TestScaffolderRequestURLBeatsConfiguredDefault(t *testing.T) {
	runner := &fakeRunner{}
	scaffolder, _ := newScaffolder(runner)
	scaffolder.APIBaseURL = "http://localhost:4000"
	target := t.TempDir()

	_, err := scaffolder.Scaffold(context.Background(), Request{
		Framework:       FrameworkReactVite,
		PackageManager:  pm.NPM,
		TargetDirectory: target,
		ProjectName:     "demo",
		APIBaseURL:      "http://example.com:9999",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	env, err := os.ReadFile(filepath.Join(target, "web", ".env"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(env) != "VITE_API_URL=http://example.com:9999\n" {
		t.Fatalf("unexpected env content: %q", env)
	}
}
