// Where: cli/internal/generator/node.go
// What: Node/TypeScript backend generator.
// Why: Produce the Express API skeleton with the GET /status contract.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/template-api/create-api/internal/pm"
	"github.com/template-api/create-api/internal/ui"
)

// NodeGenerator renders an Express + TypeScript API skeleton.
type NodeGenerator struct {
	Console *ui.Console
}

type plannedFile struct {
	RelPath  string
	Template string
}

// nodePlan lists every file the generator produces, in write order.
var nodePlan = []plannedFile{
	{"package.json", "node_package.json.tmpl"},
	{"tsconfig.json", "node_tsconfig.json.tmpl"},
	{".gitignore", "node_gitignore.tmpl"},
	{".env", "node_env.tmpl"},
	{"README.md", "node_readme.md.tmpl"},
	{filepath.Join("src", "status.ts"), "node_status.ts.tmpl"},
	{filepath.Join("src", "server.ts"), "node_server.ts.tmpl"},
	{filepath.Join("src", "api.ts"), "node_api.ts.tmpl"},
	{filepath.Join("test", "status.test.ts"), "node_status.test.ts.tmpl"},
}

type nodeTemplateData struct {
	ProjectName     string
	SafeProjectName string
	PackageName     string
	Features        []string
	DataProviders   []string
	Port            int
	WithFrontend    bool
	WebDevCommand   string
	WebBuildCommand string
}

// Generate writes the backend skeleton into req.TargetDirectory.
// Under DryRun it renders nothing and only reports the planned files.
func (g *NodeGenerator) Generate(ctx context.Context, req Request) error {
	if req.ProjectName == "" {
		return fmt.Errorf("project name is required")
	}
	if req.TargetDirectory == "" {
		return fmt.Errorf("target directory is required")
	}

	data := nodeTemplateData{
		ProjectName:     req.ProjectName,
		SafeProjectName: EscapeBackticks(req.ProjectName),
		PackageName:     PackageName(req.ProjectName),
		Features:        req.Features,
		DataProviders:   req.DataProviders,
		Port:            3333,
		WithFrontend:    req.WithFrontend,
		WebDevCommand:   webScriptCommand(req.PackageManager, "dev"),
		WebBuildCommand: webScriptCommand(req.PackageManager, "build"),
	}

	if req.DryRun {
		g.Console.Info(fmt.Sprintf("[dry-run] Node backend for %s (no files written):", req.ProjectName))
		for _, file := range nodePlan {
			g.Console.Item(filepath.ToSlash(file.RelPath), "")
		}
		return nil
	}

	g.Console.Info(fmt.Sprintf("[API] Generating Node backend for %s...", req.ProjectName))

	for _, file := range nodePlan {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := renderTemplate(file.Template, data)
		if err != nil {
			return fmt.Errorf("render %s: %w", file.Template, err)
		}

		target := filepath.Join(req.TargetDirectory, file.RelPath)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return err
		}
	}

	g.Console.Success(fmt.Sprintf("Node backend ready in %s.", req.TargetDirectory))
	return nil
}

// webScriptCommand builds the package.json script body that proxies
// a script into the web/ frontend directory.
func webScriptCommand(manager pm.Manager, script string) string {
	switch manager {
	case pm.PNPM:
		return fmt.Sprintf("pnpm --dir web %s", script)
	case pm.Yarn:
		return fmt.Sprintf("yarn --cwd web %s", script)
	default:
		return fmt.Sprintf("npm --prefix web run %s", script)
	}
}
