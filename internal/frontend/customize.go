// Where: cli/internal/frontend/customize.go
// What: Post-scaffold customization per framework.
// Why: Wire the generated frontend to the backend's GET /status endpoint.
package frontend

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type customizeData struct {
	SafeProjectName string
	APIBaseURL      string
}

type renderedFile struct {
	relPath  string
	template string
}

// customize overwrites scaffolded files with project-specific wiring.
// Exactly one routine exists per supported framework.
func (s *Scaffolder) customize(req Request, frontendDir, envFile string) error {
	data := customizeData{
		SafeProjectName: escapeBackticks(req.ProjectName),
		APIBaseURL:      s.apiBaseURL(req),
	}

	switch req.Framework {
	case FrameworkReactVite:
		return s.customizeReactVite(frontendDir, envFile, data)
	case FrameworkNextJS:
		return s.customizeNextJS(frontendDir, envFile, data)
	default:
		return &UnsupportedFrontendError{Framework: req.Framework}
	}
}

func (s *Scaffolder) customizeReactVite(frontendDir, envFile string, data customizeData) error {
	if err := os.MkdirAll(filepath.Join(frontendDir, "src", "lib"), 0o755); err != nil {
		return err
	}
	// Default demo assets are replaced wholesale; absence is not an error.
	_ = os.RemoveAll(filepath.Join(frontendDir, "src", "assets"))

	files := []renderedFile{
		{envFile, "vite_env.tmpl"},
		{filepath.Join("src", "lib", "api.ts"), "vite_api.ts.tmpl"},
		{filepath.Join("src", "App.tsx"), "vite_app.tsx.tmpl"},
		{filepath.Join("src", "App.css"), "vite_app.css.tmpl"},
	}
	return s.writeRendered(frontendDir, files, data)
}

func (s *Scaffolder) customizeNextJS(frontendDir, envFile string, data customizeData) error {
	if err := os.MkdirAll(filepath.Join(frontendDir, "src", "lib"), 0o755); err != nil {
		return err
	}

	files := []renderedFile{
		{envFile, "next_env.tmpl"},
		{filepath.Join("src", "lib", "api.ts"), "next_api.ts.tmpl"},
		{filepath.Join("src", "app", "layout.tsx"), "next_layout.tsx.tmpl"},
		{filepath.Join("src", "app", "page.tsx"), "next_page.tsx.tmpl"},
		{filepath.Join("src", "app", "globals.css"), "next_globals.css.tmpl"},
	}
	return s.writeRendered(frontendDir, files, data)
}

func (s *Scaffolder) writeRendered(frontendDir string, files []renderedFile, data customizeData) error {
	for _, file := range files {
		content, err := renderTemplate(file.template, data)
		if err != nil {
			return err
		}
		target := filepath.Join(frontendDir, file.relPath)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// escapeBackticks keeps the project name safe inside generated
// template-literal strings.
func escapeBackticks(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}
