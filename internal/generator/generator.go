// Where: cli/internal/generator/generator.go
// What: Backend generator registry and shared request type.
// Why: Keep language dispatch in one place with a narrow generator contract.
package generator

import (
	"context"
	"fmt"

	"github.com/template-api/create-api/internal/pm"
	"github.com/template-api/create-api/internal/ui"
)

// Language selects the backend language of the generated project.
type Language string

const (
	LanguageNode Language = "node"
)

// Languages lists every registered backend language, in prompt order.
var Languages = []Language{LanguageNode}

// Request carries everything a generator needs to produce a project skeleton.
// It is built once per invocation and immutable afterwards.
type Request struct {
	ProjectName     string
	TargetDirectory string
	Language        Language
	Features        []string
	PackageManager  pm.Manager
	DataProviders   []string
	WithFrontend    bool
	DryRun          bool
}

// Generator produces the backend project skeleton for one language.
// Under DryRun it must not write anything but still validate the request.
type Generator interface {
	Generate(ctx context.Context, req Request) error
}

// UnsupportedLanguageError reports a selector with no registered generator.
type UnsupportedLanguageError struct {
	Language Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported backend language: %s", e.Language)
}

// ForLanguage returns the generator registered for the selector.
func ForLanguage(language Language, console *ui.Console) (Generator, error) {
	switch language {
	case LanguageNode:
		return &NodeGenerator{Console: console}, nil
	default:
		return nil, &UnsupportedLanguageError{Language: language}
	}
}
