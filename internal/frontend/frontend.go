// Where: cli/internal/frontend/frontend.go
// What: Frontend framework catalog.
// Why: Closed set of frameworks with exhaustive dispatch, not a dynamic table.
package frontend

import (
	"fmt"
)

// Framework selects the frontend framework of the generated project.
type Framework string

const (
	FrameworkNone      Framework = "none"
	FrameworkReactVite Framework = "react-vite"
	FrameworkNextJS    Framework = "nextjs"
)

// Frameworks lists every selectable framework, in prompt order.
var Frameworks = []Framework{FrameworkNone, FrameworkReactVite, FrameworkNextJS}

// Definition describes the static properties of one framework.
type Definition struct {
	Key         Framework
	DisplayName string
	AppDir      string // relative directory the frontend is scaffolded into
	EnvFile     string
}

// UnsupportedFrontendError reports a framework with no scaffolding support.
type UnsupportedFrontendError struct {
	Framework Framework
}

func (e *UnsupportedFrontendError) Error() string {
	return fmt.Sprintf("unsupported frontend framework: %s", e.Framework)
}

// DefinitionFor returns the catalog entry for a scaffoldable framework.
func DefinitionFor(framework Framework) (Definition, error) {
	switch framework {
	case FrameworkReactVite:
		return Definition{
			Key:         FrameworkReactVite,
			DisplayName: "React (Vite)",
			AppDir:      "web",
			EnvFile:     ".env",
		}, nil
	case FrameworkNextJS:
		return Definition{
			Key:         FrameworkNextJS,
			DisplayName: "Next.js",
			AppDir:      "web",
			EnvFile:     ".env.local",
		}, nil
	default:
		return Definition{}, &UnsupportedFrontendError{Framework: framework}
	}
}
