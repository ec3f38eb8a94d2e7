// Where: cli/internal/pm/pm.go
// What: Package manager command resolution.
// Why: Keep the invocation syntax differences between npm/pnpm/yarn in one place.
package pm

import (
	"fmt"
	"os/exec"
)

// Manager identifies one of the supported package managers.
type Manager string

const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
)

// Managers lists every supported package manager, in prompt order.
var Managers = []Manager{NPM, PNPM, Yarn}

// Operation is a logical package manager operation shared by all managers.
type Operation string

const (
	OpInstall   Operation = "install"
	OpDev       Operation = "dev"
	OpTest      Operation = "test"
	OpAPIStatus Operation = "apiStatus"
)

// Valid reports whether m names a supported package manager.
func (m Manager) Valid() bool {
	switch m {
	case NPM, PNPM, Yarn:
		return true
	}
	return false
}

// Command resolves a logical operation to the literal command line for m.
//
// The mapping is total: every manager defines every operation. An unknown
// manager is a programming error, callers validate selection before use.
func Command(manager Manager, op Operation) string {
	switch manager {
	case PNPM:
		switch op {
		case OpInstall:
			return "pnpm install"
		case OpDev:
			return "pnpm dev"
		case OpTest:
			return "pnpm test"
		default:
			return "pnpm api --status"
		}
	case Yarn:
		switch op {
		case OpInstall:
			return "yarn install"
		case OpDev:
			return "yarn dev"
		case OpTest:
			return "yarn test"
		default:
			return "yarn api --status"
		}
	default:
		switch op {
		case OpInstall:
			return "npm install"
		case OpDev:
			return "npm run dev"
		case OpTest:
			return "npm test"
		default:
			return "npm run api -- --status"
		}
	}
}

// RunScript resolves the command line that runs an arbitrary named script,
// e.g. the generated web:dev and web:build scripts.
func RunScript(manager Manager, script string) string {
	switch manager {
	case PNPM:
		return fmt.Sprintf("pnpm %s", script)
	case Yarn:
		return fmt.Sprintf("yarn %s", script)
	default:
		return fmt.Sprintf("npm run %s", script)
	}
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Detect returns the preferred package manager found on PATH.
// pnpm and yarn win over npm when present; npm is the fallback either way.
func Detect() Manager {
	for _, manager := range []Manager{PNPM, Yarn} {
		if _, err := lookPath(string(manager)); err == nil {
			return manager
		}
	}
	return NPM
}
