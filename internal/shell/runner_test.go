// Where: cli/internal/shell/runner_test.go
// What: Tests for the shell command runner.
// Why: Ensure exit codes and spawn failures map to the right error types.
package shell

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandErrorMessageNamesCommandAndCode(t *testing.T) {
	err := &CommandError{Command: "npm install", ExitCode: 2}
	want := `command "npm install" exited with code 2`
	if err.Error() != want {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestStartErrorUnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("sh: not found")
	err := &StartError{Command: "npm install", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected StartError to unwrap its cause")
	}
}

func TestShellInvocation(t *testing.T) {
	name, args := shellInvocation("npm install")
	switch name {
	case "sh":
		if len(args) != 2 || args[0] != "-c" || args[1] != "npm install" {
			t.Fatalf("unexpected sh args: %#v", args)
		}
	case "cmd":
		if len(args) != 2 || args[0] != "/C" || args[1] != "npm install" {
			t.Fatalf("unexpected cmd args: %#v", args)
		}
	default:
		t.Fatalf("unexpected shell: %s", name)
	}
}
