// Where: cli/internal/shell/runner.go
// What: External command execution through the platform shell.
// Why: Provide a minimal, testable interface for delegated tool invocations.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Runner defines the interface for executing shell command lines.
// Implementations run the command in the specified working directory.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// CommandError reports a command that started but exited nonzero.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// StartError reports a command that could not be started at all,
// e.g. when the shell binary is unavailable.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("command %q could not be started: %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ExecRunner implements Runner using os/exec and the platform shell.
//
// The child inherits stdin/stdout/stderr so delegated tools (create-vite,
// create-next-app, package managers) can prompt the user directly. Exactly
// one attempt is made; the caller decides whether a failure is fatal.
type ExecRunner struct{}

// Run executes command in dir and waits for it to terminate.
func (ExecRunner) Run(ctx context.Context, dir, command string) error {
	name, args := shellInvocation(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: command, ExitCode: exitErr.ExitCode()}
		}
		return &StartError{Command: command, Err: err}
	}
	return nil
}

// shellInvocation returns the platform shell and arguments for one command line.
func shellInvocation(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
