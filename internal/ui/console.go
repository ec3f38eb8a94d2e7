// Where: cli/internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize colors, indentation, and structure across commands.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a bold section header.
// Example: Next steps:
func (c *Console) Header(title string) {
	fmt.Fprintf(c.Out, "%s\n", boldStyle.Render(title))
}

// Item prints an indented line, optionally with a trailing note.
// Example:   npm test (optional)
func (c *Console) Item(msg, note string) {
	if note != "" {
		fmt.Fprintf(c.Out, "  %s %s\n", infoStyle.Render(msg), note)
		return
	}
	fmt.Fprintf(c.Out, "  %s\n", infoStyle.Render(msg))
}

// Success prints a success message with an OK marker.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s\n", successStyle.Render("[OK] "+msg))
}

// Info prints an informational status line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", infoStyle.Render(msg))
}

// Warn prints a non-fatal warning.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s\n", warnStyle.Render(msg))
}

// Error prints a fatal error message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s\n", errorStyle.Render("[ERROR] "+msg))
}

// Command echoes an external command before it runs.
// Example: > npx --yes create-vite@latest web
func (c *Console) Command(command string) {
	fmt.Fprintf(c.Out, "%s\n", commandStyle.Render("> "+command))
}
