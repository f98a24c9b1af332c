// Package console writes task output and command echoes to the terminal.
package console

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kmak/internal/ui/output"
	"go.trai.ch/kmak/internal/ui/style"
)

// Console implements ports.Console. Printed text goes to stdout, command
// echoes go to stderr.
type Console struct {
	stdout   *termenv.Output
	stderr   *termenv.Output
	renderer *lipgloss.Renderer
}

// New creates a Console writing to the given streams.
// Nil writers default to os.Stdout and os.Stderr.
func New(stdout, stderr io.Writer) *Console {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	out := output.New(stdout)
	renderer := lipgloss.NewRenderer(stdout)
	renderer.SetColorProfile(out.Profile)

	return &Console{
		stdout:   out,
		stderr:   output.New(stderr),
		renderer: renderer,
	}
}

// Print writes text followed by a newline.
func (c *Console) Print(text string) {
	_, _ = c.stdout.WriteString(text + "\n")
}

// Command echoes a command line before it runs.
func (c *Console) Command(cmdline string) {
	prefix := c.stderr.String(style.CommandPrefix).Faint().String()
	_, _ = c.stderr.WriteString(prefix + " " + cmdline + "\n")
}

// Tasks lists task names in declaration order.
func (c *Console) Tasks(names []string) {
	if len(names) == 0 {
		_, _ = c.stdout.WriteString("No tasks defined.\n")
		return
	}

	name := style.TaskName(c.renderer)

	var b strings.Builder
	b.WriteString("Available tasks:\n")
	for _, n := range names {
		b.WriteString("  " + name.Render(n) + "\n")
	}
	_, _ = c.stdout.WriteString(b.String())
}
