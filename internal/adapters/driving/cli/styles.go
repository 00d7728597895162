package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// styled is true when stdout is a terminal.
var styled bool

func detectStyles() {
	styled = term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// status prints a progress line such as "\tBuilding hello v0.1.0".
func status(cmd *cobra.Command, verb, format string, args ...any) {
	printStatus(cmd, statusStyle, verb, fmt.Sprintf(format, args...))
}

// statusWarn prints a progress line with the verb highlighted as a warning.
func statusWarn(cmd *cobra.Command, verb, format string, args ...any) {
	printStatus(cmd, warnStyle, verb, fmt.Sprintf(format, args...))
}

func printStatus(cmd *cobra.Command, style lipgloss.Style, verb, msg string) {
	if msg == "" {
		cmd.Printf("\t%s\n", render(style, verb))
		return
	}
	cmd.Printf("\t%s %s\n", render(style, verb), msg)
}

func muted(s string) string {
	return render(mutedStyle, s)
}
