// Package output holds terminal presentation helpers shared by commands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Format is a terminal output format.
type Format string

// Supported formats. Not every command supports every format.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates s against allowed.
func ParseFormat(s string, allowed ...Format) (Format, error) {
	for _, f := range allowed {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (expected one of %v)", s, allowed)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Styles holds lipgloss styles bound to one writer.
type Styles struct {
	Title   lipgloss.Style
	Field   lipgloss.Style
	Found   lipgloss.Style
	Missing lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns styles for w. Colors are dropped when w is not a
// terminal so piped output stays plain.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Title:   r.NewStyle().Bold(true),
		Field:   r.NewStyle().Width(14),
		Found:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Missing: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
