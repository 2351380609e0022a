// Package ui renders user-facing terminal output: status lines, panels,
// tables, markdown and the yes/no prompt.
//
// Styling is applied only when the destination is a terminal and NO_COLOR is
// unset, so output captured by tests or pipes is plain text.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	borderColor  = lipgloss.Color("63")
)

// Printer writes status output to a single writer.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer for w. Color is enabled when w is a terminal
// and getenv("NO_COLOR") is empty.
func NewPrinter(w io.Writer, getenv func(string) string) *Printer {
	return &Printer{w: w, color: IsTerminal(w) && getenv("NO_COLOR") == ""}
}

// NewPlainPrinter returns a Printer that never styles output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color reports whether the printer styles its output.
func (p *Printer) Color() bool { return p.color }

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Accent highlights an inline value such as a path or command.
func (p *Printer) Accent(text string) string { return p.render(accentStyle, text) }

// ErrorStyle returns the styling used for error lines.
func (p *Printer) ErrorStyle() func(string) string {
	return func(s string) string { return p.render(errorStyle, s) }
}

// Success prints "<label> <detail>" with the label in green, e.g. "Created: CLAUDE.md".
func (p *Printer) Success(label, detail string) {
	fmt.Fprintln(p.w, joinNonEmpty(p.render(successStyle, label), detail))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.render(warnStyle, "Warning: "+msg))
}

// Info prints an unstyled line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Debug prints a dimmed line.
func (p *Printer) Debug(msg string) {
	fmt.Fprintln(p.w, p.render(dimStyle, msg))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Panel prints body inside a rounded border with an optional title line.
func (p *Printer) Panel(title, body string) {
	fmt.Fprintln(p.w, p.panel(title, body))
}

func (p *Printer) panel(title, body string) string {
	content := strings.TrimRight(body, "\n")
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, p.render(titleStyle, title), "", content)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if p.color {
		box = box.BorderForeground(borderColor)
	}
	return box.Render(content)
}

// Table prints rows under headers with an optional title line.
func (p *Printer) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		fmt.Fprintln(p.w, p.render(titleStyle, title))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if !p.color {
				return s
			}
			switch {
			case row == table.HeaderRow:
				return s.Bold(true)
			case col == 0:
				return s.Foreground(lipgloss.Color("86"))
			}
			return s
		})
	if p.color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(borderColor))
	}
	fmt.Fprintln(p.w, t.String())
}

// Status returns text colored by outcome; ok is green, otherwise red.
func (p *Printer) Status(text string, ok bool) string {
	if ok {
		return p.render(successStyle, text)
	}
	return p.render(errorStyle, text)
}

func joinNonEmpty(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}
