package ui

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
)

// DefaultWrap is the word wrap width for rendered markdown.
const DefaultWrap = 80

// RenderMarkdown renders md for the terminal. The "notty" style is used when
// color is false so the result contains no escape sequences.
func RenderMarkdown(md string, width int, color bool) (string, error) {
	style := "notty"
	if color {
		style = "dracula"
	}
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
