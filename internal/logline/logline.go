// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logline prints the coloured progress and abort lines shown while
// publishing.
package logline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	colorRed  = lipgloss.Color("1")
	colorCyan = lipgloss.Color("6")
)

// Logger writes status lines to w. Write errors are ignored.
type Logger struct {
	w        io.Writer
	category lipgloss.Style
	message  lipgloss.Style
	failure  lipgloss.Style
}

// New returns a Logger writing to w. The 16-colour ANSI profile is forced so
// output is coloured even when w is not a terminal; with color false every
// escape sequence is dropped.
func New(w io.Writer, color bool) *Logger {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Logger{
		w:        w,
		category: r.NewStyle().Foreground(colorCyan),
		message:  r.NewStyle().Faint(true),
		failure:  r.NewStyle().Foreground(colorRed),
	}
}

// Step prints "<category> : <message>" on a single line.
func (l *Logger) Step(category, message string) {
	fmt.Fprintf(l.w, "%s : %s\n", l.category.Render(category), l.message.Render(message))
}

// Abort prints "Error: <reason>" surrounded by blank lines.
func (l *Logger) Abort(reason string) {
	fmt.Fprintf(l.w, "\n%s\n\n", l.failure.Render("Error: "+reason))
}
