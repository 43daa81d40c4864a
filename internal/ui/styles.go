// Package ui holds terminal presentation: the class color theme and the
// interactive source viewer.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/orsonlang/orson-mode/internal/token"
)

// Theme maps token classes to terminal styles. The zero value renders
// everything unstyled.
type Theme struct {
	enabled bool
	styles  map[token.Class]lipgloss.Style
}

// DefaultTheme builds the standard ANSI palette. With color disabled the
// theme passes text through untouched.
func DefaultTheme(color bool) Theme {
	if !color {
		return Theme{}
	}
	return Theme{
		enabled: true,
		styles: map[token.Class]lipgloss.Style{
			token.ClassOperator:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			token.ClassClauseKeyword: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
			token.ClassQuotedName:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			token.ClassPlainName:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			token.ClassSimpleType:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			token.ClassJokerType:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Italic(true),
			token.ClassString:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			token.ClassComment:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		},
	}
}

// Render styles text according to the class. Unknown classes and disabled
// themes return the text unchanged.
func (t Theme) Render(class token.Class, text string) string {
	if !t.enabled {
		return text
	}
	st, ok := t.styles[class]
	if !ok {
		return text
	}
	return st.Render(text)
}

// Enabled reports whether the theme emits escape sequences.
func (t Theme) Enabled() bool {
	return t.enabled
}
