package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors, ANSI 256.
var (
	colorGlyph     = lipgloss.Color("213")
	colorFamily    = lipgloss.Color("39")
	colorPrinciple = lipgloss.Color("141")
	colorInfo      = lipgloss.Color("81")
	colorSuccess   = lipgloss.Color("42")
	colorWarning   = lipgloss.Color("214")
	colorError     = lipgloss.Color("196")
	colorDim       = lipgloss.Color("245")
	colorEquation  = lipgloss.Color("220")
)

// Styles holds the text styles used by command output.
//
// Styles are bound to a renderer for the command's writer, so output to a
// pipe or buffer carries no escape codes.
type Styles struct {
	Title     lipgloss.Style
	Glyph     lipgloss.Style
	Family    lipgloss.Style
	Principle lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
	Bold      lipgloss.Style
	Equation  lipgloss.Style
}

// NewStyles returns styles rendering to w. With color disabled every style is
// the zero style and renders text unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	if !color || w == nil {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Glyph: plain, Family: plain, Principle: plain,
			Info: plain, Success: plain, Warning: plain, Error: plain,
			Dim: plain, Bold: plain, Equation: plain,
		}
	}

	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:     r.NewStyle().Bold(true),
		Glyph:     r.NewStyle().Foreground(colorGlyph).Bold(true),
		Family:    r.NewStyle().Foreground(colorFamily).Bold(true),
		Principle: r.NewStyle().Foreground(colorPrinciple).Bold(true),
		Info:      r.NewStyle().Foreground(colorInfo),
		Success:   r.NewStyle().Foreground(colorSuccess),
		Warning:   r.NewStyle().Foreground(colorWarning),
		Error:     r.NewStyle().Foreground(colorError).Bold(true),
		Dim:       r.NewStyle().Foreground(colorDim),
		Bold:      r.NewStyle().Bold(true),
		Equation:  r.NewStyle().Foreground(colorEquation),
	}
}
