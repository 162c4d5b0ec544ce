// SPDX-License-Identifier: MIT
//
// File: style.go
// Role: palette, the plain and lipgloss-styled painters.

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette.
var (
	ColorCity     = lipgloss.Color("#2CD7C7")
	ColorDistance = lipgloss.Color("#F4D03F")
	ColorHeading  = lipgloss.Color("#20B9B4")
	ColorFailure  = lipgloss.Color("#E74C3C")
	ColorMuted    = lipgloss.Color("#2C4A54")
)

// paint decorates one fragment of text that holds no tabs or newlines.
type paint func(string) string

func identity(s string) string { return s }

// palette holds one painter per kind of fragment.
type palette struct {
	city, distance, heading, failure, muted paint
}

func plainPalette() palette {
	return palette{identity, identity, identity, identity, identity}
}

// styledPalette binds lipgloss styles to w so the color profile follows the
// destination (no escapes when w is not a terminal).
func styledPalette(w io.Writer) palette {
	return rendererPalette(lipgloss.NewRenderer(w))
}

func rendererPalette(r *lipgloss.Renderer) palette {
	return palette{
		city:     painter(r.NewStyle().Foreground(ColorCity)),
		distance: painter(r.NewStyle().Foreground(ColorDistance)),
		heading:  painter(r.NewStyle().Bold(true).Foreground(ColorHeading)),
		failure:  painter(r.NewStyle().Foreground(ColorFailure)),
		muted:    painter(r.NewStyle().Foreground(ColorMuted)),
	}
}

// painter adapts a style to a single-fragment paint.
func painter(st lipgloss.Style) paint {
	return func(s string) string { return st.Render(s) }
}
