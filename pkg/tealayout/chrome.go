package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer renders a one-line bar spanning the width of a region, at the
// region's first row.
func BarLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxWidth(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// LinesLayer renders pre-styled lines into a region. Lines past the region
// height are dropped; every line is right-padded to the region width with
// pad so the background stays uniform.
func LinesLayer(r Region, lines []string, pad lipgloss.Style, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(r.Name)
	}
	out := make([]string, h)
	for i := range out {
		var l string
		if i < len(lines) {
			l = lipgloss.NewStyle().MaxWidth(w).Render(lines[i])
		}
		if vis := lipgloss.Width(l); vis < w {
			l += pad.Render(strings.Repeat(" ", w-vis))
		}
		out[i] = l
	}
	return lipgloss.NewLayer(strings.Join(out, "\n")).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(r.Name)
}

// FillLayer creates a Layer filled with the given style at a region's position.
// Useful for creating background layers that fill a layout region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
