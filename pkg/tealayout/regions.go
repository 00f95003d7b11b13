// Package tealayout provides declarative layout computation and common
// chrome layer builders for Bubbletea v2 + Lipgloss v2 apps.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// LayoutBuilder stacks full-width bands from the top and bottom of the
// terminal and gives the leftover band to Remaining.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

// TopFixed reserves rows below the previous top band. Height is clamped so
// top bands never overlap bottom bands.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	height = min(max(height, 0), b.free())
	y := b.top
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.top += height
	return b
}

// BottomFixed reserves rows above the previous bottom band.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	height = min(max(height, 0), b.free())
	y := b.termH - b.bottom - height
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.bottom += height
	return b
}

// Remaining assigns whatever band is left between top and bottom.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	b.add(name, image.Rect(0, b.top, b.termW, b.termH-b.bottom))
	return b
}

func (b *LayoutBuilder) free() int {
	return max(b.termH-b.top-b.bottom, 0)
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
}

// Build computes and returns the final Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		// degenerate regions collapse to empty
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}
