package app

import (
	"github.com/irfansharif/orbs/internal/geom"
)

// View tracks the current viewport.
type View struct {
	Width, Height int
}

// NewView creates a new view for a viewport of the given size.
func NewView(width, height int) *View {
	return &View{
		Width:  width,
		Height: height,
	}
}

// SetViewport updates the viewport dimensions.
func (vs *View) SetViewport(width, height int) {
	vs.Width = width
	vs.Height = height
}

// Box returns the viewport in screen coordinates.
func (vs *View) Box() geom.Box {
	return geom.MakeBox(0, 0, float64(vs.Width), float64(vs.Height))
}

// Valid reports whether the viewport has a drawable area. Minimized windows
// report a zero-sized framebuffer.
func (vs *View) Valid() bool {
	return vs.Width > 0 && vs.Height > 0
}
