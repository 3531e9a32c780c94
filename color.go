package gfxdemo

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors used by the examples.
var (
	Black = Color{0x00, 0x00, 0x00, 0xff}
	Red   = Color{0xff, 0x00, 0x00, 0xff}
	Green = Color{0x00, 0xff, 0x00, 0xff}
	Blue  = Color{0x00, 0x00, 0xff, 0xff}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
