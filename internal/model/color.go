package model

import "fmt"

// Color is an RGBA display color. The zero value is the empty cell.
type Color struct {
	R, G, B, A uint8
}

// IsEmpty returns true for the transparent zero color
func (c Color) IsEmpty() bool {
	return c.A == 0
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * uint32(c.A) / 0xff
	g = uint32(c.G) * uint32(c.A) / 0xff
	b = uint32(c.B) * uint32(c.A) / 0xff
	a = uint32(c.A)
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

// WithAlpha returns the color with its alpha replaced
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex formats the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
