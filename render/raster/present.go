package raster

import (
	"github.com/gdamore/tcell/v2"
)

// HalfBlock draws the upper pixel as foreground and the lower as background
const HalfBlock = '▀'

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present writes the framebuffer to the screen, two pixel rows per cell, starting at the top-left
// Show is left to the caller so overlays can be drawn first
func (r *Rasterizer) Present(s tcell.Screen) {
	sw, sh := s.Size()
	cols := min(r.width, sw)
	rows := min((r.height+1)/2, sh)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := r.Pixel(cx, cy*2)
			bottom := r.Pixel(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			s.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}
}
