package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	hudStyle       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230)).Background(tcell.NewRGBColor(20, 20, 28))
	crosshairStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255))
)

func writeStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawHUD fills the bottom row with diagnostics and marks the pick point
func (g *Game) drawHUD(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	row := h - 1

	b := g.player.Body()
	line := fmt.Sprintf(" %d fps  %d chunk updates  pos %.1f %.1f %.1f",
		g.lastFPS, g.lastUpdates, b.X, b.Y, b.Z)
	if g.hasHit {
		line += fmt.Sprintf("  block %d %d %d face %d", g.hit.X, g.hit.Y, g.hit.Z, g.hit.F)
	}
	if g.status != "" {
		line += "  " + g.status
	}

	x := writeStr(s, 0, row, line, hudStyle)
	for ; x < w; x++ {
		s.SetContent(x, row, ' ', nil, hudStyle)
	}

	// The pick window is centred on the framebuffer, which covers every row but the HUD
	if h > 1 {
		cx, cy := w/2, (h-1)/2
		mainc, _, style, _ := s.GetContent(cx, cy)
		if mainc == 0 {
			style = tcell.StyleDefault
		}
		fg, _, _ := crosshairStyle.Decompose()
		s.SetContent(cx, cy, '+', nil, style.Foreground(fg))
	}
}
