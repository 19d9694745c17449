package starfighter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/starfighter/internal/core"
	"github.com/vovakirdan/starfighter/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		g.drawTooSmall(dst)
		return
	}

	g.stars.draw(dst, g.layout)
	g.sprites.draw(dst, g.layout)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "P to resume, R to restart")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	f := g.frame
	speed := f.Requested.Add(f.Thrust).Manhattan() >> 5
	hud := fmt.Sprintf(" SCORE %-6d SHOTS %-4d HDG %03d° SPD %-3d %s",
		g.score,
		g.Flight().ShotsFired,
		int(f.Rotation)*360/sim.Steps,
		speed,
		strings.ToUpper(g.mode.String()),
	)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if g.cfg.Starfield.DebugHUD {
		near, far := g.stars.offset(g.stars.near), g.stars.offset(g.stars.far)
		debug := fmt.Sprintf(" x %d y %d  near %d,%d  far %d,%d  bullets %d",
			f.Position.X, f.Position.Y, near.X, near.Y, far.X, far.Y, len(f.Bullets))
		dst.DrawTextColored(0, 1, debug, core.ColorGray)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", MinScreenW, MinScreenH, dst.Width(), dst.Height()))
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(x, y, boxW, boxH))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, subtitle)
}
