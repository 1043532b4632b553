package runner

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/stickrun/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	GroundChar   = '═'
	DirtChar     = '░'
)

// Stick man frames, three rows each: head, body, legs.
var (
	runFrames = [2][3]string{
		{" o ", "/|\\", "/ \\"},
		{" o ", "/|\\", " |\\"},
	}
	airFrame = [3]string{"\\o/", " | ", "/ \\"}
)

// Render draws the game into dst. Row 0 holds the HUD, the bottom two rows
// the ground; the world above the ground is scaled to fit the rest.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h < 6 {
		return
	}

	groundRow := h - 2
	vp := g.viewport(w, groundRow)

	dst.DrawHLine(0, groundRow, w, GroundChar, core.ColorGray)
	dst.DrawHLine(0, groundRow+1, w, DirtChar, core.ColorGray)

	obstacleRows := core.Max(1, int(math.Round(g.cfg.Obstacles.Height*vp.ScaleY)))
	for _, o := range g.obstacles {
		dst.DrawRect(core.NewRect(vp.Col(o.X), groundRow-obstacleRows, vp.Cells(o.Width), obstacleRows), ObstacleChar, core.ColorRed)
	}

	g.drawStickMan(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "P: resume")
	}
	if g.state == GameOver {
		title := "GAME OVER"
		if g.newBest {
			title = "GAME OVER - NEW BEST!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Space/R: restart  H: scores", g.score))
	}
}

// viewport maps the view_height band above the ground onto rows [0, groundRow).
func (g *Game) viewport(cols, groundRow int) core.Viewport {
	top := g.cfg.World.GroundLevel - g.cfg.World.ViewHeight
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.ViewHeight, top, cols, groundRow)
}

func (g *Game) drawStickMan(dst *core.Screen, vp core.Viewport) {
	frame := airFrame
	if g.Grounded() {
		frame = runFrames[g.LegFrame()]
	}

	// Feet stand on the row just above the ground line.
	feet := vp.Row(g.player.Y) - 1
	x := vp.Col(g.cfg.Player.X)
	for i, line := range frame {
		for dx, r := range line {
			if r != ' ' {
				dst.SetColored(x+dx, feet-2+i, r, core.ColorWhite)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorYellow)

	jumps := strings.Repeat("●", g.player.JumpsRemaining) + strings.Repeat("○", core.Max(0, g.maxJumps()-g.player.JumpsRemaining))
	right := fmt.Sprintf("%s  %s", g.difficulty, jumps)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorCyan)
}

// drawCenteredMessage draws a framed two-line message in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)

	boxW := core.Max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-tw)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}
