// Package ebitenui draws the touch frontend with Ebitengine and feeds it
// keyboard, mouse and touch input. The same App runs as a desktop window
// and, through the mobile package, on phones.
package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/nav"
	"github.com/vovakirdan/stickrun/internal/platform/touch"
	"github.com/vovakirdan/stickrun/internal/runner"
)

var (
	backgroundColor = color.RGBA{24, 26, 38, 255}
	groundColor     = color.RGBA{110, 110, 120, 255}
	obstacleColor   = color.RGBA{214, 69, 65, 255}
	stickColor      = color.RGBA{240, 240, 240, 255}
	buttonColor     = color.RGBA{70, 70, 160, 200}
	accentColor     = color.RGBA{255, 214, 102, 255}
	mutedColor      = color.RGBA{150, 150, 160, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// App implements ebiten.Game over a touch.Controller.
type App struct {
	c     *touch.Controller
	proj  touch.Projection
	face  text.Face
	debug bool
}

// New creates the app for c.
func New(c *touch.Controller) *App {
	return &App{
		c:    c,
		proj: touch.NewProjection(c.Config()),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetDebug toggles the FPS/TPS readout.
func (a *App) SetDebug(on bool) {
	a.debug = on
}

// Update polls input and advances the controller one frame.
func (a *App) Update() error {
	a.c.Update(pollInput())
	if a.c.Quit() {
		return ebiten.Termination
	}
	return nil
}

// pollInput collects the keys, clicks and touches of this frame.
func pollInput() touch.Input {
	in := touch.Input{
		Chars:     ebiten.AppendInputChars(nil),
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Up:        inpututil.IsKeyJustPressed(ebiten.KeyUp),
		Down:      inpututil.IsKeyJustPressed(ebiten.KeyDown),
		Jump:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyP),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Taps = append(in.Taps, touch.Point{X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Taps = append(in.Taps, touch.Point{X: x, Y: y})
	}
	return in
}

// Layout keeps a fixed logical resolution; Ebitengine scales it.
func (a *App) Layout(_, _ int) (int, int) {
	return touch.ScreenW, touch.ScreenH
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch a.c.Screen() {
	case nav.ScreenLogin:
		a.drawLogin(screen)
	case nav.ScreenDifficulty:
		a.drawDifficulty(screen)
	case nav.ScreenGame:
		a.drawGame(screen)
	case nav.ScreenHighScore:
		a.drawHighScores(screen)
	}

	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, touch.ScreenH-16)
	}
}

func (a *App) drawLogin(screen *ebiten.Image) {
	a.drawTextCentered(screen, "S T I C K   R U N", 60, accentColor, 2)
	a.drawTextCentered(screen, "Enter your name", 120, mutedColor, 1)

	vector.DrawFilledRect(screen, 250, 150, 300, 44, color.RGBA{40, 42, 58, 255}, false)
	a.drawTextCentered(screen, a.c.Name()+"_", 164, stickColor, 1.5)

	if msg := a.c.LoginError(); msg != "" {
		a.drawTextCentered(screen, msg, 205, obstacleColor, 1)
	}
	a.drawButtons(screen)
}

func (a *App) drawDifficulty(screen *ebiten.Image) {
	a.drawTextCentered(screen, fmt.Sprintf("Hi, %s!", a.c.Session().Username), 50, accentColor, 2)
	a.drawTextCentered(screen, "Choose a difficulty", 90, mutedColor, 1)

	for _, b := range a.c.Buttons() {
		d, ok := buttonDifficulty(b.ID)
		if ok && d == a.c.Cursor() {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.X-3), float32(r.Y-3), float32(r.W+6), float32(r.H+6), 2, accentColor, false)
		}
	}
	a.drawButtons(screen)

	for _, b := range a.c.Buttons() {
		if d, ok := buttonDifficulty(b.ID); ok {
			a.drawText(screen, fmt.Sprintf("best %d", a.c.Best(d)), float64(b.Rect.Right()+16), float64(b.Rect.Y+18), mutedColor, 1)
		}
	}
}

func buttonDifficulty(id touch.ButtonID) (config.Difficulty, bool) {
	switch id {
	case touch.ButtonEasy:
		return config.Easy, true
	case touch.ButtonNormal:
		return config.Normal, true
	case touch.ButtonHard:
		return config.Hard, true
	}
	return 0, false
}

func (a *App) drawGame(screen *ebiten.Image) {
	g := a.c.Game()
	if g == nil {
		return
	}
	cfg := a.c.Config()

	// Ground
	vector.DrawFilledRect(screen, 0, touch.GroundY, touch.ScreenW, touch.ScreenH-touch.GroundY, groundColor, false)

	// Obstacles
	h := float32(a.proj.H(cfg.Obstacles.Height))
	for _, o := range g.Obstacles() {
		vector.DrawFilledRect(screen, float32(a.proj.X(o.X)), touch.GroundY-h, float32(a.proj.W(o.Width)), h, obstacleColor, true)
	}

	a.drawStickMan(screen, g)

	// HUD
	vector.DrawFilledRect(screen, 0, 0, touch.ScreenW, touch.HUDHeight, color.RGBA{0, 0, 0, 120}, false)
	a.drawText(screen, fmt.Sprintf("%s  |  %s", a.c.Session().Username, g.Difficulty()), 10, 13, mutedColor, 1)
	a.drawText(screen, fmt.Sprintf("Score: %d", g.Score()), 250, 10, accentColor, 1.5)
	a.drawButtons(screen)

	st := g.State()
	switch {
	case st.GameOver:
		title := "GAME OVER"
		if g.NewBest() {
			title = "NEW BEST!"
		}
		a.drawOverlay(screen, title, fmt.Sprintf("Score: %d  -  tap to restart", st.Score))
	case st.Paused:
		a.drawOverlay(screen, "PAUSED", "tap II to resume")
	}
}

// drawStickMan draws a head, body, arms and two legs whose stance
// alternates while running.
func (a *App) drawStickMan(screen *ebiten.Image, g *runner.Game) {
	cfg := a.c.Config()
	w := float32(a.proj.W(cfg.Player.Width))
	x := float32(a.proj.X(cfg.Player.X))
	feet := float32(a.proj.Y(g.Player().Y))
	cx := x + w/2

	hip := feet - 22
	neck := hip - 20
	vector.DrawFilledCircle(screen, cx, neck-8, 8, stickColor, true)
	vector.StrokeLine(screen, cx, neck, cx, hip, 3, stickColor, true)

	armY := neck + 6
	if g.Grounded() {
		vector.StrokeLine(screen, cx, armY, cx-w/2, armY+10, 3, stickColor, true)
		vector.StrokeLine(screen, cx, armY, cx+w/2, armY+10, 3, stickColor, true)
	} else {
		vector.StrokeLine(screen, cx, armY, cx-w/2, armY-10, 3, stickColor, true)
		vector.StrokeLine(screen, cx, armY, cx+w/2, armY-10, 3, stickColor, true)
	}

	stride := w / 2
	if g.Grounded() && g.LegFrame() == 1 {
		stride = w / 6
	}
	vector.StrokeLine(screen, cx, hip, cx-stride, feet, 3, stickColor, true)
	vector.StrokeLine(screen, cx, hip, cx+stride, feet, 3, stickColor, true)
}

func (a *App) drawHighScores(screen *ebiten.Image) {
	a.drawTextCentered(screen, "HIGH SCORES", 60, accentColor, 2)
	a.drawTextCentered(screen, a.c.Session().Username, 100, mutedColor, 1)

	for i, d := range config.Difficulties() {
		y := float64(150 + i*56)
		a.drawText(screen, d.String(), 280, y, stickColor, 2)
		a.drawText(screen, fmt.Sprintf("%d", a.c.Best(d)), 460, y, accentColor, 2)
	}
	a.drawButtons(screen)
}

func (a *App) drawButtons(screen *ebiten.Image) {
	for _, b := range a.c.Buttons() {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor, false)
		tw, th := text.Measure(b.Label, a.face, 0)
		a.drawText(screen, b.Label, float64(r.X)+(float64(r.W)-tw)/2, float64(r.Y)+(float64(r.H)-th)/2, stickColor, 1)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, 200, 150, 400, 130, overlayColor, false)
	a.drawTextCentered(screen, title, 175, accentColor, 2.5)
	a.drawTextCentered(screen, subtitle, 240, stickColor, 1)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, a.face, op)
}

func (a *App) drawTextCentered(screen *ebiten.Image, s string, y float64, clr color.Color, scale float64) {
	w, _ := text.Measure(s, a.face, 0)
	a.drawText(screen, s, (touch.ScreenW-w*scale)/2, y, clr, scale)
}

// Run opens a desktop window and blocks until it is closed.
func Run(app *App, title string) error {
	ebiten.SetWindowSize(touch.ScreenW, touch.ScreenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
