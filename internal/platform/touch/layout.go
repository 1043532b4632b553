package touch

import (
	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
)

// Logical screen size in pixels. The renderer scales it to the window.
const (
	ScreenW   = 800
	ScreenH   = 450
	HUDHeight = 40
	GroundY   = 400
)

// ButtonID names a tappable area.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonKey           // on-screen keyboard letter, see Button.Rune
	ButtonDelete
	ButtonLogin
	ButtonEasy
	ButtonNormal
	ButtonHard
	ButtonScores
	ButtonLogout
	ButtonPause
	ButtonBack
)

// Button is a labelled tappable rectangle in logical pixels.
type Button struct {
	ID    ButtonID
	Label string
	Rune  rune
	Rect  core.Rect
}

const keyboardRows = "ABCDEFGHIJKLM" + "NOPQRSTUVWXYZ"

// loginButtons is the on-screen keyboard: two rows of letters plus
// delete and login.
func loginButtons() []Button {
	buttons := make([]Button, 0, len(keyboardRows)+2)
	for i, r := range keyboardRows {
		row, col := i/13, i%13
		buttons = append(buttons, Button{
			ID:    ButtonKey,
			Label: string(r),
			Rune:  r,
			Rect:  core.NewRect(75+col*50, 230+row*50, 46, 44),
		})
	}
	return append(buttons,
		Button{ID: ButtonDelete, Label: "DEL", Rect: core.NewRect(240, 340, 150, 44)},
		Button{ID: ButtonLogin, Label: "LOGIN", Rect: core.NewRect(410, 340, 150, 44)},
	)
}

func difficultyButtons() []Button {
	ids := map[config.Difficulty]ButtonID{
		config.Easy:   ButtonEasy,
		config.Normal: ButtonNormal,
		config.Hard:   ButtonHard,
	}
	var buttons []Button
	for i, d := range config.Difficulties() {
		buttons = append(buttons, Button{
			ID:    ids[d],
			Label: d.String(),
			Rect:  core.NewRect(300, 120+i*64, 200, 52),
		})
	}
	return append(buttons,
		Button{ID: ButtonScores, Label: "SCORES", Rect: core.NewRect(220, 340, 170, 44)},
		Button{ID: ButtonLogout, Label: "LOGOUT", Rect: core.NewRect(410, 340, 170, 44)},
	)
}

func gameButtons() []Button {
	return []Button{
		{ID: ButtonPause, Label: "II", Rect: core.NewRect(548, 4, 60, 32)},
		{ID: ButtonScores, Label: "SCORES", Rect: core.NewRect(616, 4, 84, 32)},
		{ID: ButtonLogout, Label: "LOGOUT", Rect: core.NewRect(708, 4, 88, 32)},
	}
}

func highScoreButtons() []Button {
	return []Button{
		{ID: ButtonBack, Label: "BACK", Rect: core.NewRect(325, 380, 150, 44)},
	}
}

// hit returns the first button containing p.
func hit(buttons []Button, p Point) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(p.X, p.Y) {
			return b, true
		}
	}
	return Button{}, false
}

// Projection maps world coordinates of the runner onto logical pixels:
// the view_height band above the ground fills the area between the HUD and
// GroundY.
type Projection struct {
	vp core.Viewport
}

// NewProjection creates the projection for cfg.
func NewProjection(cfg config.RunnerConfig) Projection {
	top := cfg.World.GroundLevel - cfg.World.ViewHeight
	return Projection{vp: core.NewViewport(cfg.World.Width, cfg.World.ViewHeight, top, ScreenW, GroundY-HUDHeight)}
}

// X converts a world x coordinate to a pixel column.
func (p Projection) X(wx float64) float64 {
	return (wx - p.vp.OriginX) * p.vp.ScaleX
}

// Y converts a world y coordinate to a pixel row.
func (p Projection) Y(wy float64) float64 {
	return HUDHeight + (wy-p.vp.OriginY)*p.vp.ScaleY
}

// W scales a world width to pixels.
func (p Projection) W(w float64) float64 {
	return w * p.vp.ScaleX
}

// H scales a world height to pixels.
func (p Projection) H(h float64) float64 {
	return h * p.vp.ScaleY
}
