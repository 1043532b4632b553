// Package mobile is the gomobile binding of the touch frontend, built with
// ebitenmobile bind.
package mobile

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/platform/ebitenui"
	"github.com/vovakirdan/stickrun/internal/platform/touch"
)

const storeFile = "runner.json"

var store = kv.NewFile(filepath.Join(defaultDataDir(), storeFile))

func init() {
	c := touch.NewController(touch.Deps{
		Store:  store,
		Config: config.DefaultRunnerConfig(),
	})
	mobile.SetGame(ebitenui.New(c))
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "stickrun")
	}
	return filepath.Join(os.TempDir(), "stickrun")
}

// SetDataDir points persistence at the app's private files directory. Call
// it before the game view is shown.
func SetDataDir(dir string) {
	store.SetPath(filepath.Join(dir, storeFile))
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
