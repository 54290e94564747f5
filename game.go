package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
	"github.com/milk9111/chroma/system"
	"golang.design/x/clipboard"
)

type AppOptions struct {
	Debug      bool
	ConfigPath string
	Logger     *log.Logger
}

// App adapts a system.Game to ebiten: keyboard input, the pause menu and
// the debug tools.
type App struct {
	game    *system.Game
	surface *Surface
	ui      *ebitenui.UI
	logger  *log.Logger

	paused bool
	quit   bool

	debug      bool
	configPath string
	watcher    *prefabs.Watcher
	clipboard  bool
}

func NewApp(table *levels.Table, specs prefabs.Specs, o AppOptions, opts ...system.Option) (*App, error) {
	logger := o.Logger
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		game:       system.NewGame(table, specs, KeyboardInput{}, opts...),
		surface:    NewSurface(logger),
		logger:     logger,
		debug:      o.Debug,
		configPath: o.ConfigPath,
	}
	if err := a.game.Init(); err != nil {
		return nil, fmt.Errorf("init game: %w", err)
	}
	a.ui = NewPauseUI(a)

	if a.debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", "dir", prefabs.Dir, "error", err)
		} else {
			a.watcher = w
			logger.Debug("watching prefabs", "dir", prefabs.Dir)
		}
		if err := clipboard.Init(); err != nil {
			logger.Warn("clipboard unavailable", "error", err)
		} else {
			a.clipboard = true
		}
	}
	return a, nil
}

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.paused = !a.paused
	}
	if a.paused {
		a.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.restart()
	}
	if a.debug {
		a.reloadPrefabs()
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			a.copyPlayerTile()
		}
	}

	return a.game.Tick()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	if err := a.game.Draw(a.surface); err != nil {
		a.logger.Error("draw failed", "error", err)
		return
	}

	if a.debug {
		ebitenutil.DebugPrintAt(screen, a.debugLine(), 4, 4)
	}
	if a.paused {
		a.ui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.logger.Warn("close prefab watcher", "error", err)
		}
	}
}

func (a *App) resume() {
	a.paused = false
}

func (a *App) restart() {
	if err := a.game.Restart(); err != nil {
		a.logger.Warn("restart ignored", "state", a.game.State(), "error", err)
		return
	}
	a.paused = false
}

func (a *App) debugLine() string {
	line := fmt.Sprintf("FPS %.0f  %s  stage %d/%d  tint %s",
		ebiten.ActualFPS(), a.game.State(), a.game.StageNum()+1, a.game.StageCount(), tintLabel(a.game))
	if p := a.game.Player(); p != nil {
		line += fmt.Sprintf("\nplayer %.1f,%.1f %s grounded=%t", p.X, p.Y, p.State(), p.Grounded())
	}
	line += fmt.Sprintf("\n%q  frame %d  cam %.0f  items %d/%d  passable %d/%d  portal reach=%t",
		a.game.Stage().Name, a.game.Frames(), a.game.Camera().CX,
		itemsLeft(a.game), len(a.game.Items()), passableBoxes(a.game), len(a.game.Boxes()), a.game.Portal().Reach)
	return line
}

func itemsLeft(g *system.Game) int {
	n := 0
	for _, it := range g.Items() {
		if it.Show {
			n++
		}
	}
	return n
}

func passableBoxes(g *system.Game) int {
	n := 0
	for _, b := range g.Boxes() {
		if b.Passable {
			n++
		}
	}
	return n
}

func tintLabel(g *system.Game) string {
	t := g.Tint()
	if !t.Active {
		return "none"
	}
	return t.Color.String()
}

// reloadPrefabs applies spec edits picked up by the watcher.
func (a *App) reloadPrefabs() {
	if a.watcher == nil {
		return
	}
	select {
	case err := <-a.watcher.Errors:
		if err != nil {
			a.logger.Warn("prefab watcher", "error", err)
		}
	default:
	}

	changed := a.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	specs, err := prefabs.LoadAll(a.configPath)
	if err != nil {
		a.logger.Warn("prefab reload failed, keeping previous specs", "files", changed, "error", err)
		return
	}
	a.game.ApplySpecs(specs)
	a.logger.Info("prefabs reloaded", "files", changed)
}

// copyPlayerTile puts the player's tile position on the clipboard as a
// level-table point, for authoring stages.json.
func (a *App) copyPlayerTile() {
	p := a.game.Player()
	if p == nil || !a.clipboard {
		return
	}
	snippet := tileSnippet(p.X, p.Y)
	clipboard.Write(clipboard.FmtText, []byte(snippet))
	a.logger.Info("copied player tile", "point", snippet)
}

func tileSnippet(x, y float64) string {
	return fmt.Sprintf(`{"x": %d, "y": %d}`, int(x)/common.BlockSize, int(y)/common.BlockSize)
}
