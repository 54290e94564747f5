package system

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/obj"
	"github.com/milk9111/chroma/prefabs"
)

var (
	ErrNilSurface     = errors.New("system: nil surface")
	ErrNotInitialized = errors.New("system: game not initialized")
)

// Option configures a Game.
type Option func(*Game)

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithBoxRule replaces the scripted box rule.
func WithBoxRule(r obj.BoxRule) Option {
	return func(g *Game) {
		g.rule = r
		g.customRule = r != nil
	}
}

// WithStartStage overrides game.yaml's start_stage.
func WithStartStage(n int) Option {
	return func(g *Game) {
		g.startStage = n
	}
}

// Game owns one play session: the current stage, its entities, the
// background tint and the READY/PLAYING/CLEAR/COMPLETE state machine.
type Game struct {
	table      *levels.Table
	specs      prefabs.Specs
	source     obj.InputSource
	logger     *log.Logger
	rule       obj.BoxRule
	customRule bool
	startStage int

	state    State
	stageNum int
	stage    levels.Stage
	frames   int

	camera  *obj.Camera
	gameMap *obj.GameMap
	control *obj.Control
	player  *obj.Player
	portal  obj.Portal
	items   []obj.Item
	boxes   []*obj.Box
	tint    obj.Tint
	fade    *obj.Transition
}

func NewGame(table *levels.Table, specs prefabs.Specs, source obj.InputSource, opts ...Option) *Game {
	g := &Game{
		table:      table,
		specs:      specs,
		source:     source,
		logger:     log.Default(),
		startStage: specs.Game.StartStage,
		state:      StateReady,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init builds the camera, map and control, loads the start stage and
// enters PLAYING.
func (g *Game) Init() error         {
	g.state = StateReady
	g.camera = obj.NewCamera(common.ScreenWidth, g.specs.Camera.Smoothness)
	g.gameMap = obj.NewGameMap(g.specs.Game.MapColor)
	g.control = obj.NewControl(g.source)
	g.fade = obj.NewTransition(g.specs.Game.FadeFrames)
	g.tint = obj.Tint{}
	if g.rule == nil {
		g.rule = g.loadRule()
	}

	if err := g.Load(g.startStage); err != nil {
		return err
	}
	return g.transition(EventLoaded)
}

// Load replaces every entity with a fresh copy of stage n. On error the
// current stage is left untouched.
func (g *Game) Load(n int) error {
	if g.control == nil {
		return ErrNotInitialized
	}
	stage, err := g.table.Stage(n)
	if err != nil {
		return fmt.Errorf("system: load stage: %w", err)
	}

	g.stage = stage
	g.stageNum = n
	g.gameMap.Load(stage.MapPixels())
	g.control.Init()

	worldW, worldH := g.gameMap.Bounds()
	g.player = obj.NewPlayer(common.TilesToPixels(stage.Spawn.X), common.TilesToPixels(stage.Spawn.Y), g.specs.Player, g.logger)
	g.player.SetWorldBounds(worldW, worldH)

	g.portal = obj.NewPortal(stage.Portal, g.specs.Portal)
	g.items = make([]obj.Item, 0, len(stage.Items))
	for _, spec := range stage.Items {
		g.items = append(g.items, obj.NewItem(spec, g.specs.Item))
	}
	g.boxes = make([]*obj.Box, 0, len(stage.Boxes))
	for _, spec := range stage.Boxes {
		g.boxes = append(g.boxes, obj.NewBox(spec, g.specs.Box))
	}

	g.camera.SetWorldWidth(worldW)
	g.camera.SetFocusWidth(g.player.Width)
	g.camera.Snap(g.player.X)

	if !g.specs.Game.PersistTint {
		g.tint = obj.Tint{}
	}
	g.fade.Start()

	g.logger.Info("stage loaded", "stage", n, "name", stage.Name, "items", len(g.items), "boxes", len(g.boxes))
	return nil
}

// Update advances one frame of play. The order is fixed: the player moves
// first so the camera, portal, items and boxes all see its new position.
func (g *Game) Update() {
	if g.player == nil {
		return
	}
	g.frames++

	g.control.Poll()
	g.player.Move(g.control)
	g.player.Update(g.gameMap.Solids(), g.boxes)
	g.camera.Update(g.player.X)
	g.portal = g.portal.Update(g.player.Rect)

	for i := range g.items {
		item, pickup := g.items[i].Update(g.player.Rect)
		if pickup.Collected {
			g.tint = g.tint.Add(pickup.Color)
			g.logger.Debug("item collected", "stage", g.stageNum, "color", pickup.Color, "tint", g.tint.Color)
		}
		item.ChangeBackground = false
		g.items[i] = item
	}

	for _, b := range g.boxes {
		next, err := b.Update(g.tint, g.rule)
		if err != nil {
			g.logger.Warn("box rule failed", "stage", g.stageNum, "box", b.Color, "error", err)
		}
		*b = next
	}

	g.fade.Update()

	if g.portal.Reach && g.state == StatePlaying {
		if err := g.transition(EventPortal); err == nil {
			g.logger.Info("stage clear", "stage", g.stageNum, "frames", g.frames)
			g.stageNum++
		}
	}
}

// Tick runs the state dispatch for one frame without drawing.
func (g *Game) Tick() error         {
	switch g.state {
	case StatePlaying:
		g.Update()
	case StateClear:
		if g.stageNum >= g.table.Len() {
			g.logger.Info("all stages clear", "stages", g.table.Len())
			return g.transition(EventExhausted)
		}
		if err := g.Load(g.stageNum); err != nil {
			return err
		}
		return g.transition(EventLoaded)
	}
	return nil
}

// Draw renders the current state. The tint fills the background whenever
// any item has been collected.
func (g *Game) Draw(s obj.Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	s.Clear()
	if g.tint.Active {
		s.Fill(g.tint.Color.NRGBA())
	}

	switch g.state {
	case StateReady:
		drawCentered(s, "READY")
	case StatePlaying, StateClear:
		// CLEAR is only visible on the frame the portal was reached; the
		// cleared stage's entities are still loaded.
		cx := g.camera.CX
		g.gameMap.Render(cx, s)
		for _, item := range g.items {
			item.Render(cx, s)
		}
		for _, b := range g.boxes {
			b.Render(cx, s)
		}
		g.player.Render(cx, s)
		g.portal.Render(cx, s)
		g.fade.Render(s)
	case StateComplete:
		drawCentered(s, "ALL STAGES CLEAR")
	}
	return nil
}

// Render is one full frame: Tick, then Draw. A nil surface is rejected
// before the game advances.
func (g *Game) Render(s obj.Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	if err := g.Tick(); err != nil {
		return err
	}
	return g.Draw(s)
}

// Restart reloads the current stage. From COMPLETE it starts a new session
// at the start stage.
func (g *Game) Restart() error      {
	switch g.state {
	case StatePlaying:
		return g.Load(g.stageNum)
	case StateComplete:
		if err := g.transition(EventRestart); err != nil {
			return err
		}
		return g.Init()
	}
	return fmt.Errorf("%w: restart from %s", ErrIllegalTransition, g.state)
}

// ApplySpecs swaps tuning at runtime. Movement, camera, map color and the
// box rule change immediately; entity sizes apply from the next load.
func (g *Game) ApplySpecs(specs prefabs.Specs) {
	g.specs = specs
	if g.camera != nil {
		g.camera.SetSmooth(specs.Camera.Smoothness)
	}
	if g.gameMap != nil {
		g.gameMap.SetColor(specs.Game.MapColor)
	}
	if g.player != nil {
		g.player.SetSpec(specs.Player)
	}
	if g.fade != nil {
		g.fade.Duration = specs.Game.FadeFrames
	}
	if !g.customRule {
		g.rule = g.loadRule()
		for _, b := range g.boxes {
			b.Reevaluate()
		}
	}
}

func (g *Game) State() State        { return g.state }
func (g *Game) StageNum() int       { return g.stageNum }
func (g *Game) StageCount() int     { return g.table.Len() }
func (g *Game) Stage() levels.Stage { return g.stage }
func (g *Game) Player() *obj.Player { return g.player }
func (g *Game) Portal() obj.Portal  { return g.portal }
func (g *Game) Boxes() []*obj.Box   { return g.boxes }
func (g *Game) Tint() obj.Tint      { return g.tint }
func (g *Game) Camera() *obj.Camera { return g.camera }
func (g *Game) Frames() int         { return g.frames }

// Items returns a copy of the current items.
func (g *Game) Items() []obj.Item   {
	return append([]obj.Item(nil), g.items...)
}

func (g *Game) transition(e Event) error {
	next, err := g.state.Next(e)
	if err != nil {
		return err
	}
	g.logger.Debug("state change", "from", g.state, "to", next, "event", e)
	g.state = next
	return nil
}

// loadRule compiles the box script named in box.yaml, falling back to the
// built-in distance rule when there is no script or it fails to build.
func (g *Game) loadRule() obj.BoxRule {
	fallback := obj.MatchRule{Tolerance: g.specs.Box.MatchTolerance}
	if g.specs.Box.Script == "" {
		return fallback
	}
	rule, err := obj.NewScriptRule(g.specs.Box.Script, g.specs.Box.MatchTolerance)
	if err != nil {
		g.logger.Warn("box rule script unavailable, using distance rule", "script", g.specs.Box.Script, "error", err)
		return fallback
	}
	g.logger.Debug("box rule loaded", "script", rule.Name())
	return rule
}

func drawCentered(s obj.Surface, msg string) {
	w, h := s.Size()
	x := (float64(w) - s.TextWidth(msg)) / 2
	s.DrawText(msg, x, float64(h)/2, color.White)
}
