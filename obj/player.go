package obj

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/prefabs"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player)
	HandleInput(p *Player)
	OnPhysics(p *Player)
	Name() string
}

type idleState struct{}

func (idleState) Name() string    { return "idle" }
func (idleState) Enter(p *Player) { p.playAnimation("idle") }
func (idleState) HandleInput(p *Player) {
	if p.input.JumpPressed() {
		p.jump()
		return
	}
	if p.input.MoveX() != 0 {
		p.setState(stateRunning)
	}
}
func (idleState) OnPhysics(p *Player) {
	if !p.grounded {
		p.setState(stateFalling)
	}
}

type runningState struct{}

func (runningState) Name() string    { return "running" }
func (runningState) Enter(p *Player) { p.playAnimation("running") }
func (runningState) HandleInput(p *Player) {
	if p.input.JumpPressed() {
		p.jump()
		return
	}
	if p.input.MoveX() == 0 {
		p.setState(stateIdle)
	}
}
func (runningState) OnPhysics(p *Player) {
	if !p.grounded {
		p.setState(stateFalling)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string    { return "jumping" }
func (jumpingState) Enter(p *Player) { p.playAnimation("jumping") }
func (jumpingState) HandleInput(p *Player) {
	if p.input.JumpPressed() {
		p.bufferJump()
	}
	if !p.input.JumpHeld() {
		p.cutJump()
	}
}
func (jumpingState) OnPhysics(p *Player) {
	if p.VelocityY >= 0 {
		p.setState(stateFalling)
	}
}

type fallingState struct{}

func (fallingState) Name() string    { return "falling" }
func (fallingState) Enter(p *Player) { p.playAnimation("falling") }
func (fallingState) HandleInput(p *Player) {
	if !p.input.JumpPressed() {
		return
	}
	// allow coyote jump shortly after leaving ground
	if p.coyoteTimer > 0 {
		p.jump()
		return
	}
	p.bufferJump()
}
func (fallingState) OnPhysics(p *Player) {
	if !p.grounded {
		return
	}
	if p.jumpBufferTimer > 0 {
		p.jump()
		return
	}
	if p.input != nil && p.input.MoveX() != 0 {
		p.setState(stateRunning)
	} else {
		p.setState(stateIdle)
	}
}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle    playerState = &idleState{}
	stateRunning playerState = &runningState{}
	stateJumping playerState = &jumpingState{}
	stateFalling playerState = &fallingState{}
)

// Player is the controllable character. The embedded Rect is the collision
// AABB; the sprite is drawn centered on it and bottom-aligned.
type Player struct {
	common.Rect
	StartX, StartY float64
	VelocityX      float64
	VelocityY      float64

	spec            prefabs.PlayerSpec
	input           *Control
	state           playerState
	grounded        bool
	jumpBufferTimer int
	coyoteTimer     int
	facingRight     bool
	anim            Animation
	anims           map[string]Animation
	worldW          float64
	worldH          float64
	logger          *log.Logger
}

func NewPlayer(x, y float64, spec prefabs.PlayerSpec, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	w, h := spec.Collider.Width, spec.Collider.Height
	if w <= 0 {
		w = common.BlockSize
	}
	if h <= 0 {
		h = 2 * common.BlockSize
	}
	p := &Player{
		Rect:        common.NewRect(x, y, w, h),
		StartX:      x,
		StartY:      y,
		spec:        spec,
		facingRight: true,
		worldW:      common.ScreenWidth,
		worldH:      common.ScreenHeight,
		logger:      logger,
		anims:       make(map[string]Animation, len(spec.Animation.Defs)),
	}
	for name, def := range spec.Animation.Defs {
		p.anims[name] = NewAnimation(def, spec.Animation.FrameW, spec.Animation.FrameH)
	}
	p.setState(stateIdle)
	return p
}

// SetSpec swaps movement tuning in place, keeping position and state.
func (p *Player) SetSpec(spec prefabs.PlayerSpec) {
	p.spec = spec
}

// SetWorldBounds sets the area the player is kept inside. Falling below
// the bottom respawns at the start position.
func (p *Player) SetWorldBounds(w, h float64) {
	p.worldW = w
	p.worldH = h
}

func (p *Player) State() string {
	if p.state == nil {
		return ""
	}
	return p.state.Name()
}

func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) FacingRight() bool { return p.facingRight }

// setState helper switches states and calls Enter.
func (p *Player) setState(s playerState) {
	if p.state == s {
		return
	}
	p.state = s
	p.logger.Debug("player state", "state", s.Name())
	p.state.Enter(p)
}

func (p *Player) playAnimation(name string) {
	if a, ok := p.anims[name]; ok {
		p.anim = a
		p.anim.Reset()
	}
}

func (p *Player) jump() {
	p.VelocityY = -p.spec.JumpSpeed
	p.coyoteTimer = 0
	p.jumpBufferTimer = 0
	p.grounded = false
	p.setState(stateJumping)
}

// cutJump caps the rise once jump is released, for variable jump height.
func (p *Player) cutJump() {
	cut := -p.spec.JumpCutSpeed
	if p.spec.JumpCutSpeed > 0 && p.VelocityY < cut {
		p.VelocityY = cut
	}
}

func (p *Player) bufferJump() {
	p.jumpBufferTimer = p.spec.JumpBufferFrames
}

// Move applies the polled control to the horizontal velocity and lets the
// current state react to jump input.
func (p *Player) Move(c *Control) {
	p.input = c
	if c == nil {
		p.VelocityX = 0
		return
	}
	moveX := c.MoveX()
	p.VelocityX = p.spec.MoveSpeed * moveX
	if moveX < 0 {
		p.facingRight = false
	} else if moveX > 0 {
		p.facingRight = true
	}
	if p.jumpBufferTimer > 0 {
		p.jumpBufferTimer--
	}
	p.state.HandleInput(p)
}

// Update integrates gravity and resolves collisions one axis at a time
// against the map and the solid boxes. Boxes in the way are pushed.
func (p *Player) Update(solids []common.Rect, boxes []*Box) {
	p.VelocityY = math.Min(p.VelocityY+p.spec.Gravity, p.spec.MaxFallSpeed)

	p.pushBoxes(solids, boxes)

	if resolved, hit := MoveX(p.Rect, p.VelocityX, p.blockers(solids, boxes)); hit {
		p.Rect = resolved
		p.VelocityX = 0
	} else {
		p.Rect = resolved
	}

	if resolved, hit := MoveY(p.Rect, p.VelocityY, p.blockers(solids, boxes)); hit {
		p.Rect = resolved
		p.VelocityY = 0
	} else {
		p.Rect = resolved
	}

	if p.X < 0 {
		p.X = 0
		p.VelocityX = 0
	}
	if p.Right() > p.worldW {
		p.X = p.worldW - p.Width
		p.VelocityX = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.VelocityY = 0
	}

	if p.Y > p.worldH {
		p.respawn()
		return
	}

	p.grounded = IsGrounded(p.Rect, p.blockers(solids, boxes))
	// update coyote timer: reset when grounded, count down when airborne
	if p.grounded {
		p.coyoteTimer = p.spec.CoyoteFrames
	} else if p.coyoteTimer > 0 {
		p.coyoteTimer--
	}

	// Let the state react to physics (velocity, grounded)
	p.state.OnPhysics(p)
	p.anim.Update()
}

// pushBoxes moves every solid box the player is about to walk into.
func (p *Player) pushBoxes(solids []common.Rect, boxes []*Box) {
	if p.VelocityX == 0 {
		return
	}
	next := p.Rect.Translate(p.VelocityX, 0)
	for _, b := range boxes {
		if !b.Solid() || b.Intersects(p.Rect) || !next.Intersects(b.Rect) {
			continue
		}
		obstacles := append([]common.Rect(nil), solids...)
		for _, other := range boxes {
			if other != b && other.Solid() {
				obstacles = append(obstacles, other.Rect)
			}
		}
		// push only by the overlap so the player ends flush with the box
		dx := next.Right() - b.X
		if p.VelocityX < 0 {
			dx = next.X - b.Right()
		}
		b.Push(dx, obstacles, p.worldW)
	}
}

// blockers is the map plus every solid box. A box that turned solid while
// overlapping the player is ignored until the player leaves it.
func (p *Player) blockers(solids []common.Rect, boxes []*Box) []common.Rect {
	if len(boxes) == 0 {
		return solids
	}
	out := make([]common.Rect, 0, len(solids)+len(boxes))
	out = append(out, solids...)
	for _, b := range boxes {
		if b.Solid() && !b.Intersects(p.Rect) {
			out = append(out, b.Rect)
		}
	}
	return out
}

func (p *Player) respawn() {
	p.logger.Debug("player fell out of the world", "x", p.X, "y", p.Y)
	p.X = p.StartX
	p.Y = p.StartY
	p.VelocityX = 0
	p.VelocityY = 0
	p.jumpBufferTimer = 0
	p.coyoteTimer = 0
	p.grounded = false
	p.setState(stateIdle)
}

// Render draws the sprite at (X - cx, Y), flipped when facing left.
func (p *Player) Render(cx float64, s Surface) {
	sw, sh := p.spec.Sprite.Width, p.spec.Sprite.Height
	if sw <= 0 || sh <= 0 {
		sw, sh = p.Width, p.Height
	}
	dst := common.NewRect(p.X-(sw-p.Width)/2-cx, p.Y-(sh-p.Height), sw, sh)
	sp := Sprite{Image: p.spec.Sprite.Image, Frame: p.anim.Frame(), FlipX: !p.facingRight}
	if p.spec.Sprite.Image == "" || !s.DrawSprite(sp, dst) {
		s.FillRect(p.Rect.Translate(-cx, 0), color.NRGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff})
	}
}
