package obj

// InputSource reports the logical actions currently held.
type InputSource interface {
	Left() bool
	Right() bool
	Jump() bool
}

// Control samples an InputSource once per update and derives edges.
type Control struct {
	src InputSource

	left     bool
	right    bool
	jump     bool
	prevJump bool
}

func NewControl(src InputSource) *Control {
	return &Control{src: src}
}

// Init clears any sampled state. A jump held across a stage load does not
// count as a new press.
func (c *Control) Init() {
	c.left = false
	c.right = false
	c.jump = true
	c.prevJump = true
}

func (c *Control) Poll() {
	c.prevJump = c.jump
	if c.src == nil {
		c.left, c.right, c.jump = false, false, false
		return
	}
	c.left = c.src.Left()
	c.right = c.src.Right()
	c.jump = c.src.Jump()
}

// MoveX is -1 for left, +1 for right and 0 for none or both.
func (c *Control) MoveX() float64 {
	var x float64
	if c.left {
		x--
	}
	if c.right {
		x++
	}
	return x
}

// JumpPressed is true only on the poll where jump went down.
func (c *Control) JumpPressed() bool {
	return c.jump && !c.prevJump
}

func (c *Control) JumpHeld() bool {
	return c.jump
}
