package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/prefabs"
)

// BoxRule decides whether a box of the given color can be walked through
// under the current tint.
type BoxRule interface {
	Passable(tint Tint, box common.RGB) (bool, error)
}

// MatchRule makes a box passable when the active tint is within Tolerance
// of the box color in RGB space.
type MatchRule struct {
	Tolerance float64
}

func (r MatchRule) Passable(tint Tint, box common.RGB) (bool, error) {
	return tint.Active && tint.Color.Distance(box) <= r.Tolerance, nil
}

// ScriptRule evaluates a tengo script. The script sees tint_active, tint,
// box and tolerance and must define passable.
type ScriptRule struct {
	name      string
	compiled  *tengo.Compiled
	tolerance float64
}

// NewScriptRule loads a script through prefabs.LoadScript and compiles it.
func NewScriptRule(name string, tolerance float64) (*ScriptRule, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("obj: load box rule %s: %w", name, err)
	}
	rule, err := CompileScriptRule(src, tolerance)
	if err != nil {
		return nil, fmt.Errorf("obj: compile box rule %s: %w", name, err)
	}
	rule.name = name
	return rule, nil
}

func CompileScriptRule(src []byte, tolerance float64) (*ScriptRule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tint_active", false)
	_ = script.Add("tint", colorObject(common.RGB{}))
	_ = script.Add("box", colorObject(common.RGB{}))
	_ = script.Add("tolerance", tolerance)

	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &ScriptRule{compiled: compiled, tolerance: tolerance}, nil
}

func (r *ScriptRule) Name() string { return r.name }

func (r *ScriptRule) Passable(tint Tint, box common.RGB) (bool, error) {
	if r == nil || r.compiled == nil {
		return false, fmt.Errorf("nil box rule")
	}
	if err := r.compiled.Set("tint_active", tint.Active); err != nil {
		return false, err
	}
	if err := r.compiled.Set("tint", colorObject(tint.Color)); err != nil {
		return false, err
	}
	if err := r.compiled.Set("box", colorObject(box)); err != nil {
		return false, err
	}
	if err := r.compiled.Set("tolerance", r.tolerance); err != nil {
		return false, err
	}
	if err := r.compiled.Run(); err != nil {
		return false, err
	}
	if !r.compiled.IsDefined("passable") {
		return false, fmt.Errorf("box rule does not define passable")
	}
	return r.compiled.Get("passable").Bool(), nil
}

func colorObject(c common.RGB) map[string]any {
	return map[string]any{"r": c.R, "g": c.G, "b": c.B}
}
