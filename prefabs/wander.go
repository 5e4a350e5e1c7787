package prefabs

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
	"github.com/milk9111/skelecursor/creature"
)

// envelopeScale is how far past the built-in sine amplitude a script may
// drift the creature.
const envelopeScale = 2.0

// ScriptWander is an idle drift computed by a tengo script. The script sees
// the global `phase` and must set `x` and `y`. Results are clamped to twice
// the configured sine amplitude. When the script fails at run time the
// built-in sine drift takes over for good.
type ScriptWander struct {
	name     string
	compiled *tengo.Compiled
	fallback creature.Wander
	limit    cp.Vector
	failed   bool
}

// CompileWander compiles src as a wander script for a creature with the
// given follow settings.
func CompileWander(name string, src []byte, follow creature.FollowConfig) (*ScriptWander, error) {
	script := tengo.NewScript(src)
	_ = script.Add("phase", 0.0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wander %s: %w", name, err)
	}

	sw := &ScriptWander{
		name:     name,
		compiled: compiled,
		fallback: follow.Sine(),
		limit: cp.Vector{
			X: math.Abs(follow.WanderX) * envelopeScale,
			Y: math.Abs(follow.WanderY) * envelopeScale,
		},
	}
	if _, err := sw.eval(0); err != nil {
		return nil, err
	}
	for _, v := range []string{"x", "y"} {
		if !compiled.IsDefined(v) {
			return nil, fmt.Errorf("wander %s: script does not define %q", name, v)
		}
	}
	return sw, nil
}

func (s *ScriptWander) Name() string {
	return s.name
}

// Failed reports whether the script broke and the sine drift is in use.
func (s *ScriptWander) Failed() bool {
	return s.failed
}

func (s *ScriptWander) Offset(phase float64) cp.Vector {
	if !s.failed {
		v, err := s.eval(phase)
		if err == nil {
			return cp.Vector{
				X: common.Clamp(v.X, -s.limit.X, s.limit.X),
				Y: common.Clamp(v.Y, -s.limit.Y, s.limit.Y),
			}
		}
		log.Printf("%v, using built-in drift", err)
		s.failed = true
	}
	return s.fallback.Offset(phase)
}

// eval runs the script once. tengo panics on some runtime faults, integer
// division by zero among them, so those are turned into errors too.
func (s *ScriptWander) eval(phase float64) (out cp.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = cp.Vector{}, fmt.Errorf("wander %s: %v", s.name, r)
		}
	}()

	if err := s.compiled.Set("phase", phase); err != nil {
		return cp.Vector{}, fmt.Errorf("wander %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, fmt.Errorf("wander %s: %w", s.name, err)
	}
	out = cp.Vector{X: s.compiled.Get("x").Float(), Y: s.compiled.Get("y").Float()}
	if math.IsNaN(out.X) || math.IsNaN(out.Y) {
		return cp.Vector{}, fmt.Errorf("wander %s: script produced NaN", s.name)
	}
	return out, nil
}

// LoadWander loads and compiles the named wander script.
func LoadWander(name string, follow creature.FollowConfig) (*ScriptWander, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, err
	}
	return CompileWander(name, src, follow)
}
