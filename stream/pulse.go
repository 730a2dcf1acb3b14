package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	stween "github.com/riverreal/STween"
)

// A Pulse is an Animation that breathes a single colour in and out.
type Pulse struct {
	colour   colorful.Color
	halfSecs float64
	level    float64
	falling  bool
	tweens   *stween.STween[float64]
	lastMs   int64
}

// NewPulse creates an instance of a Pulse object. periodSecs is the length
// of one full breath.
func NewPulse(colour colorful.Color, periodSecs float64) *Pulse {
	p := new(Pulse)
	p.colour = colour
	p.halfSecs = periodSecs / 2
	if p.halfSecs <= 0 {
		p.halfSecs = 1
	}
	p.level = 0
	p.falling = false
	p.tweens = stween.New[float64]()
	p.lastMs = -1

	return p
}

func (p *Pulse) Name() string {
	return "pulse"
}

// ActiveTweens reports the tweens currently driving the pulse.
func (p *Pulse) ActiveTweens() int {
	return p.tweens.Len()
}

// arm queues the next half breath. Both halves tween the same 0..1 span;
// the falling half runs it reversed, so the level lands back on exactly 0.
func (p *Pulse) arm() {
	p.tweens.FromValue(0.0).
		To(1.0).
		Time(p.halfSecs).
		Easing(stween.QuadInOut).
		Reversed(p.falling).
		OnStep(func(v float64) { p.level = v })
	p.falling = !p.falling
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(runtimeMs int64) *Frame {
	if p.tweens.Len() == 0 {
		p.arm()
	}
	p.tweens.Update(deltaSeconds(p.lastMs, runtimeMs))
	p.lastMs = runtimeMs

	f := NewFrame()
	h, c, l := p.colour.Hcl()
	dim := l * 0.2
	f.Fill(colorful.Hcl(h, c, dim+(l-dim)*p.level))

	return f
}
