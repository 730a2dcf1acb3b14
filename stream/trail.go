package stream

import (
	"math"

	stween "github.com/riverreal/STween"
)

// A Trail is an Animation that cycles a gradient along an led strip.
type Trail struct {
	gradient    GradientTable
	trailLength int
	current     float64
	speed       float64
	tweens      *stween.STween[float64]
	lastMs      int64
}

// NewTrail creates an instance of a Trail object. The scroll speed ramps
// up from standstill to cruiseSpeed over the first few seconds.
func NewTrail(gradient GradientTable, trailLength int, cruiseSpeed float64) *Trail {
	t := new(Trail)
	t.gradient = gradient
	t.trailLength = trailLength
	t.current = 0
	t.tweens = stween.New[float64]()
	t.tweens.From(&t.speed).To(cruiseSpeed).Time(3.0).Easing(stween.CubicOut)
	t.lastMs = -1

	return t
}

func (t *Trail) Name() string {
	return "trail"
}

// ActiveTweens reports the tweens currently driving the trail.
func (t *Trail) ActiveTweens() int {
	return t.tweens.Len()
}

// CalculateFrame creates a new Frame instance.
func (t *Trail) CalculateFrame(runtimeMs int64) *Frame {
	t.tweens.Update(deltaSeconds(t.lastMs, runtimeMs))
	t.lastMs = runtimeMs

	f := NewFrame()
	saturation := 1.0
	luminance := 0.05
	for i := 0; i < numPixels; i++ {
		pos := math.Mod(float64(i+numPixels)-t.current, float64(t.trailLength)) / float64(t.trailLength)
		f.pixels[i] = t.gradient.GetColor(pos, saturation, luminance)
	}

	t.current = math.Mod(t.current+t.speed, float64(t.trailLength))

	return f
}
