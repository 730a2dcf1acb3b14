package stream

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	stween "github.com/riverreal/STween"
	"github.com/riverreal/STween/util"
)

type chaseParticle struct {
	colour colorful.Color
	pos    float64
	gain   float64
	length int
	lut    []float64
	done   bool
}

// A Chaser is an Animation that fires eased particles along the strip,
// each fading in and back out as it travels.
type Chaser struct {
	gradient     GradientTable
	backColour   colorful.Color
	launchChance int32
	tweens       *stween.STween[float64]
	particles    []*chaseParticle
	memoizer     util.Memoizer
	lastMs       int64
}

// NewChaser creates an instance of a Chaser object. A particle launches
// with probability 1/launchChance per frame.
func NewChaser(gradient GradientTable, launchChance int32, backColour colorful.Color) *Chaser {
	c := new(Chaser)
	c.gradient = gradient
	c.launchChance = launchChance
	c.backColour = backColour
	c.tweens = stween.New[float64]()
	c.memoizer = util.Memoizer{}
	c.lastMs = -1

	return c
}

func (c *Chaser) Name() string {
	return "chaser"
}

// ActiveTweens reports the tweens currently driving particles.
func (c *Chaser) ActiveTweens() int {
	return c.tweens.Len()
}

// launch creates a particle and the tweens that drive it: the position
// sweeps the strip, while the gain rises and then falls through a chained
// pair of half tweens.
func (c *Chaser) launch() {
	p := new(chaseParticle)
	p.colour = c.gradient.GetColor(rand.Float64(), util.RandomiseSaturation(0.6, 1.0), 0.5)
	p.length = (rand.Intn(4) + 3) * 2
	p.lut = util.GenerateLutMemoized(p.length, c.memoizer)
	p.pos = -float64(p.length)

	travelSecs := rand.Float64()*2 + 2

	c.tweens.From(&p.pos).
		To(float64(numPixels)).
		Time(travelSecs).
		Easing(stween.QuadInOut).
		OnFinish(func() { p.done = true })

	fall := stween.New[float64]()
	fall.FromValue(1.0).
		To(0.0).
		Time(travelSecs / 2).
		Easing(stween.QuadIn).
		OnStep(func(v float64) { p.gain = v })

	c.tweens.From(&p.gain).
		To(1.0).
		Time(travelSecs / 2).
		Easing(stween.QuadOut).
		Chain(fall)

	c.particles = append(c.particles, p)
}

// CalculateFrame creates a new Frame instance.
func (c *Chaser) CalculateFrame(runtimeMs int64) *Frame {
	c.tweens.Update(deltaSeconds(c.lastMs, runtimeMs))
	c.lastMs = runtimeMs

	if rand.Int31n(c.launchChance) == 0 {
		c.launch()
	}

	f := NewFrame()
	f.Fill(c.backColour)

	live := c.particles[:0]
	for _, p := range c.particles {
		if p.done {
			continue
		}
		head := int(math.Floor(p.pos))
		for i := 0; i < p.length; i++ {
			f.blendPixel(head-i, p.colour, p.gain*p.lut[i])
		}
		live = append(live, p)
	}
	c.particles = live

	return f
}
