package stream

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	stween "github.com/riverreal/STween"
)

type stripeBand struct {
	colour colorful.Color
	length int32
	gain   float64
}

type stripeGenerator struct {
	palette   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
}

func newStripeGenerator(palette []colorful.Color) *stripeGenerator {
	g := new(stripeGenerator)
	g.palette = palette
	g.stripeMin = 150
	g.stripeMax = 400
	return g
}

func (g *stripeGenerator) create() *stripeBand {
	b := new(stripeBand)
	if g.palette == nil {
		b.colour = colorful.Hsl(rand.Float64()*360.0, 1.0, 0.2)
	} else {
		// Choose a new colour that's different from the previous colour
		for {
			newCurrent := rand.Intn(len(g.palette))
			if newCurrent != g.current {
				g.current = newCurrent
				break
			}
		}
		b.colour = g.palette[g.current]
	}
	b.length = rand.Int31n(g.stripeMax-g.stripeMin) + g.stripeMin
	return b
}

// A Stripes is an Animation that scrolls random colour bands along the
// strip, fading each new band in as it enters.
type Stripes struct {
	generator *stripeGenerator
	bands     []*stripeBand
	current   float64 // scroll offset into the first band, in pixels
	speed     float64 // pixels per second
	tweens    *stween.STween[float64]
	lastMs    int64
}

// NewStripes creates an instance of a Stripes object. Pass a nil palette
// for random hues. The scroll speed ramps up to cruiseSpeed.
func NewStripes(palette []colorful.Color, cruiseSpeed float64) *Stripes {
	s := new(Stripes)
	s.generator = newStripeGenerator(palette)
	s.tweens = stween.New[float64]()
	s.tweens.From(&s.speed).To(cruiseSpeed).Time(4.0).Easing(stween.QuadOut)
	s.lastMs = -1

	return s
}

func (s *Stripes) Name() string {
	return "stripes"
}

// ActiveTweens reports the tweens currently driving the stripes.
func (s *Stripes) ActiveTweens() int {
	return s.tweens.Len()
}

// addBand appends a generated band and tweens its gain in from black.
func (s *Stripes) addBand() {
	b := s.generator.create()
	s.bands = append(s.bands, b)
	s.tweens.From(&b.gain).To(1.0).Time(1.0).Easing(stween.CubicOut)
}

// CalculateFrame creates a new Frame instance.
func (s *Stripes) CalculateFrame(runtimeMs int64) *Frame {
	dt := deltaSeconds(s.lastMs, runtimeMs)
	s.tweens.Update(dt)
	s.lastMs = runtimeMs

	// Cull bands that have scrolled past the start of the strip.
	for len(s.bands) > 0 && s.current >= float64(s.bands[0].length) {
		s.current -= float64(s.bands[0].length)
		s.bands = s.bands[1:]
	}

	f := NewFrame()
	dark := colorful.Color{}
	start := -s.current
	band := 0
	for start < float64(numPixels) {
		if band >= len(s.bands) {
			s.addBand()
		}
		b := s.bands[band]
		end := start + float64(b.length)
		for i := int(math.Max(0, math.Ceil(start))); i < numPixels && float64(i) < end; i++ {
			f.pixels[i] = dark.BlendHcl(b.colour, b.gain)
		}
		start = end
		band++
	}

	s.current += s.speed * dt

	return f
}
