package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPulseBreathesAndRearms(t *testing.T) {
	colour, _ := colorful.Hex("#4060c0")
	p := NewPulse(colour, 2.0) // 1s rise, 1s fall

	p.CalculateFrame(0)
	if p.ActiveTweens() != 1 {
		t.Fatalf("ActiveTweens after first frame = %d, want 1", p.ActiveTweens())
	}

	p.CalculateFrame(1000)
	if p.level != 1.0 {
		t.Fatalf("level after the rising half = %v, want exactly 1.0", p.level)
	}
	if p.ActiveTweens() != 0 {
		t.Fatalf("rise should have completed and been collected")
	}

	// The next frame arms the reversed half, which runs back to exactly 0.
	p.CalculateFrame(2000)
	if p.level != 0.0 {
		t.Fatalf("level after the falling half = %v, want exactly 0.0", p.level)
	}
}

func TestChaserParticleLifecycle(t *testing.T) {
	back, _ := colorful.Hex("#000005")
	c := NewChaser(rainbow(), 1<<30, back) // launch chance too small to fire on its own

	c.launch()
	if len(c.particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(c.particles))
	}
	if c.ActiveTweens() != 2 {
		t.Fatalf("ActiveTweens after launch = %d, want position + gain rise", c.ActiveTweens())
	}

	c.CalculateFrame(0)
	// travelSecs is at most 4s, so 5s finishes the position tween and the
	// gain rise; the chained gain fall activates and needs one more pass.
	c.CalculateFrame(5000)
	if len(c.particles) != 0 {
		t.Fatalf("finished particle was not culled")
	}

	c.CalculateFrame(10000)
	if c.ActiveTweens() != 0 {
		t.Fatalf("ActiveTweens after drain = %d, want 0", c.ActiveTweens())
	}
}

func TestTrailSpeedRampsToCruise(t *testing.T) {
	tr := NewTrail(rainbow(), 180, 2.0)
	if tr.speed != 0 {
		t.Fatalf("initial speed = %v, want 0", tr.speed)
	}

	tr.CalculateFrame(0)
	tr.CalculateFrame(1000)
	if tr.speed <= 0 || tr.speed >= 2.0 {
		t.Fatalf("speed mid-ramp = %v, want between 0 and 2", tr.speed)
	}

	tr.CalculateFrame(3000)
	if tr.speed != 2.0 {
		t.Fatalf("speed after ramp = %v, want exactly 2.0", tr.speed)
	}
	if tr.ActiveTweens() != 0 {
		t.Fatalf("ramp tween should have been collected")
	}
}

func TestStripesScrollAndFadeIn(t *testing.T) {
	s := NewStripes(nil, 120.0)

	s.CalculateFrame(0)
	if len(s.bands) == 0 {
		t.Fatalf("first frame should have generated bands to cover the strip")
	}
	// Speed ramp plus one fade-in per band.
	if s.ActiveTweens() < len(s.bands) {
		t.Fatalf("ActiveTweens = %d with %d bands", s.ActiveTweens(), len(s.bands))
	}

	// Small steps, so the scroll offset grows without wrapping a band.
	s.CalculateFrame(100)
	before := s.current
	s.CalculateFrame(200)
	if s.current <= before {
		t.Fatalf("stripes are not scrolling: %v -> %v", before, s.current)
	}
}
