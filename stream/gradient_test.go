package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestGradientGetColor(t *testing.T) {
	g := GradientTable{
		{0.0, 0.0},
		{100.0, 1.0},
	}

	mid := g.GetColor(0.5, 1.0, 0.5)
	if !mid.AlmostEqualRgb(colorful.Hcl(50.0, 1.0, 0.5)) {
		t.Fatalf("midpoint = %+v, want hue 50", mid)
	}

	start := g.GetColor(0.0, 1.0, 0.5)
	if !start.AlmostEqualRgb(colorful.Hcl(0.0, 1.0, 0.5)) {
		t.Fatalf("start = %+v, want hue 0", start)
	}
}

func TestGradientPastEndUsesRequestedChannels(t *testing.T) {
	g := GradientTable{
		{10.0, 0.0},
		{100.0, 1.0},
	}

	past := g.GetColor(1.5, 0.3, 0.1)
	if !past.AlmostEqualRgb(colorful.Hcl(100.0, 0.3, 0.1)) {
		t.Fatalf("past-end = %+v, want the last keypoint at the requested saturation/luminance", past)
	}
}
