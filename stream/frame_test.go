package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestMarshalBinaryLayout(t *testing.T) {
	f := NewFrame()
	f.Fill(colorful.Color{R: 1, G: 0, B: 0})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 2+numPixels*3 {
		t.Fatalf("len = %d, want %d", len(data), 2+numPixels*3)
	}
	if got := binary.LittleEndian.Uint16(data); got != numPixels {
		t.Fatalf("pixel count header = %d, want %d", got, numPixels)
	}
	if data[2] != 255 || data[3] != 0 || data[4] != 0 {
		t.Fatalf("first pixel = %v, want 255 0 0", data[2:5])
	}
}

func TestBlendPixelIgnoresOutOfRange(t *testing.T) {
	f := NewFrame()
	white := colorful.Color{R: 1, G: 1, B: 1}

	// Must not panic as particles run off either end.
	f.blendPixel(-1, white, 1.0)
	f.blendPixel(numPixels, white, 1.0)

	f.blendPixel(3, white, 1.0)
	if !f.pixels[3].AlmostEqualRgb(white) {
		t.Fatalf("pixel 3 = %+v, want white", f.pixels[3])
	}
}

func TestInterpolateFrameEndpoints(t *testing.T) {
	a := NewFrame()
	a.Fill(colorful.Color{R: 1, G: 0, B: 0})
	b := NewFrame()
	b.Fill(colorful.Color{R: 0, G: 0, B: 1})

	atStart := a.InterpolateFrame(b, 0)
	if !atStart.pixels[0].AlmostEqualRgb(a.pixels[0]) {
		t.Fatalf("transition 0 = %+v, want first frame", atStart.pixels[0])
	}

	atEnd := a.InterpolateFrame(b, 1)
	if !atEnd.pixels[0].AlmostEqualRgb(b.pixels[0]) {
		t.Fatalf("transition 1 = %+v, want second frame", atEnd.pixels[0])
	}
}
