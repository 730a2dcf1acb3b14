package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

const numPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [numPixels]colorful.Color
}

// NewFrame creates a new Frame instance.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Fill paints every pixel with the same colour.
func (f *Frame) Fill(c colorful.Color) {
	for i := 0; i < numPixels; i++ {
		f.pixels[i] = c
	}
}

// blendPixel mixes c into pixel i by gain, ignoring out-of-range indices
// so particles can run off either end of the strip.
func (f *Frame) blendPixel(i int, c colorful.Color, gain float64) {
	if i < 0 || i >= numPixels {
		return
	}
	f.pixels[i] = f.pixels[i].BlendHcl(c, gain)
}

// InterpolateFrame merges two frames at the given transition point.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame()
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian uint16
// pixel count followed by an RGB byte triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, numPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
