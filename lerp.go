package stween

import "github.com/lucasb-eyer/go-colorful"

// LerpFunc combines a start and end value by a curve factor. A factor of 0
// must return start and 1 must return end; factors outside [0,1]
// extrapolate, which the Back curves rely on.
type LerpFunc[T any] func(start, end T, t float64) T

// Number covers the built-in types New can tween without a custom LerpFunc.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberLerp interpolates any numeric type. The arithmetic is done in
// float64, so integer types truncate toward zero on conversion.
func NumberLerp[T Number](start, end T, t float64) T {
	return T(float64(start) + (float64(end)-float64(start))*t)
}

// ColorLerp blends colours in RGB space so colorful.Color can be tweened
// directly: NewWith(ColorLerp).
func ColorLerp(start, end colorful.Color, t float64) colorful.Color {
	return start.BlendRgb(end, t)
}
