package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// Memoizer caches gain LUTs by length so particle churn doesn't keep
// regenerating them.
type Memoizer map[int][]float64

func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric ease-in-out gain ramp: near zero at both
// ends, peaking in the middle. Use an even length for a full-height peak.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// GenerateLutMemoized returns the cached LUT for length, generating and
// storing it on first use.
func GenerateLutMemoized(length int, m Memoizer) []float64 {
	if lut, ok := m[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	m[length] = lut
	return lut
}
