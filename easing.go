package stween

import (
	"strings"

	"github.com/fogleman/ease"
)

// Easing selects one of the built-in easing curves.
// The set is closed; custom easing functions are not supported, and any
// value outside the set behaves as Linear.
type Easing int

const (
	Linear Easing = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuintIn
	QuintOut
	QuintInOut
	BackIn
	BackOut
	BackInOut
)

var easingNames = map[Easing]string{
	Linear:     "linear",
	QuadIn:     "quadIn",
	QuadOut:    "quadOut",
	QuadInOut:  "quadInOut",
	CubicIn:    "cubicIn",
	CubicOut:   "cubicOut",
	CubicInOut: "cubicInOut",
	QuintIn:    "quintIn",
	QuintOut:   "quintOut",
	QuintInOut: "quintInOut",
	BackIn:     "backIn",
	BackOut:    "backOut",
	BackInOut:  "backInOut",
}

// String returns the name used in playlists, logs and status output.
func (e Easing) String() string {
	if name, ok := easingNames[e]; ok {
		return name
	}
	return "linear"
}

// ParseEasing resolves a curve by name, ignoring case.
// Unknown names fall back to Linear, mirroring the fallback in factor.
func ParseEasing(name string) Easing {
	for e, n := range easingNames {
		if strings.EqualFold(n, name) {
			return e
		}
	}
	return Linear
}

// factor maps a normalised time position onto the curve.
// The position is not clamped to [0,1]; an oversized delta extrapolates
// past the endpoints until the completion snap corrects it, and the Back
// curves overshoot even inside the interval.
func (e Easing) factor(position float64) float64 {
	switch e {
	case Linear:
		return ease.Linear(position)
	case QuadIn:
		return ease.InQuad(position)
	case QuadOut:
		return ease.OutQuad(position)
	case QuadInOut:
		return ease.InOutQuad(position)
	case CubicIn:
		return ease.InCubic(position)
	case CubicOut:
		return ease.OutCubic(position)
	case CubicInOut:
		return ease.InOutCubic(position)
	case QuintIn:
		return ease.InQuint(position)
	case QuintOut:
		return ease.OutQuint(position)
	case QuintInOut:
		return ease.InOutQuint(position)
	case BackIn:
		return ease.InBack(position)
	case BackOut:
		return ease.OutBack(position)
	case BackInOut:
		return ease.InOutBack(position)
	default:
		return ease.Linear(position)
	}
}
