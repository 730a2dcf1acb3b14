package stream

// An Animation implements a way to render a specific animation.
type Animation interface {
	// Name identifies the animation in playlists and status output.
	Name() string
	// CalculateFrame renders the frame for the given stream runtime.
	CalculateFrame(runtimeMs int64) *Frame
}

// tweenCounter is implemented by animations that drive values through a
// tween registry, so the status endpoint can report how many are in flight.
type tweenCounter interface {
	ActiveTweens() int
}

// deltaSeconds converts consecutive runtime stamps into the seconds delta
// the tween registries are advanced by. A negative lastMs marks the first
// frame, which gets a zero delta.
func deltaSeconds(lastMs, nowMs int64) float64 {
	if lastMs < 0 || nowMs < lastMs {
		return 0
	}
	return float64(nowMs-lastMs) / 1000.0
}
