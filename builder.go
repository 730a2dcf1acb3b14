package stween

// Builder configures the tween created by the From or FromValue call that
// returned it. Every method returns the builder, so calls chain:
//
//	s.From(&x).To(10).Time(1.5).Easing(stween.CubicOut)
//
// A builder always addresses its own record, so interleaving builders from
// separate From calls cannot cross wires. Builder methods must not be
// called while an Update on the same registry is in progress.
type Builder[T any] struct {
	registry *STween[T]
	data     *TweenData[T]
}

// ID returns the stable identifier of the tween being configured.
func (b *Builder[T]) ID() TweenID {
	return b.data.ID
}

// To sets the value the tween finishes on.
func (b *Builder[T]) To(finalVal T) *Builder[T] {
	b.data.End = finalVal
	return b
}

// Time sets the duration in seconds. A duration of zero or less makes the
// tween complete on its first Update, delivering only the boundary value.
func (b *Builder[T]) Time(sec float64) *Builder[T] {
	b.data.Duration = sec
	return b
}

// OnFinish registers a callback fired exactly once, on the Update call
// that completes the tween. The callback must not call Update or builder
// methods on the same registry.
func (b *Builder[T]) OnFinish(endCallback func()) *Builder[T] {
	b.data.OnFinish = endCallback
	return b
}

// OnStep registers a callback invoked with every computed value. This is
// the only way to observe a FromValue tween.
func (b *Builder[T]) OnStep(callback func(T)) *Builder[T] {
	b.data.OnStep = callback
	return b
}

// Chain captures a snapshot of every tween currently held by other; the
// copies activate when this tween completes. Mutating other afterwards
// does not affect the captured chain.
func (b *Builder[T]) Chain(other *STween[T]) *Builder[T] {
	b.data.Chain = other.Tweens()
	return b
}

// Reversed runs the tween from the final value back to the initial one.
// Useful for the falling half of a looped tween.
func (b *Builder[T]) Reversed(isReversed bool) *Builder[T] {
	b.data.Reversed = isReversed
	return b
}

// Easing selects the easing curve; Linear is the default.
func (b *Builder[T]) Easing(easingType Easing) *Builder[T] {
	b.data.Easing = easingType
	return b
}
