// Package stween is a per-frame value tweening engine: a Go rendition of
// the STween header library. A registry owns a set of tweens, each driving
// one value from a start to an end over a duration through an easing
// curve, writing results out by pointer or callback and optionally
// chaining follow-up tweens on completion.
//
// The caller owns the clock: call Update once per frame with the elapsed
// seconds since the previous call. Registries are not safe for concurrent
// use; the intended caller is a single frame loop.
package stween

// STween owns a set of tweens and advances them frame by frame.
type STween[T any] struct {
	lerp   LerpFunc[T]
	tweens []*TweenData[T]
	nextID TweenID
}

// New creates a registry for any built-in numeric type.
func New[T Number]() *STween[T] {
	return NewWith(NumberLerp[T])
}

// NewWith creates a registry for an arbitrary value type. The lerp
// function supplies the affine arithmetic the easing curves need; see
// ColorLerp for a non-scalar example.
func NewWith[T any](lerp LerpFunc[T]) *STween[T] {
	if lerp == nil {
		panic("stween: NewWith called with a nil lerp function")
	}
	s := new(STween[T])
	s.lerp = lerp
	return s
}

// From starts a tween that writes each computed value straight into the
// variable initVal points to. The current value of the pointee is copied
// as the start value; the pointee must stay valid for the life of the
// tween, and the registry never frees or reads it again.
func (s *STween[T]) From(initVal *T) *Builder[T] {
	td := s.appendTween()
	td.Target = initVal
	td.Start = *initVal
	return &Builder[T]{registry: s, data: td}
}

// FromValue starts a tween from a plain value. There is no target to write
// to, so pair it with OnStep to observe the output.
func (s *STween[T]) FromValue(initVal T) *Builder[T] {
	td := s.appendTween()
	td.Start = initVal
	return &Builder[T]{registry: s, data: td}
}

func (s *STween[T]) appendTween() *TweenData[T] {
	td := new(TweenData[T])
	td.ID = s.nextID
	s.nextID++
	td.Active = true
	td.Easing = Linear
	s.tweens = append(s.tweens, td)
	return td
}

// Update advances every active tween by deltaTime seconds. For each one it
// computes the eased value at the new elapsed position and delivers it;
// tweens whose elapsed time has reached their duration are snapped to
// their exact boundary value, deactivated, and their OnFinish fired. The
// pass then removes finished tweens by swap-with-last compaction and
// activates any chained follow-ups, so mutation never disturbs records
// still being evaluated.
//
// Update must not be re-entered from OnStep or OnFinish, and builder
// methods must not run concurrently with it.
func (s *STween[T]) Update(deltaTime float64) {
	var spawned []TweenData[T]

	evaluated := len(s.tweens)
	for i := 0; i < evaluated; i++ {
		td := s.tweens[i]
		if !td.Active {
			continue
		}

		td.Elapsed += deltaTime

		if td.Duration > 0 {
			// Intentionally unclamped: a delta larger than the remaining
			// duration extrapolates past the end for this evaluation, and
			// the boundary snap below corrects the final output.
			position := td.Elapsed / td.Duration
			start, end := td.Start, td.End
			if td.Reversed {
				start, end = end, start
			}
			td.write(s.lerp(start, end, td.Easing.factor(position)))
		}

		if td.Elapsed >= td.Duration {
			td.write(td.boundary())
			td.Active = false
			if td.OnFinish != nil {
				td.OnFinish()
			}
			for j := range td.Chain {
				spawned = append(spawned, td.Chain[j].clone())
			}
		}
	}

	for i := len(s.tweens) - 1; i >= 0; i-- {
		if s.tweens[i].Active {
			continue
		}
		last := len(s.tweens) - 1
		s.tweens[i] = s.tweens[last]
		s.tweens[last] = nil
		s.tweens = s.tweens[:last]
	}

	for i := range spawned {
		s.Add(spawned[i])
	}
}

// Tweens returns deep copies of every record currently held.
// Normally used with AddAll to move tweens between registries:
//
//	a.AddAll(b.Tweens())
func (s *STween[T]) Tweens() []TweenData[T] {
	out := make([]TweenData[T], len(s.tweens))
	for i, td := range s.tweens {
		out[i] = td.clone()
	}
	return out
}

// Add appends a copy of the record and assigns it the next sequential ID,
// which is returned.
func (s *STween[T]) Add(td TweenData[T]) TweenID {
	cp := td.clone()
	cp.ID = s.nextID
	s.nextID++
	s.tweens = append(s.tweens, &cp)
	return cp.ID
}

// AddAll appends a copy of every record, in order.
func (s *STween[T]) AddAll(tweens []TweenData[T]) {
	for i := range tweens {
		s.Add(tweens[i])
	}
}

// Reset drops every tween. ID sequencing is not rewound, so identifiers
// issued before the reset are never reused.
func (s *STween[T]) Reset() {
	s.tweens = nil
}

// Len reports how many tweens the registry currently holds.
func (s *STween[T]) Len() int {
	return len(s.tweens)
}
