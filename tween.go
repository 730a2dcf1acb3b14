package stween

// TweenID identifies a tween for the whole life of its registry. IDs
// increase monotonically and are never reused, so a caller can hold one
// across Update calls without it silently naming a different tween.
type TweenID uint64

// TweenData stores the state of a single tween.
// Mostly used internally; records can also be built by hand and handed to
// Add, or moved between registries with Tweens and AddAll.
type TweenData[T any] struct {
	ID       TweenID
	Active   bool
	Target   *T // nil for by-value tweens; the storage stays caller-owned
	Start    T
	End      T
	Duration float64 // seconds
	Elapsed  float64 // seconds
	Reversed bool
	Easing   Easing
	OnStep   func(T)
	OnFinish func()
	Chain    []TweenData[T]
}

// write delivers a computed value: through the target pointer when the
// tween was created with From, and to OnStep in either mode.
func (td *TweenData[T]) write(value T) {
	if td.Target != nil {
		*td.Target = value
	}
	if td.OnStep != nil {
		td.OnStep(value)
	}
}

// boundary returns the exact value the tween must land on.
func (td *TweenData[T]) boundary() T {
	if td.Reversed {
		return td.Start
	}
	return td.End
}

// clone deep-copies the record, including nested chain snapshots, so the
// copy shares no slice storage with the original.
func (td TweenData[T]) clone() TweenData[T] {
	cp := td
	cp.Chain = cloneChain(td.Chain)
	return cp
}

func cloneChain[T any](chain []TweenData[T]) []TweenData[T] {
	if chain == nil {
		return nil
	}
	out := make([]TweenData[T], len(chain))
	for i := range chain {
		out[i] = chain[i].clone()
	}
	return out
}
