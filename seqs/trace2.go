package seqs

import "iter"

// Pair holds two values, as yielded by HistoryTracer.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Trace2 is Trace that yields (previous state, updated state) on each step.
// The element itself is consumed by f and not yielded; see TraceInput for
// that.
func Trace2[T, S any](seq iter.Seq[T], state S, f func(S, T) S, opts ...Option[S]) iter.Seq2[S, S] {
	cfg := newConfig(opts)
	return func(yield func(S, S) bool) {
		st := cfg.clone(state)
		for x := range seq {
			prev := cfg.clone(st)
			y := f(st, x)
			st = cfg.clone(y)
			if !yield(prev, y) {
				return
			}
		}
	}
}

// HistoryTracer is the pull form of Trace2. V1 of each pair is the state
// before the step, V2 the state after it.
type HistoryTracer[T, S any] struct {
	src   Iterator[T]
	state S
	f     func(S, T) S
	clone func(S) S
}

// NewHistoryTracer wraps src so that each pull yields the state before and
// after f is applied.
func NewHistoryTracer[T, S any](src Iterator[T], state S, f func(S, T) S, opts ...Option[S]) *HistoryTracer[T, S] {
	cfg := newConfig(opts)
	return &HistoryTracer[T, S]{
		src:   src,
		state: cfg.clone(state),
		f:     f,
		clone: cfg.clone,
	}
}

func (h *HistoryTracer[T, S]) Next() (Pair[S, S], bool) {
	x, ok := h.src.Next()
	if !ok {
		return Pair[S, S]{}, false
	}
	prev := h.clone(h.state)
	y := h.f(h.state, x)
	h.state = h.clone(y)
	return Pair[S, S]{V1: prev, V2: y}, true
}

func (h *HistoryTracer[T, S]) SizeHint() SizeHint {
	return h.src.SizeHint()
}

func (h *HistoryTracer[T, S]) Stop() {
	Stop(h.src)
}

func (h *HistoryTracer[T, S]) Fork() (Iterator[Pair[S, S]], bool) {
	src, ok := Fork(h.src)
	if !ok {
		return nil, false
	}
	c := *h
	c.src = src
	c.state = h.clone(h.state)
	return &c, true
}
