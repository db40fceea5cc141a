package seqs

import "iter"

// Scan folds seq with reducer and yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// Trace is a simplified Scan focused on state tracking: f receives the
// current state and the next element and returns the new state, which is both
// stored and yielded.
//
// Unlike a general scan, iteration cannot be cut short by f and the output
// is always the state itself. Every range over the result starts again from
// state.
func Trace[T, S any](seq iter.Seq[T], state S, f func(S, T) S, opts ...Option[S]) iter.Seq[S] {
	cfg := newConfig(opts)
	return func(yield func(S) bool) {
		st := cfg.clone(state)
		for x := range seq {
			y := f(st, x)
			st = cfg.clone(y)
			if !yield(y) {
				return
			}
		}
	}
}

// TraceInput is Trace that also yields the element each new state was
// computed from, as (new state, element).
func TraceInput[T, S any](seq iter.Seq[T], state S, f func(S, T) S, opts ...Option[S]) iter.Seq2[S, T] {
	cfg := newConfig(opts)
	return func(yield func(S, T) bool) {
		st := cfg.clone(state)
		for x := range seq {
			y := f(st, x)
			st = cfg.clone(y)
			if !yield(y, x) {
				return
			}
		}
	}
}

// Tracer is the pull form of Trace.
type Tracer[T, S any] struct {
	src   Iterator[T]
	state S
	f     func(S, T) S
	clone func(S) S
}

// NewTracer wraps src so that each pull yields the state updated by f.
func NewTracer[T, S any](src Iterator[T], state S, f func(S, T) S, opts ...Option[S]) *Tracer[T, S] {
	cfg := newConfig(opts)
	return &Tracer[T, S]{
		src:   src,
		state: cfg.clone(state),
		f:     f,
		clone: cfg.clone,
	}
}

// Next pulls one element and returns the updated state. The state is left
// untouched once the source is exhausted.
func (t *Tracer[T, S]) Next() (S, bool) {
	x, ok := t.src.Next()
	if !ok {
		var zero S
		return zero, false
	}
	y := t.f(t.state, x)
	t.state = t.clone(y)
	return y, true
}

func (t *Tracer[T, S]) SizeHint() SizeHint {
	return t.src.SizeHint()
}

func (t *Tracer[T, S]) Stop() {
	Stop(t.src)
}

// Fork copies t mid-iteration; the copy gets its own clone of the state.
func (t *Tracer[T, S]) Fork() (Iterator[S], bool) {
	src, ok := Fork(t.src)
	if !ok {
		return nil, false
	}
	c := *t
	c.src = src
	c.state = t.clone(t.state)
	return &c, true
}
