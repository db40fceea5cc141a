package seqs

import "iter"

// Diff yields f(current, previous) for each element of seq, where previous is
// the element before current. seed stands in for the previous element on the
// first step only and is never yielded itself.
func Diff[T, R any](seq iter.Seq[T], seed T, f func(curr, prev T) R, opts ...Option[T]) iter.Seq[R] {
	cfg := newConfig(opts)
	return func(yield func(R) bool) {
		prev := cfg.clone(seed)
		for curr := range seq {
			p := prev
			prev = cfg.clone(curr)
			if !yield(f(curr, p)) {
				return
			}
		}
	}
}

// Differ is the pull form of Diff.
type Differ[T, R any] struct {
	src   Iterator[T]
	prev  T
	f     func(curr, prev T) R
	clone func(T) T
}

// NewDiffer wraps src so that each pull yields f(current, previous), with seed
// as the previous element of the first pull.
func NewDiffer[T, R any](src Iterator[T], seed T, f func(curr, prev T) R, opts ...Option[T]) *Differ[T, R] {
	cfg := newConfig(opts)
	return &Differ[T, R]{
		src:   src,
		prev:  cfg.clone(seed),
		f:     f,
		clone: cfg.clone,
	}
}

func (d *Differ[T, R]) Next() (R, bool) {
	curr, ok := d.src.Next()
	if !ok {
		var zero R
		return zero, false
	}
	prev := d.prev
	d.prev = d.clone(curr)
	return d.f(curr, prev), true
}

func (d *Differ[T, R]) SizeHint() SizeHint {
	return d.src.SizeHint()
}

func (d *Differ[T, R]) Stop() {
	Stop(d.src)
}

func (d *Differ[T, R]) Fork() (Iterator[R], bool) {
	src, ok := Fork(d.src)
	if !ok {
		return nil, false
	}
	c := *d
	c.src = src
	c.prev = d.clone(d.prev)
	return &c, true
}
