package seqs

import (
	"iter"
	"math"
)

// Iterator is a pull-based sequence: each call to Next produces one element,
// or reports exhaustion by returning false.
type Iterator[T any] interface {
	Next() (T, bool)
	SizeHint() SizeHint
}

// SizeHint bounds the number of elements an Iterator has left.
// Upper is only meaningful when Bounded is true.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// ExactHint reports exactly n remaining elements.
func ExactHint(n int) SizeHint {
	return SizeHint{Lower: n, Upper: n, Bounded: true}
}

// UnknownHint reports nothing about the remaining length.
func UnknownHint() SizeHint {
	return SizeHint{}
}

type stopper interface {
	Stop()
}

// Stop releases it if its source holds resources (see FromSeq).
// It is a no-op for iterators that hold none.
func Stop[T any](it Iterator[T]) {
	if s, ok := it.(stopper); ok {
		s.Stop()
	}
}

type forker[T any] interface {
	Fork() (Iterator[T], bool)
}

// Fork returns an independent copy of it that resumes from the same position
// with the same carried state, or false when it (or a source below it) cannot
// be copied, as with FromSeq.
func Fork[T any](it Iterator[T]) (Iterator[T], bool) {
	if f, ok := it.(forker[T]); ok {
		return f.Fork()
	}
	return nil, false
}

// SliceIterator yields the elements of a slice in order.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice returns an Iterator over items with an exact size hint.
func FromSlice[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

func (s *SliceIterator[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

func (s *SliceIterator[T]) SizeHint() SizeHint {
	return ExactHint(len(s.items) - s.pos)
}

// Fork returns an independent copy positioned at the same element. The
// underlying slice is shared, not copied.
func (s *SliceIterator[T]) Fork() (Iterator[T], bool) {
	c := *s
	return &c, true
}

// RangeIterator yields start, start+step, ... up to but excluding end.
type RangeIterator struct {
	next, step int
	left       uint
}

// Range returns the half-open integer range [start, end) walked by step.
// A zero step yields nothing; a negative step counts down.
func Range(start, end, step int) *RangeIterator {
	r := &RangeIterator{next: start, step: step}
	switch {
	case step > 0 && start < end:
		r.left = (uint(end)-uint(start)-1)/uint(step) + 1
	case step < 0 && start > end:
		r.left = (uint(start)-uint(end)-1)/uint(-step) + 1
	}
	return r
}

func (r *RangeIterator) Next() (int, bool) {
	if r.left == 0 {
		return 0, false
	}
	v := r.next
	r.left--
	// only step when another value is in range, so next never overflows
	if r.left > 0 {
		r.next += r.step
	}
	return v, true
}

// SizeHint is exact unless more than math.MaxInt values remain.
func (r *RangeIterator) SizeHint() SizeHint {
	if r.left > math.MaxInt {
		return SizeHint{Lower: math.MaxInt}
	}
	return ExactHint(int(r.left))
}

// Fork returns an independent copy positioned at the same element.
func (r *RangeIterator) Fork() (Iterator[int], bool) {
	c := *r
	return &c, true
}

// NaturalsIterator counts up from zero without end.
type NaturalsIterator struct {
	next int
}

// Naturals returns the infinite sequence 0, 1, 2, ...
func Naturals() *NaturalsIterator {
	return &NaturalsIterator{}
}

func (n *NaturalsIterator) Next() (int, bool) {
	v := n.next
	n.next++
	return v, true
}

func (n *NaturalsIterator) SizeHint() SizeHint {
	return SizeHint{Lower: math.MaxInt}
}

func (n *NaturalsIterator) Fork() (Iterator[int], bool) {
	c := *n
	return &c, true
}

// SeqIterator adapts a push-style iter.Seq into an Iterator.
// Call Stop when done unless the sequence was drained.
type SeqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq pulls from seq on demand. Its size hint is unknown.
func FromSeq[T any](seq iter.Seq[T]) *SeqIterator[T] {
	next, stop := iter.Pull(seq)
	return &SeqIterator[T]{next: next, stop: stop}
}

func (s *SeqIterator[T]) Next() (T, bool) {
	return s.next()
}

func (s *SeqIterator[T]) SizeHint() SizeHint {
	return UnknownHint()
}

func (s *SeqIterator[T]) Stop() {
	s.stop()
}

// Values turns it back into an iter.Seq. The sequence drains it, so it can
// be ranged over only once in a meaningful way.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Pairs is Values for iterators of Pair, unpacked into an iter.Seq2.
func Pairs[A, B any](it Iterator[Pair[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p.V1, p.V2) {
				return
			}
		}
	}
}

// Collect drains it into a slice sized by its lower bound.
func Collect[T any](it Iterator[T]) []T {
	n := it.SizeHint().Lower
	if n < 0 || n == math.MaxInt {
		n = 0
	}
	out := make([]T, 0, n)
	for v := range Values(it) {
		out = append(out, v)
	}
	return out
}
