package seqs_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplescan/seqs"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"Ascending", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Stepped", 0, 10, 3, []int{0, 3, 6, 9}},
		{"Descending", 10, 0, -3, []int{10, 7, 4, 1}},
		{"Empty", 3, 3, 1, []int{}},
		{"WrongDirection", 0, 5, -1, []int{}},
		{"ZeroStep", 0, 5, 0, []int{}},
		{"StepSpansWholeRange", 0, math.MaxInt, math.MaxInt, []int{0}},
		{"UpToMaxInt", math.MaxInt - 2, math.MaxInt, 1, []int{math.MaxInt - 2, math.MaxInt - 1}},
		{"StepPastMaxInt", math.MaxInt - 1, math.MaxInt, 5, []int{math.MaxInt - 1}},
		{"DownToMinInt", math.MinInt + 2, math.MinInt, -1, []int{math.MinInt + 2, math.MinInt + 1}},
		{"MinIntStep", 0, math.MinInt, math.MinInt, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seqs.Range(tt.start, tt.end, tt.step)
			assert.Equal(t, seqs.ExactHint(len(tt.want)), r.SizeHint())
			assert.Equal(t, tt.want, seqs.Collect(r))
			assert.Equal(t, seqs.ExactHint(0), r.SizeHint())
		})
	}
}

func TestRangeBeyondMaxInt(t *testing.T) {
	for _, r := range []*seqs.RangeIterator{
		seqs.Range(-10, math.MaxInt, 1),
		seqs.Range(math.MinInt, math.MaxInt, 1),
	} {
		hint := r.SizeHint()
		assert.Equal(t, seqs.SizeHint{Lower: math.MaxInt}, hint)
		assert.Equal(t, hint, seqs.NewTracer(r, 0, add).SizeHint())
	}

	r := seqs.Range(-10, math.MaxInt, 1)
	first, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, -10, first)
}

// lyingHint reports a negative lower bound.
type lyingHint struct {
	*seqs.SliceIterator[int]
}

func (lyingHint) SizeHint() seqs.SizeHint {
	return seqs.SizeHint{Lower: -5}
}

func TestCollectNegativeHint(t *testing.T) {
	it := lyingHint{seqs.FromSlice([]int{1, 2})}
	assert.Equal(t, []int{1, 2}, seqs.Collect[int](it))
}

func TestFork(t *testing.T) {
	t.Run("Sources", func(t *testing.T) {
		for name, it := range map[string]seqs.Iterator[int]{
			"Slice": seqs.FromSlice([]int{1, 2, 3, 4}),
			"Range": seqs.Range(1, 5, 1),
		} {
			t.Run(name, func(t *testing.T) {
				_, ok := it.Next()
				require.True(t, ok)

				fork, ok := seqs.Fork(it)
				require.True(t, ok)
				rest := seqs.Collect(it)
				assert.Equal(t, rest, seqs.Collect(fork))
			})
		}
	})

	t.Run("Infinite", func(t *testing.T) {
		n := seqs.Naturals()
		n.Next()
		fork, ok := seqs.Fork[int](n)
		require.True(t, ok)
		for want := 1; want < 4; want++ {
			a, _ := n.Next()
			b, _ := fork.Next()
			assert.Equal(t, want, a)
			assert.Equal(t, want, b)
		}
	})

	t.Run("Adapters", func(t *testing.T) {
		tr := seqs.NewTracer(seqs.Range(0, sampleSize, 1), 0, add)
		h := seqs.NewHistoryTracer(seqs.Range(0, sampleSize, 1), 0, add)
		d := seqs.NewDiffer(seqs.Range(0, sampleSize, 1), 3, sub)
		for range 4 {
			tr.Next()
			h.Next()
			d.Next()
		}

		trFork, ok := seqs.Fork[int](tr)
		require.True(t, ok)
		assert.Equal(t, []int{10, 15, 21, 28, 36, 45}, seqs.Collect(trFork))
		assert.Equal(t, []int{10, 15, 21, 28, 36, 45}, seqs.Collect(tr))

		hFork, ok := seqs.Fork[seqs.Pair[int, int]](h)
		require.True(t, ok)
		assert.Equal(t, runningSumHistory[4:], seqs.Collect(hFork))
		assert.Equal(t, runningSumHistory[4:], seqs.Collect(h))

		dFork, ok := seqs.Fork[int](d)
		require.True(t, ok)
		assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, seqs.Collect(dFork))
		assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, seqs.Collect(d))
	})

	t.Run("ClonesState", func(t *testing.T) {
		appendTo := func(s []int, x int) []int { return append(s, x) }
		tr := seqs.NewTracer(seqs.Range(1, 4, 1), []int{0}, appendTo, seqs.WithClone(slices.Clone[[]int]))
		tr.Next()

		fork, ok := seqs.Fork[[]int](tr)
		require.True(t, ok)
		v, _ := fork.Next()
		v[0] = 99

		assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 2, 3}}, seqs.Collect(tr))
	})

	t.Run("SeqSourceCannotFork", func(t *testing.T) {
		src := seqs.FromSeq(slices.Values([]int{1, 2}))
		defer src.Stop()

		_, ok := seqs.Fork[int](src)
		assert.False(t, ok)
		_, ok = seqs.Fork[int](seqs.NewTracer(src, 0, add))
		assert.False(t, ok)
	})
}

func TestFromSlice(t *testing.T) {
	s := seqs.FromSlice([]string{"a", "b"})
	assert.Equal(t, seqs.ExactHint(2), s.SizeHint())

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, seqs.ExactHint(1), s.SizeHint())

	v, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = s.Next()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestNaturals(t *testing.T) {
	n := seqs.Naturals()
	assert.Equal(t, seqs.SizeHint{Lower: math.MaxInt}, n.SizeHint())

	var got []int
	for v := range seqs.Values(n) {
		if v == 4 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestFromSeq(t *testing.T) {
	s := seqs.FromSeq(slices.Values([]int{1, 2, 3}))
	defer s.Stop()

	assert.Equal(t, seqs.UnknownHint(), s.SizeHint())
	assert.Equal(t, []int{1, 2, 3}, seqs.Collect(s))

	_, ok := s.Next()
	assert.False(t, ok)
}

func TestStop(t *testing.T) {
	t.Run("NoResources", func(t *testing.T) {
		assert.NotPanics(t, func() { seqs.Stop[int](seqs.FromSlice([]int{1})) })
	})

	t.Run("ThroughAdapters", func(t *testing.T) {
		released := false
		src := func(yield func(int) bool) {
			defer func() { released = true }()
			for i := range 100 {
				if !yield(i) {
					return
				}
			}
		}

		d := seqs.NewDiffer(seqs.NewHistoryTracer(seqs.FromSeq(src), 0, add), seqs.Pair[int, int]{},
			func(c, _ seqs.Pair[int, int]) int { return c.V2 - c.V1 })
		v, ok := d.Next()
		require.True(t, ok)
		assert.Equal(t, 0, v)

		seqs.Stop[int](d)
		assert.True(t, released)
	})
}
