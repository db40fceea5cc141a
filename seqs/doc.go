/*
Package seqs provides simplified scan adapters for Go 1.23+ iterators.

Each adapter consumes a sequence and, on every step, combines the next element
with a carried value to produce one output element:

  - [Trace] carries a state and yields the updated state.
  - [Trace2] carries a state and yields the (previous, updated) state pair.
  - [Diff] carries the previous element and yields f(current, previous).

They are not as flexible as a general scan (the combining function cannot stop
iteration and has no error channel) but make common running folds shorter:

	sums := seqs.Trace(slices.Values(xs), 0, func(s, x int) int { return s + x })
	deltas := seqs.Diff(slices.Values(xs), 0, func(c, p int) int { return c - p })

# Pull form

The same adapters exist over the pull-based [Iterator] interface as [Tracer],
[HistoryTracer] and [Differ]. They forward the [SizeHint] of their source,
since each pull produces exactly one output. Sources that hold resources, such
as [FromSeq], are released with [Stop], which adapters forward to their source.

# Reference types

Carried values are duplicated by assignment. For slices, maps or pointers pass
[WithClone] so that yielded values and the carried value do not alias.
*/
package seqs
