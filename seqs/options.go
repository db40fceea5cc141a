package seqs

// Option configures how an adapter carries its state or seed.
type Option[S any] func(*config[S])

type config[S any] struct {
	clone func(S) S
}

// WithClone sets the function used to duplicate carried values.
// Plain assignment is used by default, which is enough for value types; pass
// a deep copy for slices, maps or pointers that the combining function or
// the consumer may mutate.
func WithClone[S any](clone func(S) S) Option[S] {
	if clone == nil {
		panic("seqs.WithClone: clone cannot be nil")
	}
	return func(cfg *config[S]) {
		cfg.clone = clone
	}
}

func newConfig[S any](opts []Option[S]) config[S] {
	cfg := config[S]{
		clone: func(s S) S { return s },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
