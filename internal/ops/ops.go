// Package ops names the combining functions the simplescan command offers.
package ops

import (
	"errors"
	"fmt"
)

// ErrUnknownOp is returned for op names that Fold or Diff do not know.
var ErrUnknownOp = errors.New("unknown op")

// Number is the set of types the ops apply to.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// FoldNames lists the ops accepted by Fold.
func FoldNames() []string {
	return []string{"sum", "product", "min", "max"}
}

// DiffNames lists the ops accepted by Diff.
func DiffNames() []string {
	return []string{"delta", "sum", "product", "max"}
}

// Fold returns the state update function registered under name.
func Fold[T Number](name string) (func(state, x T) T, error) {
	switch name {
	case "sum":
		return func(s, x T) T { return s + x }, nil
	case "product":
		return func(s, x T) T { return s * x }, nil
	case "min":
		return func(s, x T) T { return min(s, x) }, nil
	case "max":
		return func(s, x T) T { return max(s, x) }, nil
	default:
		return nil, fmt.Errorf("%w %q for trace (known: %v)", ErrUnknownOp, name, FoldNames())
	}
}

// Diff returns the function combining an element with its predecessor.
func Diff[T Number](name string) (func(curr, prev T) T, error) {
	switch name {
	case "delta":
		return func(c, p T) T { return c - p }, nil
	case "sum":
		return func(c, p T) T { return c + p }, nil
	case "product":
		return func(c, p T) T { return c * p }, nil
	case "max":
		return func(c, p T) T { return max(c, p) }, nil
	default:
		return nil, fmt.Errorf("%w %q for diff (known: %v)", ErrUnknownOp, name, DiffNames())
	}
}
