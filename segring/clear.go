// File: segring/clear.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Built-in clear strategies. The ring caches item values in their
// slots; a clear handler decides what happens to a value when its slot
// is evicted or popped, before the slot is reused.

package segring

import "github.com/momentics/largering/api"

// Ensure compile-time interface compliance.
var (
	_ api.ClearHandler[int] = NoopClearHandler[int]{}
	_ api.ClearHandler[int] = AssignDefaultClearHandler[int]{}
	_ api.ClearHandler[int] = ClearFunc[int](nil)
)

// NoopClearHandler leaves vacated slot values untouched (default).
type NoopClearHandler[T any] struct{}

func (NoopClearHandler[T]) Clear(*T) {}

// AssignDefaultClearHandler replaces the vacated value with the zero
// value, releasing whatever it referenced.
type AssignDefaultClearHandler[T any] struct{}

func (AssignDefaultClearHandler[T]) Clear(item *T) {
	var zero T
	*item = zero
}

// ClearableClearHandler invokes the value's own Clear method. PT is the
// pointer type of T and must implement api.Clearable.
type ClearableClearHandler[T any, PT interface {
	*T
	api.Clearable
}] struct{}

func (ClearableClearHandler[T, PT]) Clear(item *T) {
	PT(item).Clear()
}

// ClearFunc adapts a plain function to api.ClearHandler.
type ClearFunc[T any] func(*T)

func (f ClearFunc[T]) Clear(item *T) {
	if f != nil {
		f(item)
	}
}
