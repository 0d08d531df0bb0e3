// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spaces

// Optional holds a value that may be absent. In a traversal an absent
// element is one a view filtered out: it is skipped, never reported.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// Value returns the held value. It panics if o is absent.
func (o Optional[T]) Value() T {
	if !o.ok {
		panic("spaces: Value of absent Optional")
	}
	return o.value
}

// Or returns the held value, or fallback if o is absent.
func (o Optional[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Invoke calls f with the value of t and wraps the result. If t is absent f
// is not called and the result is absent.
//
// Plain values are lifted with Some:
//
//	spaces.Invoke(f, spaces.Some(x))
func Invoke[T, R any](f func(T) R, t Optional[T]) Optional[R] {
	if !t.ok {
		return Optional[R]{}
	}
	return Optional[R]{value: f(t.value), ok: true}
}

// InvokeFlat is Invoke for functions that already return an Optional. The
// result is not wrapped a second time.
func InvokeFlat[T, R any](f func(T) Optional[R], t Optional[T]) Optional[R] {
	if !t.ok {
		return Optional[R]{}
	}
	return f(t.value)
}

// InvokeVoid calls f with the value of t if it is present. Since f produces
// nothing, the result is always absent.
func InvokeVoid[T any](f func(T), t Optional[T]) Optional[struct{}] {
	if t.ok {
		f(t.value)
	}
	return Optional[struct{}]{}
}
