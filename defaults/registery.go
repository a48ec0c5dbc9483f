package defaults

import (
	"reflect"
	"strconv"
)

// Registry holds named default builders for stub harnesses that resolve
// defaults by key rather than by composing builders inline.
//
// It is intentionally:
// - build-time only: populate it in test setup, read it from stubs
// - side effect free on the read path
// - loose: values are stored as any so builders of any element type fit
//
// Expected usage:
//
//	reg := defaults.NewRegistry().
//		Provide("user.age", defaults.Int()).
//		Provide("user.name", defaults.String())
//
//	age, err := defaults.ResolveAs[int](reg, "user.age")
//
// Typed retrieval is available via ResolveAs; untyped via Get / MustGet.
type Registry struct {
	items map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]any{}}
}

// Provide stores a builder under a key and returns the registry for chaining.
//
// Providing the same key twice overwrites the earlier builder.
func (r *Registry) Provide(key string, builder any) *Registry {
	r.items[key] = builder
	return r
}

// Len returns the number of stored builders.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Get returns the raw stored builder without type assertions.
func (r *Registry) Get(key string) (any, bool) {
	if r == nil || r.items == nil {
		return nil, false
	}
	v, ok := r.items[key]
	return v, ok
}

// MustGet returns the stored builder or panics.
//
// Useful in examples/tests where a missing key should fail fast.
func (r *Registry) MustGet(key string) any {
	v, ok := r.Get(key)
	if !ok {
		panic(MissingDefaultError{Key: key})
	}
	return v
}

// MissingDefaultError is returned when a key is not present in a Registry.
//
// It is used by ResolveAs to distinguish "missing" from "wrong type".
type MissingDefaultError struct{ Key string }

// Error implements the error interface.
func (e MissingDefaultError) Error() string {
	// Example: defaults: no default registered for "user.age"
	return "defaults: no default registered for " + strconv.Quote(e.Key)
}

// WrongTypeDefaultError is returned when a key is present but the stored
// builder is not a Builder[T] for the requested T.
type WrongTypeDefaultError struct {
	// Key is the registry key requested.
	Key string

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDefaultError) Error() string {
	// Example: defaults: default "user.age" has wrong type (defaults.Builder[string])
	return "defaults: default " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}

// ResolveAs returns the builder stored under key, typed as Builder[T].
//
// It returns:
//   - MissingDefaultError if the key is not present
//   - WrongTypeDefaultError if the key exists but is not a Builder[T]
//
// It avoids fmt.Errorf so failure paths can be used for control flow without
// paying formatting costs per call.
func ResolveAs[T any](r *Registry, key string) (Builder[T], error) {
	raw, ok := r.Get(key)
	if !ok || raw == nil {
		return Builder[T]{}, MissingDefaultError{Key: key}
	}
	b, ok := raw.(Builder[T])
	if !ok {
		return Builder[T]{}, WrongTypeDefaultError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return b, nil
}
