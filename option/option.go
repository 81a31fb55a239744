/*
Package option provides an optional value type.

An [Option] is either Some, holding a value, or Nothing. Options are created
with [Of], which decides once, at construction time, whether a raw value is
present. Only nil (pointers, interfaces, maps, slices, channels, functions)
and NaN count as absent; false, 0, "" and empty non-nil containers are Some.

Options are plain immutable values and may be shared freely between
goroutines. Combinators taking a second type parameter ([Map], [AndThen],
[MapOr], [MapOrElse], [Match], [Run]) are free functions, as Go methods cannot
introduce type parameters. None of them ever calls its function argument on
Nothing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package option

import "fmt"

// Kind is the variant tag of an Option.
type Kind uint8

const (
	KindNothing Kind = iota // no value
	KindSome                // has a value
)

func (k Kind) String() string {
	switch k {
	case KindSome:
		return "Some"
	case KindNothing:
		return "Nothing"
	}
	return "Kind(?)"
}

// Option represents an optional value. The zero value is Nothing.
type Option[T any] struct {
	value T
	kind  Kind
}

// Of lifts a raw value into an Option.
// It returns Nothing if raw is nil or NaN, and Some(raw) otherwise.
func Of[T any](raw T) Option[T] {
	if v, ok := classify(raw); ok {
		return some(v)
	}
	return Nothing[T]()
}

// Nothing constructs an empty Option.
func Nothing[T any]() Option[T] {
	return Option[T]{kind: KindNothing}
}

// some wraps v without classifying it.
func some[T any](v T) Option[T] {
	return Option[T]{value: v, kind: KindSome}
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.kind == KindSome
}

// IsNothing reports whether the option is empty.
func (o Option[T]) IsNothing() bool {
	return o.kind != KindSome
}

// Kind returns the variant tag of o.
func (o Option[T]) Kind() Kind {
	return o.kind
}

// Value returns the contained value, or T's zero value for Nothing.
// It never panics; use Get or IsSome to tell a zero value from Nothing.
func (o Option[T]) Value() T {
	return o.value
}

// Get returns the value and a boolean indicating presence.
// This mirrors the common Go "(value, ok)" pattern.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.kind == KindSome
}

// GetOrElse returns the contained value or a default.
func (o Option[T]) GetOrElse(def T) T {
	if o.kind == KindSome {
		return o.value
	}
	return def
}

// Filter returns o unchanged if it is Some and its value satisfies pred.
// Otherwise it returns Nothing. pred is not called on Nothing.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.kind == KindSome && pred(o.value) {
		return o
	}
	return Nothing[T]()
}

func (o Option[T]) String() string {
	if o.kind == KindSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "Nothing"
}

// --- Combinators -----------------------------------------------------------

// Map transforms the value if present.
// The result of fn is wrapped as Some without being classified again.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.kind == KindSome {
		return some(fn(o.value))
	}
	return Nothing[U]()
}

// Run applies fn to the value of o, if any. It is Map with the option first;
// callers inspect the outcome with Kind.
func Run[T any, U any](o Option[T], fn func(T) U) Option[U] {
	return Map(o, fn)
}

// AndThen returns fn(value) if o is Some, and Nothing otherwise.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.kind == KindSome {
		return fn(o.value)
	}
	return Nothing[U]()
}

// MapOr returns fn(value) if o is Some, and def otherwise.
func MapOr[T any, U any](o Option[T], fn func(T) U, def U) U {
	if o.kind == KindSome {
		return fn(o.value)
	}
	return def
}

// MapOrElse calls exactly one of onSome and onNothing and returns its result.
func MapOrElse[T any, U any](o Option[T], onNothing func() U, onSome func(T) U) U {
	if o.kind == KindSome {
		return onSome(o.value)
	}
	return onNothing()
}

// Match dispatches on the variant of o. Both arms are required.
func Match[T any, B any](o Option[T], onSome func(T) B, onNothing func() B) B {
	switch o.kind {
	case KindSome:
		return onSome(o.value)
	default:
		return onNothing()
	}
}
