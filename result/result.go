/*
Package result provides a result type for fallible computations.

A [Result] is either Ok, holding a success value, or Error, holding a
descriptive error payload. Results are always constructed explicitly with
[OK] or [Error]; there is no implicit lifting.

The error payload is open: any type with a Kind method satisfies
[ErrorResult]. Clients branch on the kind inside the error arm of [Match].

All accessors are total except [Result.GetOrPanic], which is the single
escape hatch for call sites that consider a failure unrecoverable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.result'.
func tracer() tracing.Trace {
	return tracing.Select("fp.result")
}

// Result is either a success value of type A or an error payload of type E.
type Result[A any, E ErrorResult] struct {
	value A
	err   E
	ok    bool
}

// OK constructs a successful Result.
// The error type comes first, so that callers may write OK[MyError](42).
func OK[E ErrorResult, A any](v A) Result[A, E] {
	return Result[A, E]{value: v, ok: true}
}

// Error constructs a failed Result carrying a descriptive error.
func Error[A any, E ErrorResult](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

// IsOk reports whether r holds a success value.
func (r Result[A, E]) IsOk() bool {
	return r.ok
}

// IsError reports whether r holds an error payload.
func (r Result[A, E]) IsError() bool {
	return !r.ok
}

// Value returns the success value, or A's zero value for an Error.
func (r Result[A, E]) Value() A {
	return r.value
}

// Err returns the error payload, or E's zero value for an Ok.
func (r Result[A, E]) Err() E {
	return r.err
}

// Payload returns whichever value r holds: the success value if Ok, the
// error payload if Error. Callers have to check the variant first.
func (r Result[A, E]) Payload() any {
	if r.ok {
		return r.value
	}
	return r.err
}

// GetOrElse returns the success value or a default.
func (r Result[A, E]) GetOrElse(def A) A {
	if r.ok {
		return r.value
	}
	return def
}

// GetOrError returns the success value. For an Error it returns an
// *Unrecoverable carrying msg, or a generated message if msg is empty.
func (r Result[A, E]) GetOrError(msg string) (A, error) {
	if r.ok {
		return r.value, nil
	}
	if msg == "" {
		msg = "an error has occurred: " + describe(r.err)
	}
	tracer().Errorf("unrecoverable result [%s]: %s", kindOf(r.err), msg)
	return r.value, &Unrecoverable{Message: msg, Cause: r.err}
}

// GetOrPanic returns the success value or panics with an *Unrecoverable.
//
// This is the only operation of the package which does not return
// normally for every input.
func (r Result[A, E]) GetOrPanic(msg string) A {
	v, err := r.GetOrError(msg)
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[A, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%s)", kindOf(r.err))
}

// --- Combinators -----------------------------------------------------------

// Match dispatches on the variant of r. Both arms are required.
func Match[A any, E ErrorResult, B any](r Result[A, E], ifOk func(A) B, ifError func(E) B) B {
	if r.ok {
		return ifOk(r.value)
	}
	return ifError(r.err)
}

// Map transforms the success value. fn is not called for an Error.
func Map[A any, E ErrorResult, B any](r Result[A, E], fn func(A) B) Result[B, E] {
	if r.ok {
		return OK[E](fn(r.value))
	}
	return Error[B](r.err)
}

// AndThen chains a fallible computation onto a successful r.
// fn is not called for an Error.
func AndThen[A any, E ErrorResult, B any](r Result[A, E], fn func(A) Result[B, E]) Result[B, E] {
	if r.ok {
		return fn(r.value)
	}
	return Error[B](r.err)
}
