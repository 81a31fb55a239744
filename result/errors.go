package result

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrorResult is the minimal shape of a descriptive error: anything which
// is able to name its error category.
//
// The set of kinds is open. This package neither enumerates nor validates
// them.
type ErrorResult interface {
	Kind() string
}

// Failure is a general purpose ErrorResult. Category is returned as the kind,
// Details may hold arbitrary caller-defined context.
type Failure struct {
	Category string         // error category, e.g. "ValidationError"
	Details  map[string]any // optional context, may be nil
}

// Kind implements ErrorResult.
func (f Failure) Kind() string {
	return f.Category
}

// Error implements the error interface. Details are listed in key order.
func (f Failure) Error() string {
	if len(f.Details) == 0 {
		return f.Category
	}
	keys := make([]string, 0, len(f.Details))
	for k := range f.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb := strings.Builder{}
	sb.WriteString(f.Category)
	sb.WriteString(" (")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s=%v", k, f.Details[k]))
	}
	sb.WriteString(")")
	return sb.String()
}

// Unrecoverable is the error raised by GetOrPanic and returned by GetOrError.
type Unrecoverable struct {
	Message string      // message given by the caller, or a generated one
	Cause   ErrorResult // error payload of the failed Result
}

// Error implements the error interface.
func (u *Unrecoverable) Error() string {
	return u.Message
}

// Unwrap returns the cause if it is an error itself, and nil otherwise.
func (u *Unrecoverable) Unwrap() error {
	if err, ok := u.Cause.(error); ok && !isNil(u.Cause) {
		return err
	}
	return nil
}

// describe renders an error payload for generated messages.
func describe(e ErrorResult) string {
	if isNil(e) {
		return "<nil>"
	}
	switch x := e.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%s %+v", e.Kind(), e)
}

// kindOf is Kind guarded against nil payloads, which a zero Result carries.
func kindOf(e ErrorResult) string {
	if isNil(e) {
		return ""
	}
	return e.Kind()
}

func isNil(e ErrorResult) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
