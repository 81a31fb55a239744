package option

import (
	"math"
	"math/cmplx"
	"reflect"
)

// classify decides whether raw is present. It is total: every input yields
// either (raw, true) or (zero, false).
func classify[T any](raw T) (T, bool) {
	if absent(any(raw)) {
		var zero T
		return zero, false
	}
	return raw, true
}

// absent reports whether x is one of the absence sentinels: nil of any
// nillable kind, or NaN.
func absent(x any) bool {
	switch v := x.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, string, bool:
		return false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsNaN(rv.Complex())
	}
	return false
}
