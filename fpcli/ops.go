package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jorgench/fun-helpers/option"
	"github.com/jorgench/fun-helpers/result"
)

var errNoOption = errors.New("no option lifted, start with lift:<value>")
var errNoResult = errors.New("no result, use check first")
var errNoArg = errors.New("operation needs an argument")

// --- Literals --------------------------------------------------------------

// parseLiteral converts user input to a Go value. null and undefined both
// become nil, NaN becomes math.NaN().
func parseLiteral(s string) any {
	switch s {
	case "null", "nil":
		return nil
	case "undefined":
		tracer().Debugf("'undefined' is read as nil")
		return nil
	case "NaN":
		return math.NaN()
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if len(s) >= 2 && s[0] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// --- Named functions and predicates ----------------------------------------

func numeric(name string, fi func(int) int, ff func(float64) float64) func(any) any {
	return func(v any) any {
		switch x := v.(type) {
		case int:
			return fi(x)
		case float64:
			return ff(x)
		}
		tracer().Infof("%s: %v is not a number, left unchanged", name, v)
		return v
	}
}

var functions = map[string]func(any) any{
	"inc":    numeric("inc", func(x int) int { return x + 1 }, func(x float64) float64 { return x + 1 }),
	"double": numeric("double", func(x int) int { return 2 * x }, func(x float64) float64 { return 2 * x }),
	"neg":    numeric("neg", func(x int) int { return -x }, func(x float64) float64 { return -x }),
	"upper": func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return v
	},
	"len": func(v any) any {
		return len(fmt.Sprint(v))
	},
}

func numPredicate(p func(float64) bool) func(any) bool {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && p(f)
	}
}

var predicates = map[string]func(any) bool{
	"pos":   numPredicate(func(x float64) bool { return x > 0 }),
	"neg":   numPredicate(func(x float64) bool { return x < 0 }),
	"even":  numPredicate(func(x float64) bool { return math.Mod(x, 2) == 0 }),
	"lt100": numPredicate(func(x float64) bool { return x < 100 }),
	"gt100": numPredicate(func(x float64) bool { return x > 100 }),
	"nonempty": func(v any) bool {
		s, ok := v.(string)
		return !ok || s != ""
	},
}

// --- Option steps ----------------------------------------------------------

func liftOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	intp.opt = option.Of(parseLiteral(op.arg))
	intp.stage = stageOption
	intp.show("%s", intp.opt)
	return nil, false
}

func mapOp(intp *Intp, op *Op) (error, bool) {
	if intp.stage != stageOption {
		return errNoOption, false
	}
	fn, ok := functions[op.arg]
	if !ok {
		return fmt.Errorf("unknown function '%s'", op.arg), false
	}
	intp.opt = option.Map(intp.opt, fn)
	intp.show("%s", intp.opt)
	return nil, false
}

func filterOp(intp *Intp, op *Op) (error, bool) {
	if intp.stage != stageOption {
		return errNoOption, false
	}
	pred, ok := predicates[op.arg]
	if !ok {
		return fmt.Errorf("unknown predicate '%s'", op.arg), false
	}
	intp.opt = intp.opt.Filter(pred)
	intp.show("%s", intp.opt)
	return nil, false
}

// orOp extracts a plain value, either from the option or from the result.
func orOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	def := parseLiteral(op.arg)
	switch intp.stage {
	case stageOption:
		intp.show("%v", intp.opt.GetOrElse(def))
	case stageResult:
		f, ok := toFloat(def)
		if !ok {
			return fmt.Errorf("default for a result must be a number, is '%s'", op.arg), false
		}
		intp.show("%v", intp.res.GetOrElse(f))
	default:
		return errNoOption, false
	}
	return nil, false
}

// --- Result steps ----------------------------------------------------------

// validate turns an option into a result: absent values and values which
// are not non-negative numbers are errors.
func validate(o option.Option[any]) Validated {
	return option.MapOrElse(o,
		func() Validated {
			return result.Error[float64](result.Failure{Category: "MissingValue"})
		},
		func(v any) Validated {
			n, ok := toFloat(v)
			if !ok {
				return result.Error[float64](result.Failure{
					Category: "ValidationError",
					Details:  map[string]any{"value": v, "reason": "not a number"},
				})
			}
			if n < 0 {
				return result.Error[float64](result.Failure{
					Category: "ValidationError",
					Details:  map[string]any{"value": v, "reason": "negative"},
				})
			}
			return result.OK[result.Failure](n)
		})
}

// status maps a validated result to an HTTP-like status code.
func status(r Validated) int {
	return result.Match(r,
		func(float64) int { return 200 },
		func(f result.Failure) int {
			switch f.Kind() {
			case "ValidationError":
				return 400
			case "MissingValue":
				return 404
			}
			return 500
		})
}

func checkOp(intp *Intp, op *Op) (error, bool) {
	if intp.stage != stageOption {
		return errNoOption, false
	}
	intp.res = validate(intp.opt)
	intp.stage = stageResult
	if intp.res.IsError() {
		tracer().Infof("validation failed: %s", intp.res.Err())
	}
	intp.show("%s", intp.res)
	return nil, false
}

func statusOp(intp *Intp, op *Op) (error, bool) {
	if intp.stage != stageResult {
		return errNoResult, false
	}
	intp.show("%d", status(intp.res))
	return nil, false
}

// mustOp extracts the value of the current result and recovers from the
// panic of a failed result.
func mustOp(intp *Intp, op *Op) (err error, stop bool) {
	if intp.stage != stageResult {
		return errNoResult, false
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	msg := strings.ReplaceAll(op.arg, "_", " ")
	v := intp.res.GetOrPanic(msg)
	intp.show("%v", v)
	return nil, false
}
