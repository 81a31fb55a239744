package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// notFound is a caller-defined payload, not known to this package.
type notFound struct {
	Key string
}

func (nf notFound) Kind() string { return "NotFound" }

// --- Test Suite Preparation ------------------------------------------------

type ResultTestEnviron struct {
	suite.Suite
	success Result[int, Failure]
	failure Result[int, Failure]
	invalid Failure
}

func TestResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.result")
	defer teardown()
	suite.Run(t, new(ResultTestEnviron))
}

func (env *ResultTestEnviron) SetupSuite() {
	// GetOrPanic traces at error level on purpose
	tracing.Select("fp.result").SetTraceLevel(tracing.LevelError)
	env.invalid = Failure{Category: "ValidationError"}
	env.success = OK[Failure](42)
	env.failure = Error[int](env.invalid)
}

// --- Tests -----------------------------------------------------------------

func (env *ResultTestEnviron) TestOkVariant() {
	env.True(env.success.IsOk())
	env.False(env.success.IsError())
	env.Equal(42, env.success.Value())
	env.Equal(42, env.success.Payload())
	env.Equal(Failure{}, env.success.Err())
}

func (env *ResultTestEnviron) TestOkGetOrElse() {
	env.Equal(42, env.success.GetOrElse(10))
}

func (env *ResultTestEnviron) TestOkGetOrPanic() {
	env.NotPanics(func() {
		env.Equal(42, env.success.GetOrPanic("An error occurred"))
	})
	v, err := env.success.GetOrError("An error occurred")
	env.NoError(err)
	env.Equal(42, v)
}

func (env *ResultTestEnviron) TestOkMatch() {
	r := Match(env.success,
		func(v int) int { return v + 1 },
		func(Failure) int { return 0 })
	env.Equal(43, r)
}

func (env *ResultTestEnviron) TestErrorVariant() {
	env.True(env.failure.IsError())
	env.False(env.failure.IsOk())
	env.Equal(env.invalid, env.failure.Err())
	env.Equal(env.invalid, env.failure.Payload())
	env.Zero(env.failure.Value())
}

func (env *ResultTestEnviron) TestErrorGetOrElse() {
	env.Equal(10, env.failure.GetOrElse(10))
}

func (env *ResultTestEnviron) TestErrorGetOrPanic() {
	env.PanicsWithError("Custom error message", func() {
		env.failure.GetOrPanic("Custom error message")
	})
	env.PanicsWithError("an error has occurred: ValidationError", func() {
		env.failure.GetOrPanic("")
	})
}

func (env *ResultTestEnviron) TestErrorGetOrError() {
	_, err := env.failure.GetOrError("Custom error message")
	env.Require().Error(err)
	env.EqualError(err, "Custom error message")
	var u *Unrecoverable
	env.Require().True(errors.As(err, &u))
	env.Equal(env.invalid, u.Cause)
	var f Failure
	env.True(errors.As(err, &f), "cause should be reachable through Unwrap")
	env.Equal("ValidationError", f.Kind())
}

func (env *ResultTestEnviron) TestErrorMatch() {
	status := Match(env.failure,
		func(int) int { return 1 },
		func(e Failure) int {
			if e.Kind() == "ValidationError" {
				return 400
			}
			return 500
		})
	env.Equal(400, status)
}

// --- Plain tests -----------------------------------------------------------

func TestOpenErrorShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.result")
	defer teardown()
	//
	r := Error[string](notFound{Key: "user:17"})
	require.True(t, r.IsError())
	assert.Equal(t, "NotFound", r.Err().Kind())
	assert.Equal(t, "user:17", r.Err().Key)
	assert.PanicsWithError(t, "an error has occurred: NotFound {Key:user:17}", func() {
		r.GetOrPanic("")
	})
	_, err := r.GetOrError("")
	var u *Unrecoverable
	require.True(t, errors.As(err, &u))
	assert.Nil(t, u.Unwrap(), "notFound is not an error")
}

func TestInterfacePayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.result")
	defer teardown()
	//
	var zero Result[int, ErrorResult]
	assert.True(t, zero.IsError(), "zero Result is an Error")
	assert.Equal(t, "Error()", zero.String())
	assert.PanicsWithError(t, "an error has occurred: <nil>", func() {
		zero.GetOrPanic("")
	})

	r := Error[int, ErrorResult](notFound{Key: "k"})
	status := Match(r, func(int) int { return 200 }, func(e ErrorResult) int {
		switch e.Kind() {
		case "ValidationError":
			return 400
		case "NotFound":
			return 404
		}
		return 500
	})
	assert.Equal(t, 404, status)
}

func TestFailureError(t *testing.T) {
	tests := []struct {
		name     string
		failure  Failure
		expected string
	}{
		{"bare", Failure{Category: "ValidationError"}, "ValidationError"},
		{"empty details", Failure{Category: "Timeout", Details: map[string]any{}}, "Timeout"},
		{
			"details sorted",
			Failure{Category: "ValidationError", Details: map[string]any{"reason": "negative", "field": "age"}},
			"ValidationError (field=age, reason=negative)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.failure.Error())
			assert.Equal(t, tt.failure.Category, tt.failure.Kind())
		})
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Ok(42)", OK[Failure](42).String())
	assert.Equal(t, "Error(ValidationError)", Error[int](Failure{Category: "ValidationError"}).String())
}

func TestMapAndThen(t *testing.T) {
	calls := 0
	itoa := func(x int) string { calls++; return strconv.Itoa(x) }

	ok := Map(OK[Failure](7), itoa)
	require.True(t, ok.IsOk())
	assert.Equal(t, "7", ok.Value())
	assert.Equal(t, 1, calls)

	failed := Map(Error[int](Failure{Category: "ValidationError"}), itoa)
	require.True(t, failed.IsError())
	assert.Equal(t, "ValidationError", failed.Err().Kind())
	assert.Equal(t, 1, calls, "fn must not run on Error")

	parse := func(s string) Result[int, Failure] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Error[int](Failure{Category: "ParseError", Details: map[string]any{"input": s}})
		}
		return OK[Failure](n)
	}
	assert.Equal(t, 12, AndThen(OK[Failure]("12"), parse).Value())
	bad := AndThen(OK[Failure]("x"), parse)
	assert.Equal(t, "ParseError", bad.Err().Kind())
	upstream := AndThen(Error[string](Failure{Category: "Upstream"}), func(s string) Result[int, Failure] {
		calls++
		return parse(s)
	})
	assert.Equal(t, "Upstream", upstream.Err().Kind())
	assert.Equal(t, 1, calls)
}
