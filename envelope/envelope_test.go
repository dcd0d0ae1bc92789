package envelope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/outcome/code"
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

func TestSuccessCodeWithoutErrors(t *testing.T) {
	env := NewBuilder[any]().WithCode(code.Success).Build()

	require.True(t, env.IsSuccess())
	require.False(t, env.IsFailure())
	require.Equal(t, "", env.ErrorSummary())
	require.Equal(t, "", env.ErrorMessage())
	require.Nil(t, env.ErrorMessages())
	require.Nil(t, env.ErrorsByCategory())
	require.Nil(t, env.ErrorCodes())
	require.Equal(t, "", env.PrimaryErrorCode())
	require.False(t, env.HasValidationErrors())
}

func TestBuild_DefaultsToNoneCode(t *testing.T) {
	env := NewBuilder[int]().Build()
	require.True(t, code.Equal(code.None, env.Code()))

	var zero Envelope[int]
	require.NotNil(t, zero.Code())
	require.True(t, code.Equal(code.None, zero.Code()))
}

func TestBuilder_IsPlainAccumulator(t *testing.T) {
	// A success code with errors is accepted; the errors decide the state.
	env := NewBuilder[int]().
		WithCode(code.Success).
		AddError(errors.New(errors.Conflict, "stale")).
		Build()

	require.True(t, env.IsFailure())
	require.True(t, code.Equal(code.Success, env.Code()))
}

func TestBuilder_AllParts(t *testing.T) {
	stream := strings.NewReader("payload")
	e1 := errors.New(errors.NotFound, "a")

	env := NewBuilder[string]().
		WithCode(code.NotFound).
		WithErrors(e1, nil).
		WithValue("v").
		WithMessages("m1").
		WithMessages("m2").
		WithHeaders(Headers{"content-type": {"text/plain"}}).
		AddHeader("X-Trace", "1", "2").
		WithStream(stream).
		WithMetadata(metadata.New("a", 1)).
		AddMetadata("b", 2).
		Build()

	require.Equal(t, []errors.ErrorInfo{e1}, env.Errors())
	require.Equal(t, "v", env.Value())
	require.Equal(t, []string{"m1", "m2"}, env.Messages())
	require.Equal(t, "text/plain", env.Headers().Get("Content-Type"))
	require.Equal(t, []string{"1", "2"}, env.Headers().Values("x-trace"))
	require.Same(t, stream, env.Stream())
	require.Equal(t, []string{"a", "b"}, env.Metadata().Keys())
	require.True(t, env.IsHeadered())
	require.True(t, env.IsStreamable())
}

func TestBuilder_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { NewBuilder[int]().WithCode(nil) })
	require.Panics(t, func() { NewBuilder[int]().AddError(nil) })
	require.Panics(t, func() { NewBuilder[int]().AddMetadata("", 1) })
}

func TestBuilder_BuildsAreIndependent(t *testing.T) {
	b := NewBuilder[int]().WithMessages("a").AddHeader("K", "1")
	first := b.Build()

	b.WithMessages("b").AddHeader("K", "2").AddError(errors.New(errors.Timeout, "x"))
	second := b.Build()

	require.True(t, first.IsSuccess())
	require.Equal(t, []string{"a"}, first.Messages())
	require.Equal(t, []string{"1"}, first.Headers().Values("K"))

	require.True(t, second.IsFailure())
	require.Equal(t, []string{"a", "b"}, second.Messages())
}

func TestAccessorsReturnCopies(t *testing.T) {
	env := NewBuilder[int]().
		AddError(errors.New(errors.NotFound, "x")).
		WithMessages("m").
		AddHeader("K", "v").
		Build()

	env.Errors()[0] = nil
	env.Messages()[0] = "changed"
	env.Headers()["K"][0] = "changed"

	require.NotNil(t, env.Errors()[0])
	require.Equal(t, "m", env.Messages()[0])
	require.Equal(t, "v", env.Headers().Get("K"))
}

func TestDerivedErrorProperties(t *testing.T) {
	nf1 := errors.New(errors.NotFound, "user missing")
	conflict := errors.New(errors.Conflict, "stale version")
	nf2 := errors.New(errors.NotFound, "order missing")

	env := Failure[int](code.Conflict, nf1, conflict, nf2)

	require.Equal(t, []string{"user missing", "stale version", "order missing"}, env.ErrorMessages())
	require.Equal(t, "user missing", env.ErrorMessage())
	require.Equal(t, "user missing; stale version; order missing", env.ErrorSummary())
	require.Equal(t, map[string][]errors.ErrorInfo{
		"NOT_FOUND": {nf1, nf2},
		"CONFLICT":  {conflict},
	}, env.ErrorsByCategory())
	require.Equal(t, []string{"NOT_FOUND", "CONFLICT"}, env.ErrorCodes())
	require.Equal(t, "NOT_FOUND", env.PrimaryErrorCode())
	require.False(t, env.HasValidationErrors())
}

func TestHasValidationErrors_Nested(t *testing.T) {
	nested := errors.WithInner(
		errors.New(errors.BadRequest, "bad request"),
		errors.New(errors.Validation, "email is malformed"),
	)

	env := Failure[int](code.BadRequest, nested)
	require.True(t, env.HasValidationErrors())
}

func TestHasValidationErrors_DerivedCopy(t *testing.T) {
	base := errors.New(errors.InvalidArgument, "bad input")
	detailed := errors.WithInner(base, errors.New(errors.Validation, "name is required"))

	env := Failure[int](code.Validation, base, detailed)
	require.True(t, env.HasValidationErrors())
}

func TestFailure_RequiresError(t *testing.T) {
	require.Panics(t, func() { Failure[int](code.General) })
	require.Panics(t, func() { Failure[int](nil, errors.New(errors.NotFound, "x")) })
}

func TestSuccess(t *testing.T) {
	env := Success(42, "fresh")
	require.True(t, env.IsSuccess())
	require.True(t, code.Equal(code.Success, env.Code()))
	require.Equal(t, 42, env.Value())
	require.Equal(t, []string{"fresh"}, env.Messages())
	require.False(t, env.IsHeadered())
	require.False(t, env.IsStreamable())
}

func TestDeconstruct(t *testing.T) {
	c, v, errs := Success("x").Deconstruct()
	require.True(t, code.Equal(code.Success, c))
	require.Equal(t, "x", v)
	require.Nil(t, errs)
}

func TestHeaders(t *testing.T) {
	var h Headers
	require.Equal(t, "", h.Get("missing"))
	require.Nil(t, h.Values("missing"))
	require.Nil(t, h.Clone())

	h = Headers{"b-key": {"1"}, "A-Key": {"2"}}
	require.Equal(t, []string{"A-Key", "B-Key"}, h.Clone().Keys())
}

func TestHeaders_EmptyValuesIgnored(t *testing.T) {
	env := NewBuilder[int]().AddHeader("X-Key").Build()
	require.False(t, env.IsHeadered())
	require.Empty(t, env.Headers().Keys())

	env = NewBuilder[int]().WithHeaders(Headers{"x-empty": nil}).Build()
	require.False(t, env.IsHeadered())

	env = NewBuilder[int]().AddHeader("X-Key").AddHeader("x-key", "v").Build()
	require.True(t, env.IsHeadered())
	require.Equal(t, []string{"v"}, env.Headers().Values("X-Key"))
}
