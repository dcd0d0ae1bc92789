package errors

import (
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/outcome/metadata"
	"github.com/stretchr/testify/require"
)

func TestBuilder_RoundTrip(t *testing.T) {
	inner := New(InvalidArgument, "name is required")
	cause := stderrors.New("raw")

	err, buildErr := NewBuilder().
		WithDefinition(Validation).
		WithMessage("request is invalid").
		WithInstanceID("req-42").
		WithInnerError(inner).
		WithCause(cause).
		WithMetadata(metadata.New("request_id", "abc")).
		WithTag("attempt", 1).
		Build()
	require.NoError(t, buildErr)

	require.Same(t, Validation, err.Definition())
	require.Equal(t, "request is invalid", err.Message())
	require.Equal(t, "req-42", err.InstanceID())
	require.Equal(t, []ErrorInfo{inner}, err.InnerErrors())
	require.Equal(t, cause, err.Cause())
	require.Equal(t, "abc", metadata.GetValueOrDefault(err.Metadata(), "request_id", ""))
	require.Equal(t, 1, metadata.GetValueOrDefault(err.Metadata(), "attempt", 0))
}

func TestBuilder_GeneratesInstanceID(t *testing.T) {
	b := NewBuilder().WithDefinition(NotFound).WithMessage("missing")

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	require.NotEmpty(t, first.InstanceID())
	require.NotEqual(t, first.InstanceID(), second.InstanceID())
}

func TestBuilder_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		want    string
	}{
		{
			name:    "missing definition",
			builder: NewBuilder().WithMessage("message"),
			want:    "error definition is required",
		},
		{
			name:    "missing message",
			builder: NewBuilder().WithDefinition(NotFound),
			want:    "error message is required",
		},
		{
			name:    "missing both",
			builder: NewBuilder(),
			want:    "error definition is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.builder.Build()
			require.Nil(t, info)
			require.Error(t, err)
			require.Same(t, InvalidState, GetType(err))
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuilder_EmptyMessageAllowed(t *testing.T) {
	info, err := NewBuilder().WithDefinition(InternalError).WithMessage("").Build()

	require.NoError(t, err)
	require.Equal(t, "", info.Message())
}

func TestBuilder_NilArgumentsPanic(t *testing.T) {
	require.Panics(t, func() { NewBuilder().WithDefinition(nil) })
	require.Panics(t, func() { NewBuilder().WithInnerError(nil) })
	require.Panics(t, func() { NewBuilder().WithInstanceID(" ") })
}

func TestBuilder_WithInnerErrorsSkipsNil(t *testing.T) {
	a := New(NotFound, "a")
	b := New(Conflict, "b")

	info, err := NewBuilder().
		WithDefinition(Validation).
		WithMessage("composite").
		WithInnerErrors(a, nil, b).
		Build()

	require.NoError(t, err)
	require.Equal(t, []ErrorInfo{a, b}, info.InnerErrors())
}

func TestBuilder_LaterEditsDoNotLeak(t *testing.T) {
	b := NewBuilder().WithDefinition(NotFound).WithMessage("m").WithInnerError(New(NotFound, "a"))

	info, err := b.Build()
	require.NoError(t, err)

	b.WithInnerError(New(NotFound, "b")).WithTag("late", true)

	require.Len(t, info.InnerErrors(), 1)
	require.False(t, info.Metadata().ContainsKey("late"))
}
