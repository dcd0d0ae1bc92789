package code

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
	"github.com/jmgilman/go/outcome/typedef"
)

func TestCanonicalTypes(t *testing.T) {
	seen := make(map[string]bool)
	for _, ct := range CanonicalTypes() {
		require.False(t, seen[ct.ID()], "duplicate id %s", ct.ID())
		seen[ct.ID()] = true
		require.NotEmpty(t, ct.Description())
	}
	require.Len(t, seen, 16)
}

func TestCanonicalCodes(t *testing.T) {
	tests := []struct {
		code     *Base
		name     string
		severity errors.Severity
	}{
		{None, "None", errors.SeverityInfo},
		{Success, "Success", errors.SeverityInfo},
		{NotFound, "NotFound", errors.SeverityWarning},
		{InternalError, "InternalError", errors.SeverityCritical},
		{SecurityViolation, "SecurityViolation", errors.SeverityCritical},
		{Timeout, "Timeout", errors.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.code.Name())
			require.Equal(t, tt.name, tt.code.String())
			require.Equal(t, tt.severity, tt.code.Severity())
			require.Nil(t, tt.code.Value())
			require.True(t, tt.code.Metadata().IsEmpty())
		})
	}

	require.True(t, typedef.InCategory(NotFound.Definition(), errors.CategoryClient.ID()))
	require.True(t, typedef.InCategory(Timeout.Definition(), errors.CategoryServer.ID()))
}

func TestNew_Options(t *testing.T) {
	c := New(NotFoundType,
		WithSeverity(errors.SeverityError),
		WithDescription("no such order"),
		WithMetadata(metadata.New("a", 1)),
		WithTag("b", 2),
	)

	require.Equal(t, errors.SeverityError, c.Severity())
	require.Equal(t, "no such order", c.Description())
	require.Equal(t, []string{"a", "b"}, c.Metadata().Keys())

	require.Equal(t, "The requested resource does not exist.", NotFound.Description())
}

func TestNew_Panics(t *testing.T) {
	require.Panics(t, func() { New(nil) })
	require.Panics(t, func() { New(NotFoundType, WithTag("", 1)) })
	require.Panics(t, func() { NewType(nil) })
}

func TestValueCode(t *testing.T) {
	c := NewValue(NotFoundType, 404)

	require.Equal(t, 404, c.Typed())
	require.Equal(t, 404, c.Value())
	require.Equal(t, "NotFound(404)", c.String())
	require.Same(t, NotFoundType, c.Definition())

	var _ Code = c
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Code
		want bool
	}{
		{"same canonical", NotFound, NotFound, true},
		{"base vs fresh base", NotFound, New(NotFoundType), true},
		{"metadata ignored", NotFound, NotFound.WithTag("k", "v"), true},
		{"severity ignored", NotFound, New(NotFoundType, WithSeverity(errors.SeverityFatal)), true},
		{"different type", NotFound, Conflict, false},
		{"same value", NewValue(NotFoundType, 404), NewValue(NotFoundType, 404), true},
		{"different value", NewValue(NotFoundType, 404), NewValue(NotFoundType, 410), false},
		{"value vs none", NewValue(NotFoundType, 404), NotFound, false},
		{"slice values", NewValue(ValidationType, []string{"a"}), NewValue(ValidationType, []string{"a"}), true},
		{"nil vs code", nil, NotFound, false},
		{"nil vs nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Equal(tt.a, tt.b))
			require.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestWithTag_CopyOnWrite(t *testing.T) {
	tagged := NotFound.WithTag("route", "/users")
	require.True(t, NotFound.Metadata().IsEmpty())
	require.Equal(t, "/users", metadata.GetValueOrDefault(tagged.Metadata(), "route", ""))

	vc := NewValue(NotFoundType, 404)
	vt := vc.WithTag("a", 1).WithMetadata(metadata.New("b", 2))
	require.True(t, vc.Metadata().IsEmpty())
	require.Equal(t, 2, vt.Metadata().Len())
	require.Equal(t, 404, vt.Typed())
}

func TestValueOf(t *testing.T) {
	v, ok := ValueOf[int](NewValue(NotFoundType, 404))
	require.True(t, ok)
	require.Equal(t, 404, v)

	_, ok = ValueOf[string](NewValue(NotFoundType, 404))
	require.False(t, ok)

	_, ok = ValueOf[int](NotFound)
	require.False(t, ok)

	_, ok = ValueOf[int](nil)
	require.False(t, ok)
}
