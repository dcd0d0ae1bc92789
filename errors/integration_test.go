package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/stretchr/testify/require"
)

func loadUser(id string) error {
	if id == "" {
		return errors.New(errors.InvalidArgument, "user id is required")
	}
	return errors.WithTag(
		errors.Wrap(stderrors.New("no rows"), errors.NotFound, "user not found"),
		"user_id", id,
	)
}

func handle(id string) error {
	if err := loadUser(id); err != nil {
		return fmt.Errorf("handler: %w", errors.Wrap(err, errors.InternalError, "request failed"))
	}
	return nil
}

func TestIntegration_LayeredWrapping(t *testing.T) {
	err := handle("42")
	require.Error(t, err)

	// Outermost classification wins for GetType.
	require.Same(t, errors.InternalError, errors.GetType(err))

	// The original classification stays discoverable.
	require.True(t, errors.IsType(err, errors.NotFound))

	found := errors.Find(err, func(info errors.ErrorInfo) bool {
		return info.Metadata().ContainsKey("user_id")
	})
	require.NotNil(t, found)
	require.Equal(t, "user not found", found.Message())
}

func TestIntegration_ContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := errors.From(ctx.Err())

	require.Same(t, errors.Timeout, err.Definition())
	require.True(t, errors.IsTransient(err))
	require.True(t, stderrors.Is(err, context.DeadlineExceeded))
}
