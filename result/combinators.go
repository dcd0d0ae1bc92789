package result

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/outcome/errors"
)

// Map applies fn to the value of a success. A failure is recast to
// Result[U] with its errors untouched and fn is not called. Messages are
// kept in both cases.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Result[U]{errs: r.errs, messages: r.messages}
	}
	return Result[U]{value: fn(r.value), messages: r.messages}
}

// Bind chains an operation that itself returns a Result. A failure is
// recast to Result[U] without calling fn. On success the outcome of fn is
// returned with r's messages placed before its own.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsFailure() {
		return Result[U]{errs: r.errs, messages: r.messages}
	}
	next := fn(r.value)
	if len(r.messages) > 0 {
		next.messages = append(cloneOrNil(r.messages), next.messages...)
	}
	return next
}

// Match calls exactly one of onSuccess or onFailure and returns its result.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func([]errors.ErrorInfo) U) U {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.Errors())
}

// Collect combines results in order. It is a success holding every value
// when all results succeed, and otherwise a failure holding every error.
// Messages from all results are kept.
func Collect[T any](results ...Result[T]) Result[[]T] {
	var (
		values   = make([]T, 0, len(results))
		errs     []errors.ErrorInfo
		messages []string
	)
	for _, r := range results {
		values = append(values, r.value)
		errs = append(errs, r.errs...)
		messages = append(messages, r.messages...)
	}
	if len(errs) > 0 {
		return Result[[]T]{errs: errs, messages: messages}
	}
	return Result[[]T]{value: values, messages: messages}
}

// All runs the producers concurrently and collects their results in
// argument order, as Collect does.
//
// Producers receive a context derived from ctx that is canceled as soon as
// any producer fails, so the remaining producers can stop early; whatever
// they return is still collected. If ctx itself is done once all producers
// have returned, the outcome is a single Canceled (or Timeout, for an
// expired deadline) failure instead.
//
// Example:
//
//	r := result.All(ctx,
//	    func(ctx context.Context) result.Result[Quote] { return quotes.Get(ctx, "a") },
//	    func(ctx context.Context) result.Result[Quote] { return quotes.Get(ctx, "b") },
//	)
func All[T any](ctx context.Context, producers ...func(context.Context) Result[T]) Result[[]T] {
	results := make([]Result[T], len(producers))

	g, gctx := errgroup.WithContext(ctx)
	for i, produce := range producers {
		g.Go(func() error {
			results[i] = produce(gctx)
			return results[i].Err()
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Failure[[]T](errors.From(err))
	}
	return Collect(results...)
}
