// Package result provides Result, the completed outcome of an operation.
//
// A Result is either a success carrying a value or a failure carrying one or
// more errors.ErrorInfo values. The state is derived from the error list and
// cannot be set independently:
//
//	r.IsSuccess() == (len(r.Errors()) == 0)
//
// Both states may also carry informational messages.
//
// # Combinators
//
// Go methods cannot introduce type parameters, so transformations that change
// the value type are package functions:
//
//	name := result.Map(user, func(u User) string { return u.Name })
//	order := result.Bind(user, loadLatestOrder)
//	text := result.Match(order, render, renderErrors)
//
// Map and Bind short-circuit on failure: the function is not called and the
// errors pass through unchanged. Tap, OnSuccess and OnFailure only observe.
// Recovery is always explicit, through Match, Recover or ValueOr.
//
// # Leaving the Algebra
//
// ValueOrErr and its variants return Go's (value, error) pair, where the
// error carries the failure's errors as inner errors:
//
//	v, err := r.ValueOrErr()
//	if err != nil {
//	    return err
//	}
//
// Results are immutable. Accessors return copies.
package result
