package contexts

import "github.com/jmgilman/go/outcome/result"

// Contextual is a Result paired with the Context it was produced in.
type Contextual[T any] struct {
	result.Result[T]
	context *Context
}

// Attach pairs r with c.
func Attach[T any](c *Context, r result.Result[T]) Contextual[T] {
	return Contextual[T]{Result: r, context: c}
}

// Context returns the Context the result was produced in.
func (c Contextual[T]) Context() *Context { return c.context }

// CorrelationID returns the correlation id of the Context, or "" if there
// is none.
func (c Contextual[T]) CorrelationID() string {
	if c.context == nil {
		return ""
	}
	return c.context.correlationID
}
