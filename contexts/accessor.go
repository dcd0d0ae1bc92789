package contexts

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/result"
)

// Accessor holds the current Context of one logical flow of execution.
//
// Scopes nest: Use installs a Context and returns a function that puts back
// whatever was current before. Scopes are expected to end in reverse order
// of entry, as they do with defer. An Accessor is safe for concurrent use,
// but sharing one between independent flows makes "current" meaningless;
// create one per flow, or carry Contexts in a context.Context instead.
type Accessor struct {
	mu      sync.Mutex
	current *Context
	logger  *zap.Logger
}

// AccessorOption configures an Accessor.
type AccessorOption func(*Accessor)

// WithLogger sets the logger that records scope entry and exit at debug
// level. A nil logger is ignored.
func WithLogger(logger *zap.Logger) AccessorOption {
	return func(a *Accessor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAccessor returns an Accessor with no current Context.
func NewAccessor(opts ...AccessorOption) *Accessor {
	a := &Accessor{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Current returns the current Context, or nil.
func (a *Accessor) Current() *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Use makes c current and returns a function restoring the previous
// Context. Calling the returned function more than once has no further
// effect. c may be nil to clear the current Context for a scope.
//
// Example:
//
//	restore := accessor.Use(child)
//	defer restore()
func (a *Accessor) Use(c *Context) (restore func()) {
	a.mu.Lock()
	prev := a.current
	a.current = c
	a.mu.Unlock()

	a.logger.Debug("entered context scope", scopeFields(c)...)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			a.current = prev
			a.mu.Unlock()
			a.logger.Debug("exited context scope", scopeFields(c)...)
		})
	}
}

// Run calls fn with c current, both in the Accessor and in the
// context.Context passed to fn. The previous Context is restored however fn
// exits, including by panic.
//
// If ctx is already done fn is not called and the cancellation is returned
// as a Canceled (or Timeout) error.
func (a *Accessor) Run(ctx context.Context, c *Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return errors.From(err)
	}
	restore := a.Use(c)
	defer restore()
	return fn(NewContext(ctx, c))
}

// RunValue is like Run for operations producing a Result.
func RunValue[T any](ctx context.Context, a *Accessor, c *Context, fn func(context.Context) result.Result[T]) result.Result[T] {
	if err := ctx.Err(); err != nil {
		return result.FailureFrom[T](err)
	}
	restore := a.Use(c)
	defer restore()
	return fn(NewContext(ctx, c))
}

func scopeFields(c *Context) []zap.Field {
	if c == nil {
		return []zap.Field{zap.Bool("empty", true)}
	}
	return []zap.Field{
		zap.String("context_type", c.definition.ID()),
		zap.String("correlation_id", c.correlationID),
		zap.Int("depth", c.depth),
	}
}
