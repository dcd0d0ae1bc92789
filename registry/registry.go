package registry

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/typedef"
)

// Registry is an id-keyed store of type definitions. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]typedef.TypeDefinition
	order  []string
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		defs:   make(map[string]typedef.TypeDefinition),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewCanonical returns a Registry holding the canonical error categories and
// error types.
func NewCanonical(opts ...Option) *Registry {
	r := New(opts...)
	if err := r.Register(canonicalDefinitions()...); err != nil {
		panic(err)
	}
	return r
}

func canonicalDefinitions() []typedef.TypeDefinition {
	defs := []typedef.TypeDefinition{
		errors.CategoryClient,
		errors.CategoryServer,
		errors.CategoryFlow,
		errors.GeneralValidation,
	}
	for _, t := range errors.CanonicalTypes() {
		defs = append(defs, t)
	}
	return defs
}

// Register adds definitions to the registry.
//
// The batch is all-or-nothing: if any definition is nil, has an id that is
// already taken by a different definition, or repeats an id within the batch,
// nothing is registered and the first problem is returned.
func (r *Registry) Register(defs ...typedef.TypeDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]typedef.TypeDefinition, len(defs))
	var added []typedef.TypeDefinition
	for i, def := range defs {
		if def == nil {
			return errors.Newf(errors.InvalidArgument, "definition at position %d is nil", i)
		}
		id := def.ID()

		existing, ok := r.defs[id]
		if !ok {
			existing, ok = batch[id]
		}
		if ok {
			if sameDefinition(existing, def) {
				continue
			}
			r.logger.Warn("rejected duplicate type definition",
				zap.String("id", id),
				zap.String("existing", existing.Name()),
				zap.String("rejected", def.Name()),
			)
			return errors.WithTag(
				errors.Newf(errors.AlreadyExists, "type definition %q is already registered", id),
				"id", id,
			)
		}

		batch[id] = def
		added = append(added, def)
	}

	for _, def := range added {
		r.defs[def.ID()] = def
		r.order = append(r.order, def.ID())
		r.logger.Debug("registered type definition",
			zap.String("id", def.ID()),
			zap.String("name", def.Name()),
		)
	}
	return nil
}

// sameDefinition reports whether a and b are the same definition value.
// Implementations whose dynamic type is not comparable are never the same.
func sameDefinition(a, b typedef.TypeDefinition) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// TryGetByID returns the definition registered under id.
func (r *Registry) TryGetByID(id string) (typedef.TypeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	return def, ok
}

// GetByID returns the definition registered under id, or a NotFound error.
func (r *Registry) GetByID(id string) (typedef.TypeDefinition, error) {
	def, ok := r.TryGetByID(id)
	if !ok {
		return nil, notFound(id)
	}
	return def, nil
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.TryGetByID(id)
	return ok
}

// All returns the registered definitions in registration order.
func (r *Registry) All() []typedef.TypeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]typedef.TypeDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// TryGet returns the definition registered under id if it has type T.
func TryGet[T typedef.TypeDefinition](r *Registry, id string) (T, bool) {
	def, ok := r.TryGetByID(id)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := def.(T)
	return t, ok
}

// Get returns the definition registered under id as a T.
//
// A missing id yields a NotFound error; a definition of another type yields
// an InvalidCast error, so callers can tell the two apart.
func Get[T typedef.TypeDefinition](r *Registry, id string) (T, error) {
	var zero T
	def, ok := r.TryGetByID(id)
	if !ok {
		return zero, notFound(id)
	}
	t, ok := def.(T)
	if !ok {
		return zero, errors.WithTag(
			errors.Newf(errors.InvalidCast, "type definition %q is a %T, not a %T", id, def, zero),
			"id", id,
		)
	}
	return t, nil
}

func notFound(id string) error {
	return errors.WithTag(
		errors.Newf(errors.NotFound, "type definition %q is not registered", id),
		"id", id,
	)
}
