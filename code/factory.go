package code

import (
	"strings"
	"sync"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/registry"
	"github.com/jmgilman/go/outcome/result"
)

// Factory creates codes by name with values of type T.
//
// A Factory knows the canonical code types plus any added with WithTypes.
// Names and ids are matched case-insensitively. A Factory is safe for
// concurrent use.
type Factory[T any] struct {
	mu       sync.RWMutex
	byKey    map[string]*Type
	types    []*Type
	registry *registry.Registry
}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	types    []*Type
	registry *registry.Registry
}

// WithTypes adds custom code types. Nil entries are ignored.
func WithTypes(types ...*Type) FactoryOption {
	return func(c *factoryConfig) {
		for _, t := range types {
			if t != nil {
				c.types = append(c.types, t)
			}
		}
	}
}

// WithRegistry resolves names the factory does not know against the code
// types held by r.
func WithRegistry(r *registry.Registry) FactoryOption {
	return func(c *factoryConfig) {
		c.registry = r
	}
}

// Request describes one code for CreateMany.
type Request[T any] struct {
	Name    string
	Value   T
	Options []Option
}

// NewFactory returns a Factory for codes with values of type T.
func NewFactory[T any](opts ...FactoryOption) *Factory[T] {
	var cfg factoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Factory[T]{
		byKey:    make(map[string]*Type),
		registry: cfg.registry,
	}
	for _, t := range CanonicalTypes() {
		f.add(t)
	}
	for _, t := range cfg.types {
		f.add(t)
	}
	return f
}

func (f *Factory[T]) add(t *Type) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byKey[key(t.ID())]; !ok {
		f.types = append(f.types, t)
	}
	f.byKey[key(t.ID())] = t
	f.byKey[key(t.Name())] = t
}

// Types returns the types known to the factory itself, canonical first.
func (f *Factory[T]) Types() []*Type {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]*Type(nil), f.types...)
}

// Lookup resolves a code name or id to its type.
func (f *Factory[T]) Lookup(name string) (*Type, bool) {
	k := key(name)
	if k == "" {
		return nil, false
	}

	f.mu.RLock()
	t, ok := f.byKey[k]
	f.mu.RUnlock()
	if ok || f.registry == nil {
		return t, ok
	}

	if t, ok := registry.TryGet[*Type](f.registry, name); ok {
		return t, true
	}
	for _, def := range f.registry.All() {
		if t, ok := def.(*Type); ok && key(t.Name()) == k {
			return t, true
		}
	}
	return nil, false
}

// CanCreateCode reports whether name resolves to a code type.
func (f *Factory[T]) CanCreateCode(name string) bool {
	_, ok := f.Lookup(name)
	return ok
}

// CreateCode creates a code of the named type holding value.
//
// Returns an InvalidArgument error for an empty name or an invalid option,
// and a NotFound error for an unknown name.
//
// Example:
//
//	c, err := httpCodes.CreateCode("NotFound", 404, code.WithTag("route", "/users"))
func (f *Factory[T]) CreateCode(name string, value T, opts ...Option) (*ValueCode[T], error) {
	t, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	base, err := create(t, opts)
	if err != nil {
		return nil, err
	}
	return &ValueCode[T]{Base: *base, value: value}, nil
}

// TryCreateCode is like CreateCode but reports problems as a failed result.
// It never panics.
func (f *Factory[T]) TryCreateCode(name string, value T, opts ...Option) result.Result[*ValueCode[T]] {
	return result.FromError(f.CreateCode(name, value, opts...))
}

// CreateMany creates one code per request. Requests that cannot be
// fulfilled are left out.
func (f *Factory[T]) CreateMany(requests ...Request[T]) []*ValueCode[T] {
	out := make([]*ValueCode[T], 0, len(requests))
	for _, req := range requests {
		if c, err := f.CreateCode(req.Name, req.Value, req.Options...); err == nil {
			out = append(out, c)
		}
	}
	return out
}

func (f *Factory[T]) resolve(name string) (*Type, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.InvalidArgument, "code name must not be empty")
	}
	t, ok := f.Lookup(name)
	if !ok {
		return nil, errors.WithTag(errors.Newf(errors.NotFound, "unknown code %q", name), "name", name)
	}
	return t, nil
}

func create(t *Type, opts []Option) (*Base, error) {
	s := apply(opts)
	if s.err != nil {
		return nil, s.err
	}
	return s.base(t), nil
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Default is the factory used by the package-level functions.
var Default = NewFactory[any]()

// CreateCode creates a code without a value using the Default factory.
func CreateCode(name string, opts ...Option) (Code, error) {
	t, err := Default.resolve(name)
	if err != nil {
		return nil, err
	}
	base, err := create(t, opts)
	if err != nil {
		return nil, err
	}
	return base, nil
}

// TryCreateCode is like CreateCode but reports problems as a failed result.
// It never panics.
func TryCreateCode(name string, opts ...Option) result.Result[Code] {
	return result.FromError(CreateCode(name, opts...))
}

// CanCreateCode reports whether the Default factory knows name.
func CanCreateCode(name string) bool {
	return Default.CanCreateCode(name)
}
