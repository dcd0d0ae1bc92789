package code

import (
	"github.com/jmgilman/go/outcome/registry"
	"github.com/jmgilman/go/outcome/typedef"
)

// RegisterCanonical registers every canonical code type with r. Calling it
// again on the same registry is a no-op.
func RegisterCanonical(r *registry.Registry) error {
	types := CanonicalTypes()
	defs := make([]typedef.TypeDefinition, 0, len(types))
	for _, t := range types {
		defs = append(defs, t)
	}
	return r.Register(defs...)
}

// NewCanonicalRegistry returns a registry holding the canonical error
// categories and types (see registry.NewCanonical) plus the canonical code
// types.
func NewCanonicalRegistry(opts ...registry.Option) *registry.Registry {
	r := registry.NewCanonical(opts...)
	if err := RegisterCanonical(r); err != nil {
		panic(err)
	}
	return r
}
