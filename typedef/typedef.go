// Package typedef defines the identity descriptor shared by codes, contexts,
// errors and every other typed marker in this module.
//
// A TypeDefinition is declared once, usually as a package-level value,
// registered in a registry by its ID and never mutated afterwards.
// Specializations embed *Definition and add their own fields:
//
//	type ErrorType struct {
//	    *typedef.Definition
//	    severity Severity
//	}
package typedef

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the version assigned when none is given.
const DefaultVersion = "1.0.0"

// ErrInvalidDefinition is returned when a definition cannot be constructed.
var ErrInvalidDefinition = stderrors.New("invalid type definition")

// TypeDefinition is the read-only view of a definition.
type TypeDefinition interface {
	// ID returns the globally unique, stable identifier.
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Version returns the semantic version of the definition.
	Version() *semver.Version

	// Description returns a free-form description. May be empty.
	Description() string

	// CategoryName returns the name of the grouping this definition belongs to.
	// May be empty.
	CategoryName() string

	// Category returns the grouping definition, or nil.
	Category() TypeDefinition

	// Relations returns the cross-cutting relation tags of the definition.
	Relations() []TypeDefinition
}

// Definition is the base TypeDefinition implementation.
type Definition struct {
	id           string
	name         string
	version      *semver.Version
	description  string
	categoryName string
	category     TypeDefinition
	relations    []TypeDefinition
}

// Option configures a Definition under construction.
type Option func(*options)

type options struct {
	version      string
	description  string
	categoryName string
	category     TypeDefinition
	relations    []TypeDefinition
}

// WithVersion sets the semantic version, e.g. "2.1.0" or "v1.2".
func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithDescription sets the description.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithCategory sets the grouping definition. Unless WithCategoryName is
// also given, the category name is taken from the category's name.
func WithCategory(category TypeDefinition) Option {
	return func(o *options) {
		o.category = category
	}
}

// WithCategoryName sets the category name without a category definition.
func WithCategoryName(name string) Option {
	return func(o *options) {
		o.categoryName = name
	}
}

// WithRelations appends relation tags. Nil entries are ignored.
func WithRelations(relations ...TypeDefinition) Option {
	return func(o *options) {
		for _, r := range relations {
			if r != nil {
				o.relations = append(o.relations, r)
			}
		}
	}
}

// New creates a Definition. The id must be non-empty; an empty name defaults
// to the id.
//
// Example:
//
//	def, err := typedef.New("http-request", "HttpRequest",
//	    typedef.WithVersion("1.2.0"),
//	    typedef.WithDescription("Inbound HTTP request scope"),
//	)
func New(id, name string, opts ...Option) (*Definition, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidDefinition)
	}
	if name == "" {
		name = id
	}

	o := options{version: DefaultVersion}
	for _, opt := range opts {
		opt(&o)
	}

	version, err := semver.NewVersion(o.version)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: version %q: %w", ErrInvalidDefinition, id, o.version, err)
	}

	if o.category != nil {
		if o.category.ID() == id {
			return nil, fmt.Errorf("%w: %s: definition cannot be its own category", ErrInvalidDefinition, id)
		}
		if o.categoryName == "" {
			o.categoryName = o.category.Name()
		}
	}

	return &Definition{
		id:           id,
		name:         name,
		version:      version,
		description:  o.description,
		categoryName: o.categoryName,
		category:     o.category,
		relations:    o.relations,
	}, nil
}

// Must is like New but panics on error. Intended for package-level
// declarations.
func Must(id, name string, opts ...Option) *Definition {
	def, err := New(id, name, opts...)
	if err != nil {
		panic(err)
	}
	return def
}

// ID returns the definition id.
func (d *Definition) ID() string { return d.id }

// Name returns the definition name.
func (d *Definition) Name() string { return d.name }

// Version returns a copy of the definition version.
func (d *Definition) Version() *semver.Version {
	v := *d.version
	return &v
}

// Description returns the definition description.
func (d *Definition) Description() string { return d.description }

// CategoryName returns the category name.
func (d *Definition) CategoryName() string { return d.categoryName }

// Category returns the category definition, or nil.
func (d *Definition) Category() TypeDefinition { return d.category }

// Relations returns a copy of the relation tags.
func (d *Definition) Relations() []TypeDefinition {
	return slices.Clone(d.relations)
}

// String returns "name@version (id)".
func (d *Definition) String() string {
	return fmt.Sprintf("%s@%s (%s)", d.name, d.version, d.id)
}

// Equal reports whether a and b describe the same definition. Definitions
// are identified by ID alone.
func Equal(a, b TypeDefinition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// HasRelation reports whether def carries a relation tag with the given id.
func HasRelation(def TypeDefinition, relationID string) bool {
	if def == nil {
		return false
	}
	return slices.ContainsFunc(def.Relations(), func(r TypeDefinition) bool {
		return r.ID() == relationID
	})
}

// InCategory reports whether def, or any category above it, has the given id.
func InCategory(def TypeDefinition, categoryID string) bool {
	seen := make(map[string]bool)
	for c := def; c != nil; c = c.Category() {
		if seen[c.ID()] {
			return false
		}
		seen[c.ID()] = true
		if c != def && c.ID() == categoryID {
			return true
		}
	}
	return false
}
