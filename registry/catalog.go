package registry

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/typedef"
)

// Kinds of catalog entries.
const (
	KindDefinition = "definition"
	KindError      = "error"
)

// Catalog is the YAML document read by LoadCatalog.
type Catalog struct {
	Definitions []Entry `yaml:"definitions"`
}

// Entry declares one type definition. Category, Relations and
// ValidationType hold ids of other definitions.
type Entry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Relations   []string `yaml:"relations,omitempty"`

	// Kind selects the definition flavour; empty means KindDefinition.
	Kind string `yaml:"kind,omitempty"`

	// Error fields, only valid with KindError.
	Severity       string `yaml:"severity,omitempty"`
	Transient      bool   `yaml:"transient,omitempty"`
	UserFacing     bool   `yaml:"user_facing,omitempty"`
	ValidationType string `yaml:"validation_type,omitempty"`
}

// LoadCatalog decodes a YAML catalog and builds its definitions in
// document order.
//
// The document is first checked against CatalogSchema. References are then
// resolved within the catalog, falling back to the canonical error types and
// categories. Schema violations, duplicate ids, unresolved references and
// category cycles are errors.
func LoadCatalog(r io.Reader) ([]typedef.TypeDefinition, error) {
	return loadCatalog(r, canonicalLookup())
}

// RegisterCatalog loads a YAML catalog and registers every definition in it.
// References may also point at definitions already in the registry.
func (r *Registry) RegisterCatalog(in io.Reader) ([]typedef.TypeDefinition, error) {
	canonical := canonicalLookup()
	defs, err := loadCatalog(in, func(id string) (typedef.TypeDefinition, bool) {
		if def, ok := r.TryGetByID(id); ok {
			return def, true
		}
		return canonical(id)
	})
	if err != nil {
		return nil, err
	}
	if err := r.Register(defs...); err != nil {
		return nil, err
	}
	return defs, nil
}

func canonicalLookup() func(string) (typedef.TypeDefinition, bool) {
	canonical := make(map[string]typedef.TypeDefinition)
	for _, def := range canonicalDefinitions() {
		canonical[def.ID()] = def
	}
	return func(id string) (typedef.TypeDefinition, bool) {
		def, ok := canonical[id]
		return def, ok
	}
}

func loadCatalog(r io.Reader, external func(string) (typedef.TypeDefinition, bool)) ([]typedef.TypeDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidArgument, "failed to read definition catalog")
	}
	if err := validateCatalog(data); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.InvalidArgument, "failed to decode definition catalog")
	}

	b := &catalogBuilder{
		entries:  make(map[string]*Entry, len(cat.Definitions)),
		built:    make(map[string]typedef.TypeDefinition, len(cat.Definitions)),
		visiting: make(map[string]bool),
		external: external,
	}
	for i := range cat.Definitions {
		e := &cat.Definitions[i]
		if strings.TrimSpace(e.ID) == "" {
			return nil, errors.Newf(errors.InvalidArgument, "catalog entry %d has no id", i)
		}
		if _, dup := b.entries[e.ID]; dup {
			return nil, errors.WithTag(
				errors.Newf(errors.AlreadyExists, "catalog declares %q more than once", e.ID),
				"id", e.ID,
			)
		}
		b.entries[e.ID] = e
	}

	out := make([]typedef.TypeDefinition, 0, len(cat.Definitions))
	for _, e := range cat.Definitions {
		def, err := b.resolve(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

// catalogBuilder resolves entries depth-first so that a definition's
// category and relations exist before the definition itself.
type catalogBuilder struct {
	entries  map[string]*Entry
	built    map[string]typedef.TypeDefinition
	visiting map[string]bool
	external func(string) (typedef.TypeDefinition, bool)
}

func (b *catalogBuilder) resolve(id string) (typedef.TypeDefinition, error) {
	if def, ok := b.built[id]; ok {
		return def, nil
	}
	e, ok := b.entries[id]
	if !ok {
		if def, ok := b.external(id); ok {
			return def, nil
		}
		return nil, errors.WithTag(
			errors.Newf(errors.NotFound, "catalog references unknown definition %q", id),
			"id", id,
		)
	}
	if b.visiting[id] {
		return nil, errors.WithTag(
			errors.Newf(errors.InvalidState, "catalog definition %q is part of a reference cycle", id),
			"id", id,
		)
	}
	b.visiting[id] = true
	defer delete(b.visiting, id)

	def, err := b.build(e)
	if err != nil {
		return nil, err
	}
	b.built[id] = def
	return def, nil
}

func (b *catalogBuilder) build(e *Entry) (typedef.TypeDefinition, error) {
	var opts []typedef.Option
	if e.Version != "" {
		opts = append(opts, typedef.WithVersion(e.Version))
	}
	if e.Description != "" {
		opts = append(opts, typedef.WithDescription(e.Description))
	}
	if e.Category != "" {
		cat, err := b.resolve(e.Category)
		if err != nil {
			return nil, err
		}
		opts = append(opts, typedef.WithCategory(cat))
	}
	if len(e.Relations) > 0 {
		rels := make([]typedef.TypeDefinition, 0, len(e.Relations))
		for _, id := range e.Relations {
			rel, err := b.resolve(id)
			if err != nil {
				return nil, err
			}
			rels = append(rels, rel)
		}
		opts = append(opts, typedef.WithRelations(rels...))
	}

	def, err := typedef.New(e.ID, e.Name, opts...)
	if err != nil {
		return nil, errors.WithTag(
			errors.Wrapf(err, errors.InvalidArgument, "invalid catalog definition %q", e.ID),
			"id", e.ID,
		)
	}

	switch strings.ToLower(e.Kind) {
	case "", KindDefinition:
		if e.hasErrorFields() {
			return nil, errors.WithTag(
				errors.Newf(errors.InvalidArgument, "catalog definition %q sets error fields without kind %q", e.ID, KindError),
				"id", e.ID,
			)
		}
		return def, nil
	case KindError:
		return b.buildError(e, def)
	default:
		return nil, errors.WithTag(
			errors.Newf(errors.InvalidArgument, "catalog definition %q has unknown kind %q", e.ID, e.Kind),
			"id", e.ID,
		)
	}
}

func (b *catalogBuilder) buildError(e *Entry, def *typedef.Definition) (typedef.TypeDefinition, error) {
	var opts []errors.TypeOption
	if e.Severity != "" {
		sev, err := errors.ParseSeverity(e.Severity)
		if err != nil {
			return nil, errors.WithTag(err, "id", e.ID)
		}
		opts = append(opts, errors.WithSeverity(sev))
	}
	if e.Transient {
		opts = append(opts, errors.Transient())
	}
	if e.UserFacing {
		opts = append(opts, errors.UserFacing())
	}
	if e.ValidationType != "" {
		vt, err := b.resolve(e.ValidationType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, errors.WithValidationType(vt))
	}
	return errors.NewType(def, opts...), nil
}

func (e *Entry) hasErrorFields() bool {
	return e.Severity != "" || e.Transient || e.UserFacing || e.ValidationType != ""
}
