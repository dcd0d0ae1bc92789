package metadata

import (
	"maps"
	"slices"
)

// Builder accumulates tag edits before producing an immutable Metadata.
//
// A Builder is not safe for concurrent use. It is meant to be created,
// filled and built at a single call site.
type Builder struct {
	keys   []string
	values map[string]any
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string]any)}
}

// BuilderFrom returns a Builder pre-populated with the tags of m.
func BuilderFrom(m Metadata) *Builder {
	return &Builder{
		keys:   slices.Clone(m.keys),
		values: maps.Clone(m.values),
	}
}

// AddTag sets key to value, replacing any existing value.
func (b *Builder) AddTag(key string, value any) *Builder {
	mustValidKey(key)
	if b.values == nil {
		b.values = make(map[string]any)
	}
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

// AddTags sets every entry of tags. New keys are appended in sorted order.
func (b *Builder) AddTags(tags map[string]any) *Builder {
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		b.AddTag(k, tags[k])
	}
	return b
}

// Merge copies all tags of m into the builder, overwriting existing keys.
func (b *Builder) Merge(m Metadata) *Builder {
	for k, v := range m.All() {
		b.AddTag(k, v)
	}
	return b
}

// RemoveTag removes key if present.
func (b *Builder) RemoveTag(key string) *Builder {
	mustValidKey(key)
	return b.RemoveTags(key)
}

// RemoveTags removes every given key that is present.
func (b *Builder) RemoveTags(keys ...string) *Builder {
	for _, k := range keys {
		mustValidKey(k)
	}
	return b.RemoveTagsWhere(func(k string) bool {
		return slices.Contains(keys, k)
	})
}

// RemoveTagsWhere removes every tag whose key satisfies predicate.
func (b *Builder) RemoveTagsWhere(predicate func(key string) bool) *Builder {
	if predicate == nil {
		panic("metadata: nil predicate")
	}
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool {
		if predicate(k) {
			delete(b.values, k)
			return true
		}
		return false
	})
	return b
}

// UpdateTags replaces the value of every tag whose key satisfies predicate
// with the value returned by update.
//
// Example:
//
//	b.UpdateTags(metadata.MustKeyGlob("secret.*"), func(string, any) any {
//	    return "[redacted]"
//	})
func (b *Builder) UpdateTags(predicate func(key string) bool, update func(key string, value any) any) *Builder {
	if predicate == nil || update == nil {
		panic("metadata: nil predicate or update function")
	}
	for _, k := range b.keys {
		if predicate(k) {
			b.values[k] = update(k, b.values[k])
		}
	}
	return b
}

// Len returns the number of tags accumulated so far.
func (b *Builder) Len() int {
	return len(b.keys)
}

// Build returns an immutable snapshot of the builder's current tags. The
// builder stays usable; later edits do not affect snapshots already built.
func (b *Builder) Build() Metadata {
	if len(b.keys) == 0 {
		return Empty
	}
	return Metadata{
		keys:   slices.Clone(b.keys),
		values: maps.Clone(b.values),
	}
}
