package metadata

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Metadata is an immutable collection of key-value tags.
//
// The zero value is an empty Metadata ready for use. Enumeration follows
// insertion order; equality ignores it.
type Metadata struct {
	keys   []string
	values map[string]any
}

// Empty is the empty Metadata.
var Empty = Metadata{}

// New creates Metadata from alternating key/value arguments.
//
// Example:
//
//	md := metadata.New("project", "api", "exit_code", 1)
//
// New panics if kv has an odd length or a key is not a non-empty string.
func New(kv ...any) Metadata {
	if len(kv)%2 != 0 {
		panic("metadata: odd number of key/value arguments")
	}

	b := NewBuilder()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("metadata: key at position %d is %T, not string", i, kv[i]))
		}
		b.AddTag(key, kv[i+1])
	}
	return b.Build()
}

// Single creates Metadata holding exactly one tag.
func Single(key string, value any) Metadata {
	return Empty.WithTag(key, value)
}

// FromMap creates Metadata from a map. The map is copied; keys are enumerated
// in sorted order since map iteration order is unspecified.
func FromMap(m map[string]any) Metadata {
	return Empty.WithTags(m)
}

// Len returns the number of tags.
func (m Metadata) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether m holds no tags.
func (m Metadata) IsEmpty() bool {
	return len(m.keys) == 0
}

// Keys returns the tag keys in insertion order.
func (m Metadata) Keys() []string {
	return slices.Clone(m.keys)
}

// Values returns the tag values in key insertion order.
func (m Metadata) Values() []any {
	values := make([]any, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// ContainsKey reports whether a tag with the given key exists.
func (m Metadata) ContainsKey(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the raw value stored under key.
func (m Metadata) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// All iterates over the tags in insertion order.
func (m Metadata) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the tags as a map.
// Returns nil if m is empty.
func (m Metadata) Map() map[string]any {
	if len(m.keys) == 0 {
		return nil
	}
	return maps.Clone(m.values)
}

// Equal reports whether m and other hold the same keys with deeply equal
// values, regardless of insertion order.
func (m Metadata) Equal(other Metadata) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for k, v := range m.values {
		ov, ok := other.values[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// WithTag returns a new Metadata with key set to value. An existing key keeps
// its enumeration position.
func (m Metadata) WithTag(key string, value any) Metadata {
	mustValidKey(key)

	values := make(map[string]any, len(m.values)+1)
	maps.Copy(values, m.values)
	keys := m.keys
	if _, exists := values[key]; !exists {
		keys = append(slices.Clone(m.keys), key)
	}
	values[key] = value

	return Metadata{keys: keys, values: values}
}

// WithTags returns a new Metadata with every entry of tags set. New keys are
// appended in sorted order.
func (m Metadata) WithTags(tags map[string]any) Metadata {
	if len(tags) == 0 {
		return m
	}

	b := BuilderFrom(m)
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		b.AddTag(k, tags[k])
	}
	return b.Build()
}

// WithoutTag returns a new Metadata without key. Removing a missing key
// returns an equal Metadata.
func (m Metadata) WithoutTag(key string) Metadata {
	mustValidKey(key)
	return m.WithoutTags(key)
}

// WithoutTags returns a new Metadata without any of the given keys.
func (m Metadata) WithoutTags(keys ...string) Metadata {
	return BuilderFrom(m).RemoveTags(keys...).Build()
}

// Merge returns a new Metadata holding the tags of both m and other. Values
// from other win on conflicting keys.
func (m Metadata) Merge(other Metadata) Metadata {
	if other.IsEmpty() {
		return m
	}
	if m.IsEmpty() {
		return other
	}
	return BuilderFrom(m).Merge(other).Build()
}

// Filter returns the subset of m whose keys satisfy keep.
func (m Metadata) Filter(keep func(key string) bool) Metadata {
	if keep == nil {
		panic("metadata: nil predicate")
	}
	return BuilderFrom(m).RemoveTagsWhere(func(k string) bool { return !keep(k) }).Build()
}

// String renders the tags as "{k1=v1, k2=v2}" in insertion order.
func (m Metadata) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, m.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// TryGetValue returns the value stored under key if it exists and holds a T.
// A missing key or a value of another type yields the zero T and false.
//
// Example:
//
//	if attempt, ok := metadata.TryGetValue[int](md, "attempt"); ok {
//	    // ...
//	}
func TryGetValue[T any](m Metadata, key string) (T, bool) {
	var zero T
	raw, ok := m.values[key]
	if !ok {
		return zero, false
	}
	if raw == nil {
		// A nil tag only satisfies interface types such as any or error.
		return zero, reflect.TypeFor[T]().Kind() == reflect.Interface
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// GetValueOrDefault returns the value stored under key if it exists and holds
// a T, otherwise def.
func GetValueOrDefault[T any](m Metadata, key string, def T) T {
	if v, ok := TryGetValue[T](m, key); ok {
		return v
	}
	return def
}

func mustValidKey(key string) {
	if strings.TrimSpace(key) == "" {
		panic("metadata: empty key")
	}
}
