// Package metadata provides an immutable, string-keyed bag of typed values.
//
// Metadata rides alongside every code, error, context and envelope in this
// module. It is a value type: every operation that changes the set of tags
// returns a new Metadata and leaves the receiver untouched, so a Metadata can
// be shared freely between goroutines.
//
// # Reading
//
// Values are stored as any. Use the generic helpers to read them back with a
// type check that never panics:
//
//	md := metadata.New("tenant", "acme", "attempt", 2)
//
//	attempt, ok := metadata.TryGetValue[int](md, "attempt") // 2, true
//	_, ok = metadata.TryGetValue[string](md, "attempt")     // "", false
//	region := metadata.GetValueOrDefault(md, "region", "eu") // "eu"
//
// # Updating
//
//	md2 := md.WithTag("region", "us").WithoutTag("attempt")
//	merged := md.Merge(md2) // md2 wins on conflicting keys
//
// # Building
//
// A Builder accumulates edits, including bulk conditional ones, before a
// single Build:
//
//	isHTTP := metadata.MustKeyGlob("http.*")
//	md := metadata.BuilderFrom(existing).
//	    RemoveTagsWhere(isHTTP).
//	    AddTag("phase", "test").
//	    Build()
//
// Build may be called any number of times; each call returns an independent
// snapshot.
//
// # Invalid Keys
//
// Keys must be non-empty and not only whitespace. Passing an invalid key or a
// nil function is a programming error and panics, the same way
// context.WithValue panics on a nil key.
package metadata
