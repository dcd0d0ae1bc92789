package metadata

import (
	"fmt"

	"github.com/gobwas/glob"
)

// keySeparator splits hierarchical keys such as "http.request.id".
const keySeparator = '.'

// KeyGlob compiles pattern into a key predicate for RemoveTagsWhere,
// UpdateTags and Filter. Segments are separated by '.', so "http.*" matches
// "http.method" but not "http.request.id"; use "http.**" to cross segments.
// Supports *, ?, [abc] and {a,b} syntax.
func KeyGlob(pattern string) (func(key string) bool, error) {
	g, err := glob.Compile(pattern, keySeparator)
	if err != nil {
		return nil, fmt.Errorf("metadata: invalid key pattern %q: %w", pattern, err)
	}
	return g.Match, nil
}

// MustKeyGlob is like KeyGlob but panics if pattern does not compile.
func MustKeyGlob(pattern string) func(key string) bool {
	match, err := KeyGlob(pattern)
	if err != nil {
		panic(err)
	}
	return match
}
