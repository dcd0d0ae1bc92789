package errors

import "reflect"

// Flatten returns every error in the given trees as one sequence.
//
// The walk is depth-first and pre-order: a parent precedes its inner errors,
// which keep their order. A node reachable through more than one parent
// appears once. Nodes are compared by identity, so copies made by WithTag,
// WithMetadata or WithInner are kept alongside the error they were derived
// from even though they share its instance id. Nil entries are skipped.
//
// Example:
//
//	for _, e := range errors.Flatten(err) {
//	    log.Printf("%s: %s", e.Definition().ID(), e.Message())
//	}
func Flatten(errs ...ErrorInfo) []ErrorInfo {
	var out []ErrorInfo
	seen := make(map[ErrorInfo]bool)

	var visit func(ErrorInfo)
	visit = func(e ErrorInfo) {
		if e == nil {
			return
		}
		if reflect.TypeOf(e).Comparable() {
			if seen[e] {
				return
			}
			seen[e] = true
		}
		out = append(out, e)
		for _, in := range e.InnerErrors() {
			visit(in)
		}
	}

	for _, e := range errs {
		visit(e)
	}
	return out
}
