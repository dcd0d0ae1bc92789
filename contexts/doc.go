// Package contexts provides hierarchical, correlation-bearing execution
// contexts.
//
// A Context is an immutable snapshot describing the scope an operation runs
// in: its Type (for example an inbound HTTP request or a background job), a
// correlation id shared by everything done on behalf of the same request,
// metadata, and an optional parent. Parents form a singly linked chain that
// can be walked for tracing.
//
// Roots get a freshly generated correlation id unless one is supplied.
// Children inherit their parent's id unless it is overridden:
//
//	root := contexts.CreateRoot(HTTPRequest)
//	child := contexts.CreateChild(root, DatabaseCall)
//	child.CorrelationID() == root.CorrelationID() // true
//
// # Propagation
//
// The current Context travels with a context.Context:
//
//	ctx = contexts.NewContext(ctx, child)
//	c, ok := contexts.FromContext(ctx)
//
// An Accessor additionally holds the current Context for one logical flow
// and restores the previous one when a scope ends, including on panics:
//
//	restore := accessor.Use(child)
//	defer restore()
package contexts
