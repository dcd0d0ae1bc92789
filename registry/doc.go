// Package registry maps type definition ids to their definitions.
//
// A Registry is the only discovery mechanism for definitions: there is no
// reflection-based scanning. Definitions are registered once, typically at
// startup, and looked up by id afterwards.
//
// # Registration Policy
//
// Registration is append-only. Registering a second definition under an id
// that is already taken is rejected with an errors.AlreadyExists error and
// logged at warn level; the original definition stays in place. Registering
// the very same definition value again is a no-op.
//
// # Lookup
//
//	def, ok := r.TryGetByID("ORDER_NOT_FOUND")
//	def, err := r.GetByID("ORDER_NOT_FOUND")         // NotFound on miss
//	et, err := registry.Get[*errors.ErrorType](r, id) // InvalidCast on mismatch
//
// # Catalogs
//
// Definitions can also be declared in YAML:
//
//	definitions:
//	  - id: ORDER_ERRORS
//	    name: OrderErrors
//	  - id: ORDER_NOT_FOUND
//	    name: OrderNotFound
//	    version: 1.2.0
//	    category: ORDER_ERRORS
//	    kind: error
//	    severity: warning
//	    user_facing: true
//
// Entries may reference each other, the canonical error types and categories,
// or (through RegisterCatalog) anything already registered.
//
// Every document is checked against the CUE schema in CatalogSchema before
// it is decoded, so unknown fields and wrongly typed values are reported
// with their path. RegisterCatalogDir loads every catalog file of a
// directory on a billy filesystem:
//
//	defs, err := r.RegisterCatalogDir(osfs.New("/etc/app"), "catalogs")
package registry
