package registry

import (
	"bytes"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/jmgilman/go/outcome/errors"
)

// CatalogSchema is the CUE schema every catalog document must satisfy.
// Definitions are closed, so unknown fields are rejected.
const CatalogSchema = `
#Entry: {
	id:               string & !=""
	name?:            string
	version?:         string
	description?:     string
	category?:        string
	relations?:       [...string]
	kind?:            "definition" | "error"
	severity?:        string
	transient?:       bool
	user_facing?:     bool
	validation_type?: string
}

#Catalog: {
	definitions?: [...#Entry]
}
`

// validateCatalog checks a YAML catalog document against CatalogSchema.
//
// A failure is an InvalidArgument error with one inner error per schema
// violation, each tagged with the "path" of the offending field.
func validateCatalog(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract("catalog.yaml", data)
	if err != nil {
		return errors.Wrap(err, errors.InvalidArgument, "failed to decode definition catalog")
	}

	cctx := cuecontext.New()
	schema := cctx.CompileString(CatalogSchema, cue.Filename("catalog.cue")).
		LookupPath(cue.ParsePath("#Catalog"))
	if err := schema.Err(); err != nil {
		return errors.Wrap(err, errors.InternalError, "definition catalog schema is invalid")
	}

	doc := cctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return errors.Wrap(err, errors.InvalidArgument, "failed to decode definition catalog")
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true), cue.All()); err != nil {
		return schemaViolation(err)
	}
	return nil
}

func schemaViolation(err error) error {
	var issues []errors.ErrorInfo
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, errors.WithTag(
			errors.New(errors.InvalidArgument, fmt.Sprintf(format, args...)),
			"path", strings.Join(e.Path(), "."),
		))
	}
	return errors.WithInner(
		errors.Wrap(err, errors.InvalidArgument, "definition catalog does not match schema"),
		issues...,
	)
}
