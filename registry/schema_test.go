package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/outcome/errors"
)

func violationPaths(t *testing.T, err error) []string {
	t.Helper()
	info := errors.From(err)
	require.NotNil(t, info)

	var paths []string
	for _, in := range info.InnerErrors() {
		path, ok := in.Metadata().Get("path")
		require.True(t, ok, "violation without path: %v", in)
		paths = append(paths, path.(string))
	}
	return paths
}

func TestValidateCatalog(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateCatalog([]byte(ordersCatalog)))
	})

	t.Run("blank document", func(t *testing.T) {
		assert.NoError(t, validateCatalog([]byte("  \n")))
	})

	t.Run("no definitions", func(t *testing.T) {
		assert.NoError(t, validateCatalog([]byte("definitions: []\n")))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := validateCatalog([]byte("definitions:\n  - id: A\n    colour: blue\n"))
		require.Error(t, err)
		assert.Same(t, errors.InvalidArgument, errors.GetType(err))
		assert.Contains(t, violationPaths(t, err), "definitions.0.colour")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := validateCatalog([]byte("definitions:\n  - id: A\n    transient: sometimes\n"))
		require.Error(t, err)
		assert.Contains(t, violationPaths(t, err), "definitions.0.transient")
	})

	t.Run("empty id", func(t *testing.T) {
		err := validateCatalog([]byte("definitions:\n  - id: \"\"\n"))
		require.Error(t, err)
		assert.Contains(t, violationPaths(t, err), "definitions.0.id")
	})

	t.Run("reports every violation", func(t *testing.T) {
		err := validateCatalog([]byte("definitions:\n  - id: A\n    colour: blue\n  - id: B\n    size: 3\n"))
		require.Error(t, err)
		paths := violationPaths(t, err)
		assert.Contains(t, paths, "definitions.0.colour")
		assert.Contains(t, paths, "definitions.1.size")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := validateCatalog([]byte("definitions: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode definition catalog")
	})
}
