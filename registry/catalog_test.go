package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/typedef"
)

const ordersCatalog = `
definitions:
  - id: ORDER_NOT_FOUND
    name: OrderNotFound
    version: 1.2.0
    description: The order does not exist.
    category: ORDER_ERRORS
    relations: [RETRYABLE]
    kind: error
    severity: warning
    user_facing: true
  - id: ORDER_ERRORS
    name: OrderErrors
    category: CLIENT_ERROR
  - id: RETRYABLE
  - id: ORDER_LINE_INVALID
    name: OrderLineInvalid
    kind: error
    validation_type: GENERAL_VALIDATION
`

func TestLoadCatalog(t *testing.T) {
	defs, err := LoadCatalog(strings.NewReader(ordersCatalog))
	require.NoError(t, err)
	require.Len(t, defs, 4)

	// Document order is kept even though ORDER_NOT_FOUND is built last.
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.ID())
	}
	require.Equal(t, []string{"ORDER_NOT_FOUND", "ORDER_ERRORS", "RETRYABLE", "ORDER_LINE_INVALID"}, ids)

	nf, ok := defs[0].(*errors.ErrorType)
	require.True(t, ok)
	require.Equal(t, "OrderNotFound", nf.Name())
	require.Equal(t, "1.2.0", nf.Version().String())
	require.Equal(t, "The order does not exist.", nf.Description())
	require.Equal(t, errors.SeverityWarning, nf.Severity())
	require.True(t, nf.IsUserFacing())
	require.False(t, nf.IsTransient())
	require.Same(t, defs[1], nf.Category())
	require.True(t, typedef.HasRelation(nf, "RETRYABLE"))
	require.True(t, typedef.InCategory(nf, "CLIENT_ERROR"))

	// Name defaults to the id.
	require.Equal(t, "RETRYABLE", defs[2].Name())

	invalid := defs[3].(*errors.ErrorType)
	require.True(t, invalid.IsValidation())
	require.Same(t, errors.GeneralValidation, invalid.ValidationType())
}

func TestLoadCatalog_Empty(t *testing.T) {
	defs, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, defs)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType *errors.ErrorType
		contains string
	}{
		{
			name:     "malformed yaml",
			input:    "definitions: [",
			wantType: errors.InvalidArgument,
			contains: "decode",
		},
		{
			name:     "unknown field",
			input:    "definitions:\n  - id: A\n    colour: blue\n",
			wantType: errors.InvalidArgument,
			contains: "does not match schema",
		},
		{
			name:     "missing id",
			input:    "definitions:\n  - name: A\n",
			wantType: errors.InvalidArgument,
			contains: "does not match schema",
		},
		{
			name:     "blank id",
			input:    "definitions:\n  - id: \"  \"\n",
			wantType: errors.InvalidArgument,
			contains: "no id",
		},
		{
			name:     "unknown top-level key",
			input:    "types: []\n",
			wantType: errors.InvalidArgument,
			contains: "does not match schema",
		},
		{
			name:     "duplicate id",
			input:    "definitions:\n  - id: A\n  - id: A\n",
			wantType: errors.AlreadyExists,
			contains: `"A"`,
		},
		{
			name:     "unknown reference",
			input:    "definitions:\n  - id: A\n    category: GHOST\n",
			wantType: errors.NotFound,
			contains: "GHOST",
		},
		{
			name:     "cycle",
			input:    "definitions:\n  - id: A\n    category: B\n  - id: B\n    category: A\n",
			wantType: errors.InvalidState,
			contains: "cycle",
		},
		{
			name:     "bad version",
			input:    "definitions:\n  - id: A\n    version: not-a-version\n",
			wantType: errors.InvalidArgument,
			contains: `"A"`,
		},
		{
			name:     "bad severity",
			input:    "definitions:\n  - id: A\n    kind: error\n    severity: loud\n",
			wantType: errors.InvalidArgument,
			contains: "loud",
		},
		{
			name:     "unknown kind",
			input:    "definitions:\n  - id: A\n    kind: widget\n",
			wantType: errors.InvalidArgument,
			contains: "does not match schema",
		},
		{
			name:     "error fields without kind",
			input:    "definitions:\n  - id: A\n    transient: true\n",
			wantType: errors.InvalidArgument,
			contains: "error fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := LoadCatalog(strings.NewReader(tt.input))
			require.Nil(t, defs)
			require.Error(t, err)
			require.Same(t, tt.wantType, errors.GetType(err))
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestRegistry_RegisterCatalog(t *testing.T) {
	r := New()
	billing := typedef.Must("BILLING", "Billing")
	require.NoError(t, r.Register(billing))

	defs, err := r.RegisterCatalog(strings.NewReader(`
definitions:
  - id: INVOICE_OVERDUE
    category: BILLING
    kind: error
    severity: critical
`))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	got, err := Get[*errors.ErrorType](r, "INVOICE_OVERDUE")
	require.NoError(t, err)
	require.Same(t, billing, got.Category())
	require.Equal(t, errors.SeverityCritical, got.Severity())
}

func TestRegistry_RegisterCatalogConflict(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(typedef.Must("A", "A")))

	_, err := r.RegisterCatalog(strings.NewReader("definitions:\n  - id: A\n  - id: B\n"))
	require.Same(t, errors.AlreadyExists, errors.GetType(err))
	require.False(t, r.Contains("B"))
}
