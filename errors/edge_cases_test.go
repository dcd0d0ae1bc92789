package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/jmgilman/go/outcome/typedef"
	"github.com/stretchr/testify/require"
)

func TestEdge_EmptyMessage(t *testing.T) {
	err := New(NotFound, "")
	require.Equal(t, "[NOT_FOUND] ", err.Error())
}

func TestEdge_VeryLongMessage(t *testing.T) {
	msg := strings.Repeat("x", 10000)
	err := New(InternalError, msg)
	require.Equal(t, msg, err.Message())
}

func TestEdge_DeepNesting(t *testing.T) {
	var err ErrorInfo = New(NotFound, "leaf")
	for i := 0; i < 100; i++ {
		err = Wrap(err, InternalError, "layer")
	}

	require.Len(t, Flatten(err), 101)
	require.True(t, IsType(err, NotFound))
}

func TestEdge_CustomType(t *testing.T) {
	def := typedef.Must("PAYMENT_DECLINED", "Payment declined",
		typedef.WithCategory(CategoryClient))
	declined := NewType(def, UserFacing(), WithSeverity(SeverityWarning))

	err := New(declined, "card expired")

	require.True(t, IsUserFacing(err))
	require.Equal(t, SeverityWarning, SeverityOf(err))
	require.True(t, typedef.InCategory(err.Definition(), CategoryClient.ID()))
}

func TestEdge_ForeignErrorWithMetadataChain(t *testing.T) {
	cause := stderrors.New("io")
	err := WithTag(WithTag(cause, "a", 1), "b", 2)

	require.Equal(t, cause, err.Cause())
	require.Equal(t, 2, err.Metadata().Len())
}
