package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theapemachine/dispatch-go/pkg/errors"
)

const document = `{
	"type": "object",
	"properties": {
		"add": {
			"type": "array",
			"items": [{"type": "number"}, {"type": "number"}],
			"minItems": 2,
			"maxItems": 2
		}
	}
}`

func TestNewRejectsInvalidDocument(t *testing.T) {
	_, err := New([]byte(`{"type": 42}`))
	assert.Error(t, err)
}

func TestValidateAccepts(t *testing.T) {
	v, err := New([]byte(document))
	require.NoError(t, err)

	assert.NoError(t, v.Validate("add", []any{float64(2), float64(3)}))
}

func TestValidateUnconstrainedMethodPasses(t *testing.T) {
	v, err := New([]byte(document))
	require.NoError(t, err)

	assert.NoError(t, v.Validate("ping", []any{}))
}

func TestValidateRejectsWithReadablePaths(t *testing.T) {
	v, err := New([]byte(document))
	require.NoError(t, err)

	violation := v.Validate("add", []any{"x", float64(3)})
	require.Error(t, violation)
	assert.True(t, errors.IsRequestError(violation))

	rpcErr := errors.AsRpcError(violation)
	assert.True(t, strings.HasPrefix(rpcErr.Message, "Validation error:"))
	assert.Contains(t, rpcErr.Message, "params")
	// The method-scoped synthetic root must not leak through.
	assert.NotContains(t, rpcErr.Message, "add.0")
	assert.Nil(t, rpcErr.Data)
}

func TestValidateSummarizesEveryViolation(t *testing.T) {
	v, err := New([]byte(document))
	require.NoError(t, err)

	violation := v.Validate("add", []any{"x", "y"})
	require.Error(t, violation)

	message := errors.AsRpcError(violation).Message
	assert.GreaterOrEqual(t, strings.Count(message, "params"), 2)
}

func TestValidateRejectsWrongArity(t *testing.T) {
	v, err := New([]byte(document))
	require.NoError(t, err)

	violation := v.Validate("add", []any{float64(2)})
	require.Error(t, violation)
	assert.Contains(t, errors.AsRpcError(violation).Message, "params")
}
