package jsonrpc

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theapemachine/dispatch-go/pkg/errors"
)

func TestResolveResult(t *testing.T) {
	got, err := Resolve[string](NewResult("pong"))

	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}

func TestResolveResultRehydratesCompoundValues(t *testing.T) {
	type syncState struct {
		Current uint64 `json:"current"`
		Highest uint64 `json:"highest"`
	}

	// Simulate a result that crossed the wire and decoded as generic JSON.
	var envelope Response
	require.NoError(t, json.Unmarshal(
		[]byte(`{"result":{"current":7,"highest":12}}`), &envelope,
	))

	got, err := Resolve[syncState](envelope)

	require.NoError(t, err)
	assert.Equal(t, syncState{Current: 7, Highest: 12}, got)
}

func TestResolveEmptyEnvelope(t *testing.T) {
	// Neither result nor error: treated as a successful call with no result.
	got, err := Resolve[any](Response{})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveError(t *testing.T) {
	envelope := NewError(&errors.RpcError{Code: -32000, Message: "task not found"})

	_, err := Resolve[string](envelope)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, -32000, remote.Code)
	assert.Equal(t, "task not found", remote.Message)
	assert.Contains(t, remote.Stack(), "goroutine")
}

func TestResolveErrorDefaultCode(t *testing.T) {
	_, err := Resolve[string](NewError(&errors.RpcError{Message: "nameless"}))

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, errors.InternalErrorCode, remote.Code)
}

func TestResolveErrorJoinsRemoteAndLocalStack(t *testing.T) {
	envelope := NewError(&errors.RpcError{
		Code:    -32603,
		Message: "kaboom",
		Data:    "remote goroutine 1 [running]:\nmain.boom()",
	})

	_, err := Resolve[string](envelope)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)

	stack := remote.Stack()
	assert.Contains(t, stack, "main.boom()")
	assert.Contains(t, stack, "jsonrpc.Resolve")
	// Remote context reads above the local context.
	assert.Less(
		t,
		strings.Index(stack, "main.boom()"),
		strings.Index(stack, "jsonrpc.Resolve"),
	)
}
