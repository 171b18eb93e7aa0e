package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestError(t *testing.T) {
	err := NewRequestError(MethodNotFoundCode, "Method not found %s", "ping")

	assert.Equal(t, MethodNotFoundCode, err.Code)
	assert.Equal(t, "Method not found ping", err.Message)
	assert.Nil(t, err.Data)
	assert.True(t, IsRequestError(err))
}

func TestNewRequestErrorDefaultCode(t *testing.T) {
	err := NewRequestError(0, "bad request")

	assert.Equal(t, InternalErrorCode, err.Code)
}

func TestNewInternalError(t *testing.T) {
	err := NewInternalError(fmt.Errorf("kaboom"))

	assert.Equal(t, InternalErrorCode, err.Code)
	assert.Equal(t, "kaboom", err.Message)
	assert.False(t, IsRequestError(err))

	stack, ok := err.Data.(string)
	assert.True(t, ok)
	assert.Contains(t, stack, "kaboom")
	assert.Contains(t, stack, "goroutine")
}

func TestAsRpcError(t *testing.T) {
	reqErr := NewRequestError(InvalidParamsCode, "bad params")
	assert.Same(t, reqErr, AsRpcError(reqErr))

	wrapped := fmt.Errorf("outer: %w", reqErr)
	assert.Same(t, reqErr, AsRpcError(wrapped))

	plain := AsRpcError(fmt.Errorf("boom"))
	assert.Equal(t, InternalErrorCode, plain.Code)
	assert.NotNil(t, plain.Data)
}

func TestWithMessagef(t *testing.T) {
	formatted := ErrInternal.WithMessagef("store blew up: %s", "timeout")

	assert.Equal(t, "store blew up: timeout", formatted.Message)
	assert.Equal(t, "Internal error", ErrInternal.Message)
	assert.Equal(t, ErrInternal.Code, formatted.Code)
}
