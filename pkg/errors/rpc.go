package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

/*
RpcError represents the error object carried by a response envelope.
*/
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`

	// requestFormat marks errors caused by a malformed or invalid incoming
	// call, as opposed to failures inside a handler. The flag never crosses
	// the wire; receivers distinguish the two kinds by the presence of Data.
	requestFormat bool
}

/*
Error implements the error interface for RpcError.
*/
func (e *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Reserved JSON-RPC codes (-32700 .. -32000). The dispatcher only ever emits
// InternalErrorCode unless an error site supplies a more specific one.
const (
	ParseErrorCode     = -32700
	InvalidRequestCode = -32600
	MethodNotFoundCode = -32601
	InvalidParamsCode  = -32602
	InternalErrorCode  = -32603
)

// ErrInternal is the generic internal error, used when no more specific
// error object is available.
var ErrInternal = &RpcError{Code: InternalErrorCode, Message: "Internal error"}

/*
NewRequestError creates a request-format error: the incoming message itself
was malformed, named an unknown method, or failed parameter validation. It
never carries diagnostic data and is never treated as unexpected.
*/
func NewRequestError(code int, format string, args ...any) *RpcError {
	if code == 0 {
		code = InternalErrorCode
	}

	return &RpcError{
		Code:          code,
		Message:       fmt.Sprintf(format, args...),
		requestFormat: true,
	}
}

/*
NewInternalError wraps any unexpected failure with the fixed internal error
code, the original message, and the current goroutine stack as diagnostic
data. Go errors carry no stack of their own, so it is captured here, at the
point where the failure is classified as unexpected.
*/
func NewInternalError(err error) *RpcError {
	return &RpcError{
		Code:    InternalErrorCode,
		Message: err.Error(),
		Data:    fmt.Sprintf("%s\n%s", err.Error(), debug.Stack()),
	}
}

/*
AsRpcError converts any error into an *RpcError suitable for a response
envelope. Errors that are not already RpcErrors are classified as unexpected.
*/
func AsRpcError(err error) *RpcError {
	var rpcErr *RpcError

	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	return NewInternalError(err)
}

/*
IsRequestError reports whether err was caused by a malformed or invalid
incoming call rather than a failure inside a handler.
*/
func IsRequestError(err error) bool {
	var rpcErr *RpcError

	if errors.As(err, &rpcErr) {
		return rpcErr.requestFormat
	}

	return false
}

// WithMessagef creates a *copy* of an RpcError with a formatted message.
// It does not modify the original error variable.
func (e *RpcError) WithMessagef(format string, args ...any) *RpcError {
	newErr := *e
	newErr.Message = fmt.Sprintf(format, args...)
	return &newErr
}
