package jsonrpc

import (
	"github.com/theapemachine/dispatch-go/pkg/errors"
)

/*
Response is the envelope returned for every call. It carries either a result
or an error, never both.
*/
type Response struct {
	Result any              `json:"result,omitempty"`
	Error  *errors.RpcError `json:"error,omitempty"`
}

/*
NewResult wraps a handler's return value in a success envelope.
*/
func NewResult(v any) Response {
	return Response{Result: v}
}

/*
NewError wraps an error object in a failure envelope.
*/
func NewError(e *errors.RpcError) Response {
	if e == nil {
		e = errors.ErrInternal
	}

	return Response{Error: e}
}
