package jsonrpc

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/theapemachine/dispatch-go/pkg/errors"
)

/*
RemoteError is the client-side reconstruction of a received error envelope.
It carries the remote code and message, and a stack trace that joins the
remote context (when the envelope's data is a stack string) above the local
call context, so a failure can be debugged from either side.
*/
type RemoteError struct {
	Code    int
	Message string

	remoteStack string
	localStack  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

/*
Stack returns the remote stack trace (if the envelope carried one) followed
by the stack captured where the envelope was resolved.
*/
func (e *RemoteError) Stack() string {
	if e.remoteStack == "" {
		return e.localStack
	}

	return e.remoteStack + "\n" + e.localStack
}

/*
Resolve inverts a response envelope: it returns the result value, or a
*RemoteError reconstructed from the error object. An envelope carrying
neither field resolves to the zero value with no error, treated as a
successful call with no result.
*/
func Resolve[T any](resp Response) (T, error) {
	var zero T

	if resp.Error != nil {
		remote := &RemoteError{
			Code:       resp.Error.Code,
			Message:    resp.Error.Message,
			localStack: string(debug.Stack()),
		}

		if remote.Code == 0 {
			remote.Code = errors.InternalErrorCode
		}

		if stack, ok := resp.Error.Data.(string); ok {
			remote.remoteStack = stack
		}

		return zero, remote
	}

	if resp.Result == nil {
		return zero, nil
	}

	if v, ok := resp.Result.(T); ok {
		return v, nil
	}

	// The result came off the wire as generic JSON; marshal it back into the
	// caller's type, the same way the HTTP client rehydrates results.
	buf, err := json.Marshal(resp.Result)

	if err != nil {
		return zero, err
	}

	if err := json.Unmarshal(buf, &zero); err != nil {
		return zero, err
	}

	return zero, nil
}
