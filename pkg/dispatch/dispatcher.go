package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/theapemachine/dispatch-go/pkg/errors"
	"github.com/theapemachine/dispatch-go/pkg/jsonrpc"
	"github.com/theapemachine/dispatch-go/pkg/registry"
	"github.com/theapemachine/dispatch-go/pkg/schema"
)

/*
Dispatcher routes incoming call envelopes to registered method handlers. It
is constructed once from a method registry, an optional params validator,
and optional lifecycle hooks, all treated as immutable afterwards; Handle
may be called from arbitrarily many goroutines at once.
*/
type Dispatcher struct {
	registry  *registry.Registry
	validator *schema.Validator
	hooks     Hooks
}

/*
New creates a dispatcher. validator may be nil to skip parameter validation.
*/
func New(reg *registry.Registry, validator *schema.Validator, hooks Hooks) *Dispatcher {
	return &Dispatcher{
		registry:  reg,
		validator: validator,
		hooks:     hooks,
	}
}

/*
Handle processes one raw request envelope and always produces a response
envelope: every failure path terminates in an error envelope, never in an
error return or a panic escaping to the caller.

Request-format failures (malformed body, unknown method, schema violations)
produce an error object without diagnostic data and are not reported through
OnError; they are client-originated, not unexpected. Everything else is
wrapped with the internal error code and a stack trace, and reported through
OnError exactly once.
*/
func (d *Dispatcher) Handle(ctx context.Context, raw json.RawMessage) jsonrpc.Response {
	method, params, reqErr := parseRequest(raw)

	if reqErr != nil {
		return jsonrpc.NewError(reqErr)
	}

	handler, found := d.registry.Resolve(method)

	if !found {
		return jsonrpc.NewError(errors.NewRequestError(
			errors.MethodNotFoundCode, "Method not found %s", method,
		))
	}

	if d.hooks.OnCall != nil {
		d.hooks.OnCall(method, params)
	}

	if d.validator != nil {
		if err := d.validator.Validate(method, params); err != nil {
			if errors.IsRequestError(err) {
				return jsonrpc.NewError(errors.AsRpcError(err))
			}

			// The validator itself failed to run; that is our fault, not
			// the caller's.
			return d.unexpected(method, params, err)
		}
	}

	result, err := invoke(ctx, handler, params)

	if err != nil {
		return d.unexpected(method, params, err)
	}

	if d.hooks.OnSuccess != nil {
		d.hooks.OnSuccess(method, result, params)
	}

	return jsonrpc.NewResult(result)
}

// invoke calls the handler with the params spread positionally, converting a
// panic into an ordinary error so it can be mapped like any other failure.
func invoke(
	ctx context.Context, handler registry.Handler, params []any,
) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return handler(ctx, params...)
}

// unexpected maps a non-request-format failure into an error envelope,
// reporting it through OnError first.
func (d *Dispatcher) unexpected(
	method string, params []any, err error,
) jsonrpc.Response {
	if d.hooks.OnError != nil {
		if method == "" {
			method = "unknown-method"
		}

		if params == nil {
			params = []any{}
		}

		d.hooks.OnError(method, err, params)
	}

	return jsonrpc.NewError(errors.NewInternalError(err))
}

// parseRequest validates the raw envelope shape: an object carrying a
// non-empty method and an array of params.
func parseRequest(raw json.RawMessage) (string, []any, *errors.RpcError) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", nil, errors.NewRequestError(
			errors.InvalidRequestCode, "Invalid request: body must be an object",
		)
	}

	var req jsonrpc.Request

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return "", nil, errors.NewRequestError(
			errors.InvalidRequestCode, "Invalid request: %v", err,
		)
	}

	if req.Method == "" {
		return "", nil, errors.NewRequestError(
			errors.InvalidRequestCode, "Invalid request: missing method",
		)
	}

	rawParams := bytes.TrimSpace(req.Params)

	if len(rawParams) == 0 || bytes.Equal(rawParams, []byte("null")) {
		return "", nil, errors.NewRequestError(
			errors.InvalidRequestCode, "Invalid request: missing params",
		)
	}

	if rawParams[0] != '[' {
		return "", nil, errors.NewRequestError(
			errors.InvalidParamsCode, "Invalid request: params must be an array",
		)
	}

	var params []any

	if err := json.Unmarshal(rawParams, &params); err != nil {
		return "", nil, errors.NewRequestError(
			errors.InvalidParamsCode, "Invalid request: %v", err,
		)
	}

	return req.Method, params, nil
}
