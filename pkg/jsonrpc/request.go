package jsonrpc

import "encoding/json"

/*
Request is the wire shape of a single call: a method name and an ordered
sequence of positional parameters. This protocol is a simplified single-call
variant; there is no version marker, no request ID, and no batching.
*/
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"` // must decode to an array
}

/*
NewRequest builds a request envelope from a method name and positional
arguments, ready to be sent by a client.
*/
func NewRequest(method string, args ...any) (Request, error) {
	if args == nil {
		args = []any{}
	}

	params, err := json.Marshal(args)

	if err != nil {
		return Request{}, err
	}

	return Request{Method: method, Params: params}, nil
}
