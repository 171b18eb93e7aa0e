package dispatch

import (
	"github.com/charmbracelet/log"
)

/*
Hooks are optional lifecycle callbacks observed around each call. They are
side-effecting only and never alter control flow: OnCall fires after the
method has been resolved but before validation, OnSuccess after the handler
returns, and OnError when a failure is classified as unexpected.
Request-format failures never reach OnError.
*/
type Hooks struct {
	OnCall    func(method string, params []any)
	OnSuccess func(method string, result any, params []any)
	OnError   func(method string, err error, params []any)
}

/*
LogHooks returns hooks that report each lifecycle event through the default
logger, the integration point for centralized logging without coupling the
dispatcher to any specific mechanism.
*/
func LogHooks() Hooks {
	return Hooks{
		OnCall: func(method string, params []any) {
			log.Debug("rpc call", "method", method, "params", params)
		},
		OnSuccess: func(method string, result any, params []any) {
			log.Debug("rpc success", "method", method, "result", result)
		},
		OnError: func(method string, err error, params []any) {
			log.Error("rpc failure", "method", method, "error", err, "params", params)
		},
	}
}
