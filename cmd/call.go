package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theapemachine/dispatch-go/pkg/dispatch"
)

var (
	callCmd = &cobra.Command{
		Use:   "call <request>",
		Short: "Dispatch a single request envelope",
		Long:  longCall,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := newStore(cmd.Context())

			if err != nil {
				return err
			}

			validator, err := newValidator()

			if err != nil {
				return err
			}

			dispatcher := dispatch.New(
				newRegistry(kv), validator, dispatch.LogHooks(),
			)

			resp := dispatcher.Handle(
				cmd.Context(), json.RawMessage(args[0]),
			)

			out, err := json.Marshal(resp)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(callCmd)
}

var longCall = `
Dispatch a single request envelope against the built-in method registry and
print the response envelope.

Examples:
  dispatch-go call '{"method":"ping","params":[]}'
  dispatch-go call '{"method":"add","params":[2,3]}'
`
