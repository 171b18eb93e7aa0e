package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theapemachine/dispatch-go/pkg/dispatch"
	"github.com/theapemachine/dispatch-go/pkg/service"
)

var (
	quietFlag bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the dispatcher over stdio",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := newStore(cmd.Context())

			if err != nil {
				return err
			}

			validator, err := newValidator()

			if err != nil {
				return err
			}

			hooks := dispatch.LogHooks()

			if quietFlag {
				hooks = dispatch.Hooks{}
			}

			dispatcher := dispatch.New(newRegistry(kv), validator, hooks)

			return service.NewStdio(dispatcher).Run(
				cmd.Context(), os.Stdin, os.Stdout,
			)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVarP(
		&quietFlag, "quiet", "q", false, "Disable lifecycle logging",
	)
}

var longServe = `
Serve the built-in method registry over stdio: one request envelope per line
on stdin, one response envelope per line on stdout.

Examples:
  # Dispatch a stream of requests
  echo '{"method":"ping","params":[]}' | dispatch-go serve
`
