package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querykit/querykit/pkg/qs"
)

func encodeCmd() *cobra.Command {
	var (
		flags configFlags
		elide bool
	)

	cmd := &cobra.Command{
		Use:   "encode key=value [key=value...]",
		Short: "Encode key=value pairs into a query string",
		Long: `Encode key=value arguments into a query string.

Repeated keys become a multi-value field in argument order. By default the
output is the full, unnamespaced form sent to API backends; with --elide
the output is the namespaced address-bar form with default-valued fields
removed.

Examples:
  querykit encode -n o page=2 name=foo
  querykit encode -n o --elide page=1 name=foo
  querykit encode -n o status=open status=stale`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.build()
			if err != nil {
				return err
			}
			params, err := argsToParams(cfg, args)
			if err != nil {
				return err
			}

			if elide {
				fmt.Fprintln(cmd.OutOrStdout(), qs.EncodeNonDefault(cfg, params))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), qs.EncodeFull(params))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&elide, "elide", false, "Namespace keys and elide default-valued fields")
	return cmd
}
