package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querykit/querykit/pkg/qs"
)

func parseCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "parse <query-string>",
		Short: "Decode a query string into its parameter object",
		Long: `Decode a raw query string against a namespace.

Pairs outside the namespace are dropped, defaults fill in beneath the
explicit fields, and integer fields are coerced. Coercion failures are
reported on stderr but never fail the decode.

Examples:
  querykit parse -n o "o.page=2&o.name=foo"
  querykit parse -n o --default limit=20 --int limit "o.limit=50"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.build()
			if err != nil {
				return err
			}

			params, err := qs.Parse(cfg, args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", err)
			}

			for _, k := range sortedKeys(params) {
				for _, item := range params[k].Items() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, item.Text())
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
