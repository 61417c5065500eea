package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querykit/querykit/pkg/qs"
)

func diffCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "diff <query-string>",
		Short: "Show which fields deviate from their defaults",
		Long: `Decode a query string and compare every field against the configured
defaults. Fields with no default are marked new; fields the elision rule
would keep are marked changed.

Example:
  querykit diff -n o "o.page=2&o.name=foo"`,
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

			defaults := cfg.Defaults()
			elided := qs.EncodeNonDefault(cfg, params)
			kept, perr := qs.Parse(cfg, elided)
			if perr != nil {
				return perr
			}

			changed := 0
			for _, k := range sortedKeys(params) {
				def, hasDefault := defaults[k]
				switch {
				case !hasDefault:
					fmt.Fprintf(cmd.OutOrStdout(), "new      %s=%s\n", k, params[k].Text())
					changed++
				case !kept[k].Equal(def):
					fmt.Fprintf(cmd.OutOrStdout(), "changed  %s=%s (default %s)\n", k, params[k].Text(), def.Text())
					changed++
				}
			}
			if changed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all fields at their defaults")
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
