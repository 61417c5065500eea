package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "querykit",
		Short: "Inspect and build namespaced query strings",
		Long: `querykit decodes and encodes namespaced URL query strings.

Several independent parameter sets can share one query string through
"<namespace>.<field>" prefixes, and fields matching their configured
defaults are elided from the user-facing URL. The commands here let you
debug that scheme from the shell:

  querykit parse  -n o "o.page=2&o.name=foo"
  querykit encode -n o --elide page=2 name=foo
  querykit diff   -n o "o.page=2&o.name=foo"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		parseCmd(),
		encodeCmd(),
		diffCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
