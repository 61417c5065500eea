package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/querykit/querykit/pkg/qs"
)

// configFlags are the flags shared by every subcommand that needs a
// qs.Config.
type configFlags struct {
	namespace string
	defaults  []string
	intFields []string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "Query namespace (required)")
	cmd.Flags().StringArrayVar(&f.defaults, "default", nil, "Default field as key=value (repeatable; replaces the standard defaults)")
	cmd.Flags().StringArrayVar(&f.intFields, "int", nil, "Field parsed as an integer (repeatable; replaces the standard set)")
	cmd.MarkFlagRequired("namespace")
}

func (f *configFlags) build() (*qs.Config, error) {
	// The standard integer set applies when --int is omitted; flag values
	// must coerce the same way the resulting config will.
	intFields := f.intFields
	if len(intFields) == 0 {
		intFields = []string{"page", "page_size"}
	}

	var opts []qs.Option
	if len(f.defaults) > 0 {
		defaults := make(qs.Params, len(f.defaults))
		for _, pair := range f.defaults {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("--default %q: want key=value", pair)
			}
			defaults[k] = coerce(k, v, intFields)
		}
		opts = append(opts, qs.WithDefaults(defaults))
	}
	if len(f.intFields) > 0 {
		opts = append(opts, qs.WithIntegerFields(f.intFields...))
	}
	return qs.NewConfig(f.namespace, opts...)
}

// argsToParams builds a parameter object from key=value arguments.
// Repeated keys accumulate into a multi-value in argument order.
func argsToParams(cfg *qs.Config, args []string) (qs.Params, error) {
	params := make(qs.Params, len(args))
	for _, pair := range args {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q: want key=value", pair)
		}
		val := qs.String(v)
		if cfg.IsIntegerField(k) {
			if n, err := strconv.Atoi(v); err == nil {
				val = qs.Int(n)
			}
		}
		if prev, seen := params[k]; seen {
			params[k] = prev.Append(val)
		} else {
			params[k] = val
		}
	}
	return params, nil
}

// coerce turns a flag value into a qs.Value, honoring the integer field list.
func coerce(key, value string, intFields []string) qs.Value {
	if slices.Contains(intFields, key) {
		if n, err := strconv.Atoi(value); err == nil {
			return qs.Int(n)
		}
	}
	return qs.String(value)
}

// sortedKeys returns the fields of params in lexicographic order.
func sortedKeys(params qs.Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
