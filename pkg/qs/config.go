package qs

import (
	"errors"
	"strings"
)

// Sentinel errors for configuration construction, the only operation in this
// package that can fail outright.
var (
	// ErrEmptyNamespace is returned when a Config is built without a namespace.
	ErrEmptyNamespace = errors.New("qs: namespace must not be empty")

	// ErrInvalidNamespace is returned when a namespace contains the '.'
	// separator, which would make it indistinguishable from a namespaced key.
	ErrInvalidNamespace = errors.New("qs: namespace must not contain '.'")
)

// Config describes one namespace's parameter set: its default values and
// which fields coerce to integers. A Config is immutable after construction;
// the defaults are deep-copied in and cloned out, so no caller can alter the
// behavior observed at another call site.
type Config struct {
	namespace  string
	defaults   Params
	intFields  map[string]struct{}
	dateFields map[string]struct{}
}

// Option configures a Config under construction.
type Option func(*configOptions)

type configOptions struct {
	defaults   Params
	intFields  []string
	dateFields []string
}

// WithDefaults sets the default parameters. Fields whose value equals its
// default are elided from the user-facing URL and restored on decode.
// A nil map leaves the standard defaults in place.
func WithDefaults(defaults Params) Option {
	return func(o *configOptions) {
		if defaults != nil {
			o.defaults = defaults
		}
	}
}

// WithIntegerFields sets the fields whose decoded values are parsed as
// base-10 integers.
func WithIntegerFields(fields ...string) Option {
	return func(o *configOptions) {
		o.intFields = fields
	}
}

// WithDateFields sets the fields reserved for date parsing. Date parsing is
// not implemented; the set is carried so configurations declaring it survive
// a round-trip through construction unchanged.
func WithDateFields(fields ...string) Option {
	return func(o *configOptions) {
		o.dateFields = fields
	}
}

// defaultOptions returns the standard pagination defaults used when options
// are omitted: page 1, page size 5, ordering by name, with page and
// page_size coerced to integers.
func defaultOptions() configOptions {
	return configOptions{
		defaults: Params{
			"page":      Int(1),
			"page_size": Int(5),
			"order_by":  String("name"),
		},
		intFields:  []string{"page", "page_size"},
		dateFields: []string{"modified", "created"},
	}
}

// NewConfig builds an immutable Config for the given namespace.
//
// The namespace must be non-empty and must not contain '.', the separator
// between namespace and field in an encoded key. These are the only
// validation failures in the package; every later operation is total.
//
// Example:
//
//	cfg, err := qs.NewConfig("orders",
//	    qs.WithDefaults(qs.Params{"page": qs.Int(1), "status": qs.String("open")}),
//	    qs.WithIntegerFields("page"),
//	)
func NewConfig(namespace string, opts ...Option) (*Config, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}
	if strings.Contains(namespace, ".") {
		return nil, ErrInvalidNamespace
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Config{
		namespace:  namespace,
		defaults:   options.defaults.Clone(),
		intFields:  make(map[string]struct{}, len(options.intFields)),
		dateFields: make(map[string]struct{}, len(options.dateFields)),
	}
	for _, f := range options.intFields {
		c.intFields[f] = struct{}{}
	}
	for _, f := range options.dateFields {
		c.dateFields[f] = struct{}{}
	}
	return c, nil
}

// Namespace returns the configured namespace.
func (c *Config) Namespace() string {
	return c.namespace
}

// Defaults returns a copy of the default parameters. Mutating the result
// never affects the Config.
func (c *Config) Defaults() Params {
	return c.defaults.Clone()
}

// IsIntegerField reports whether the field's decoded values are parsed as
// integers.
func (c *Config) IsIntegerField(name string) bool {
	_, ok := c.intFields[name]
	return ok
}

// IsDateField reports whether the field is reserved for date parsing.
func (c *Config) IsDateField(name string) bool {
	_, ok := c.dateFields[name]
	return ok
}
