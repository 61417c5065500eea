// Package qs converts between structured query parameters and URL query strings.
//
// Several independent parameter sets can share one query string through
// namespacing: each set's keys are prefixed with "<namespace>." so that two
// widgets on the same page never clobber each other's state. A defaults
// scheme keeps the address bar short: fields whose value matches the
// configured default are elided from the user-facing URL and restored on
// decode.
//
// # Core types
//
//   - Config: immutable description of a namespace, its default parameters,
//     and which fields coerce to integers
//   - Params: field name → Value, the UI-facing decoded representation
//   - Value: a tagged scalar (string or int) or an ordered multi-value
//
// # Operations
//
//	cfg, _ := qs.NewConfig("o")
//	params, _ := qs.Parse(cfg, "o.page=2&o.name=foo")
//	// params: {page:2, page_size:5, order_by:"name", name:"foo"}
//
//	qs.EncodeNonDefault(cfg, params) // "o.name=foo" - defaults elided
//	qs.EncodeFull(params)            // full, unnamespaced, for API requests
//
// Filter interactions go through the parameter algebra:
//
//	params = qs.Add(cfg, params, qs.Params{"status": qs.String("open")})
//	params = qs.Remove(cfg, params, qs.Params{"status": qs.String("open")})
//
// Adding to a non-default field accumulates values into a growing
// multi-value sequence; adding to a default field replaces it outright.
// Default fields can never be removed, only reverted to their defaults.
//
// Every operation is pure: given the same inputs it returns the same output
// and never mutates its arguments, so all operations are safe to call
// concurrently without coordination.
package qs
