package qs

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrNotANumber reports a non-numeric value on an integer-coerced field.
// Parse wraps it with the field name and offending text; match with
// errors.Is.
var ErrNotANumber = errors.New("qs: non-numeric value for integer field")

// Parse decodes a raw query string into params for the config's namespace.
//
// Parse is total: it always returns a complete, usable Params. An empty or
// all-whitespace query yields a copy of the config defaults. Otherwise a
// leading '?' is stripped, the string is split on '&', and each piece on its
// first '='. Pairs whose key does not carry the "<namespace>." prefix are
// silently dropped - they belong to some other parameter set sharing the
// URL. Keys and values are percent-decoded best-effort: a malformed escape
// keeps the raw text rather than failing.
//
// Repeated keys accumulate into a Multi in first-seen order. Fields in the
// config's integer set are parsed as base-10 integers; a value that does
// not parse stays a string scalar and the failure is reported in the
// returned error (all failures joined), matchable with
// errors.Is(err, ErrNotANumber). The params are complete even when the
// error is non-nil.
//
// After accumulation the config defaults are merged beneath the parsed
// values: the result carries every default key and every explicitly present
// key, with explicit values winning.
func Parse(c *Config, query string) (Params, error) {
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		return c.Defaults(), nil
	}

	parsed := make(Params)
	var errs []error
	for _, pair := range strings.Split(query, "&") {
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		field, ok := matchKey(c.namespace, rawKey)
		if !ok {
			continue
		}
		field = unescape(field)

		val := String(unescape(rawVal))
		if c.IsIntegerField(field) {
			if n, err := strconv.Atoi(val.Str()); err == nil {
				val = Int(n)
			} else {
				errs = append(errs, fmt.Errorf("field %q: value %q: %w", field, val.Str(), ErrNotANumber))
			}
		}

		if prev, seen := parsed[field]; seen {
			parsed[field] = prev.Append(val)
		} else {
			parsed[field] = val
		}
	}

	result := c.Defaults()
	for k, v := range parsed {
		result[k] = v
	}
	return result, errors.Join(errs...)
}

// unescape percent-decodes s, keeping the raw text when the escaping is
// malformed. Hand-edited URLs must never fail to decode.
func unescape(s string) string {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return out
}
