package qs

import (
	"net/url"
	"sort"
	"strings"
)

// EncodeFull renders params as a query string with no namespacing: one
// "key=value" pair per scalar, one pair per element of a Multi in element
// order, keys and values percent-encoded, pairs joined with '&'. Null
// values are dropped. Keys are emitted in ascending lexicographic order so
// the output is deterministic. Empty or nil params yield "".
//
// Field names here are already unnamespaced; this is the form sent to API
// backends.
func EncodeFull(p Params) string {
	return render(p)
}

// EncodeNonDefault renders params for the address bar: keys are prefixed
// with the config's namespace and fields whose value equals the configured
// default are elided, so the URL shows only what the user changed while
// still keeping independent widgets' parameters apart.
//
// A field survives elision when it has no default at all, or its value
// differs from the default under the elision equality rule (see the
// package documentation for the one-directional sequence containment this
// rule inherits). Surviving keys render exactly as in EncodeFull.
func EncodeNonDefault(c *Config, p Params) string {
	nsParams := namespaced(c.namespace, p)
	nsDefaults := namespaced(c.namespace, c.defaults)

	kept := make(Params, len(nsParams))
	for k, v := range nsParams {
		if def, ok := nsDefaults[k]; ok && equalToDefault(v, def) {
			continue
		}
		kept[k] = v
	}
	return render(kept)
}

// render sorts, percent-encodes and joins non-null params.
func render(p Params) string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v.IsNull() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		escKey := url.QueryEscape(k)
		for _, item := range p[k].scalars() {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escKey)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(item.Text()))
		}
	}
	return b.String()
}
