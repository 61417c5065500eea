package qs

import "strings"

// namespaced returns a copy of p with every key rewritten to
// "<namespace>.<field>". With an empty namespace the keys pass through
// unchanged. The namespaced form is an internal working representation used
// to align params against defaults; it never escapes the package.
func namespaced(namespace string, p Params) Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[namespacedKey(namespace, k)] = v.clone()
	}
	return out
}

// denamespaced strips the "<namespace>." prefix from every key. Keys that
// do not carry the prefix pass through unchanged.
func denamespaced(namespace string, p Params) Params {
	out := make(Params, len(p))
	for k, v := range p {
		if field, ok := matchKey(namespace, k); ok {
			out[field] = v.clone()
		} else {
			out[k] = v.clone()
		}
	}
	return out
}

// namespacedKey joins namespace and field into the encoded key form.
func namespacedKey(namespace, field string) string {
	if namespace == "" {
		return field
	}
	return namespace + "." + field
}

// matchKey reports whether the raw key belongs to the namespace, returning
// the field remainder. With a non-empty namespace the key must carry the
// "<namespace>." prefix; with an empty namespace the key matches only if it
// contains no '.' at all, so namespaced keys of other parameter sets are
// never swallowed.
func matchKey(namespace, key string) (string, bool) {
	if namespace == "" {
		if strings.Contains(key, ".") {
			return "", false
		}
		return key, true
	}
	field, ok := strings.CutPrefix(key, namespace+".")
	if !ok || field == "" {
		return "", false
	}
	return field, true
}

// equalToDefault implements the elision equality rule: a current value is
// considered equal to its default when both are scalars of the same kind
// with identical payload, or both are sequences and every element of the
// default appears somewhere in the current value. The sequence check is a
// one-directional containment, not set equality: default [a] against
// current [a, b] counts as equal, so the current value is elided. That
// asymmetry is kept for compatibility with existing URLs.
// Values of differing kinds are never equal.
func equalToDefault(current, def Value) bool {
	if current.kind == KindMulti && def.kind == KindMulti {
		for _, d := range def.items {
			if !containsScalar(current.items, d) {
				return false
			}
		}
		return true
	}
	if current.kind != def.kind {
		return false
	}
	return current.Equal(def)
}

// containsScalar reports whether want appears among the given scalars.
func containsScalar(items []Value, want Value) bool {
	for _, it := range items {
		if it.Equal(want) {
			return true
		}
	}
	return false
}
