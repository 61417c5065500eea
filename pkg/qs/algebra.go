package qs

import "sort"

// Add merges toAdd into old under the config's defaults, returning a new
// Params. Neither argument is mutated.
//
// The merge distinguishes default fields from filter fields:
//
//   - A default field present in toAdd is overwritten outright - paging and
//     ordering controls replace their value on every interaction.
//   - A non-default field present in both old and toAdd accumulates: a
//     scalar is promoted to a two-element Multi, an existing Multi is
//     appended to, preserving order. Repeated Add calls are how
//     multi-select filters grow one selection at a time.
//   - Fields present only in old pass through; fields new in toAdd are
//     taken verbatim.
func Add(c *Config, old, toAdd Params) Params {
	nsOld := namespaced(c.namespace, old)
	nsAdd := namespaced(c.namespace, toAdd)
	nsDefaults := namespaced(c.namespace, c.defaults)

	// Split old into default-keyed and non-default-keyed subsets.
	oldDefaults := make(Params)
	oldFilters := make(Params)
	for k, v := range nsOld {
		if _, ok := nsDefaults[k]; ok {
			oldDefaults[k] = v
		} else {
			oldFilters[k] = v
		}
	}

	// Accumulate into existing filter fields; others pass through.
	merged := make(Params, len(oldFilters))
	for k, oldVal := range oldFilters {
		if addVal, ok := nsAdd[k]; ok {
			merged[k] = oldVal.Append(addVal)
		} else {
			merged[k] = oldVal
		}
	}

	// Compose, last write wins: old default values, the filter merge, then
	// every toAdd key not consumed by the merge (default keys and brand-new
	// keys), taken verbatim.
	result := make(Params, len(nsOld)+len(nsAdd))
	for k, v := range oldDefaults {
		result[k] = v
	}
	for k, v := range merged {
		result[k] = v
	}
	for k, v := range nsAdd {
		if _, accumulated := oldFilters[k]; accumulated {
			continue
		}
		result[k] = v
	}
	return denamespaced(c.namespace, result)
}

// Remove drops exact (field, value) pairs from old, returning a new Params.
// Neither argument is mutated.
//
// Old values are flattened one entry per scalar - removing one element of a
// Multi keeps the remaining elements in order. The values in toRemove are
// matched exactly and are not flattened. Survivors re-collapse in
// first-seen order: a single survivor per field becomes a scalar again.
// A default field whose entries are all removed reverts to its configured
// default rather than disappearing; default fields can never be erased.
func Remove(c *Config, old, toRemove Params) Params {
	type entry struct {
		field string
		val   Value
	}

	// Deterministic field walk; order within a field follows the sequence.
	fields := make([]string, 0, len(old))
	for k := range old {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	var removals []entry
	for k, v := range toRemove {
		removals = append(removals, entry{field: k, val: v.clone()})
	}

	removed := func(field string, val Value) bool {
		for _, r := range removals {
			if r.field == field && r.val.Equal(val) {
				return true
			}
		}
		return false
	}

	result := make(Params, len(old))
	for _, field := range fields {
		for _, item := range old[field].scalars() {
			if removed(field, item) {
				continue
			}
			if prev, seen := result[field]; seen {
				result[field] = prev.Append(item)
			} else {
				result[field] = item
			}
		}
	}

	for k, def := range c.defaults {
		if _, ok := result[k]; !ok {
			result[k] = def.clone()
		}
	}
	return result
}
