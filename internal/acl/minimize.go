package acl

import (
	"sort"
	"strings"
)

// Minimize collapses rules with identical applicability (the same
// accessTo targets and the same default/defaultForNew status) into
// one rule with unioned agents and permissions. Rules with different
// targets are never merged. OtherQuads of merged rules are all kept on
// the surviving rule. The input is not mutated beyond the surviving
// rules themselves; a new entry collection is returned in first-seen
// order.
func Minimize(entries []RuleEntry) []RuleEntry {
	merged := make(map[string]int, len(entries))

	var out []RuleEntry

	for _, entry := range entries {
		key := applicabilityKey(entry.Rule)

		idx, ok := merged[key]
		if !ok {
			merged[key] = len(out)
			out = append(out, entry)

			continue
		}

		out[idx].Rule.merge(entry.Rule)

		// Prefer a real subject identifier over a missing one.
		if out[idx].Subject == "" && entry.Subject != "" {
			out[idx].Subject = entry.Subject
		}
	}

	return out
}

// applicabilityKey builds the merge key: the sorted accessTo set plus
// the default and defaultForNew values. Two rules merge only when
// these match exactly.
func applicabilityKey(r *Rule) string {
	targets := make([]string, len(r.AccessTo))
	copy(targets, r.AccessTo)
	sort.Strings(targets)

	return strings.Join(targets, "\x00") + "\x01" + r.Default + "\x01" + r.DefaultForNew
}
