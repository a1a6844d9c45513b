package rdf

import "sort"

// Prefixes maps a namespace prefix label to its base IRI.
type Prefixes map[string]string

// DefaultPrefixes returns the namespace table used for ACL documents.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		"acl":  "http://www.w3.org/ns/auth/acl#",
		"foaf": "http://xmlns.com/foaf/0.1/",
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	}
}

// Abbreviate rewrites an IRI using the longest matching prefix,
// returning it unchanged if no prefix applies.
func (p Prefixes) Abbreviate(iri string) string {
	best := ""
	bestBase := ""

	for label, base := range p {
		if len(base) > len(bestBase) && len(iri) > len(base) && iri[:len(base)] == base {
			best = label
			bestBase = base
		}
	}

	if best == "" {
		return "<" + iri + ">"
	}

	return best + ":" + iri[len(bestBase):]
}

// Labels returns the prefix labels in sorted order for deterministic output.
func (p Prefixes) Labels() []string {
	labels := make([]string, 0, len(p))

	for label := range p {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}
