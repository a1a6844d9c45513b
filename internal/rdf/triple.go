package rdf

// Triple is a single subject/predicate/object statement.
// All three positions hold resource identifiers (IRIs or fragment
// identifiers); literal objects do not occur in ACL documents.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// NewTriple creates a triple.
func NewTriple(subject, predicate, object string) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

// GroupBySubject buckets triples by their subject identifier,
// preserving the relative order of triples within each bucket.
// The returned slice of subjects records first-seen order so callers
// can iterate groups deterministically.
func GroupBySubject(triples []Triple) (map[string][]Triple, []string) {
	groups := make(map[string][]Triple)

	var order []string

	for _, t := range triples {
		if _, seen := groups[t.Subject]; !seen {
			order = append(order, t.Subject)
		}

		groups[t.Subject] = append(groups[t.Subject], t)
	}

	return groups, order
}
