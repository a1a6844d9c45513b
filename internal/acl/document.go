package acl

import "github.com/serroba/webacl/internal/rdf"

// RuleEntry pairs a rule with its subject identifier. Subject is empty
// for rules built programmatically; the encoder synthesizes one.
type RuleEntry struct {
	Subject string
	Rule    *Rule
}

// Document aggregates the rules of one ACL resource plus any triples
// that belong to no authorization subject.
type Document struct {
	// Resource is the URL of the resource this ACL describes.
	// Context only; never serialized as a rule field.
	Resource string

	entries   []RuleEntry
	bySubject map[string]*Rule

	otherQuads []rdf.Triple
}

// NewDocument creates an empty document for the given resource URL.
func NewDocument(resource string) *Document {
	return &Document{
		Resource:  resource,
		bySubject: make(map[string]*Rule),
	}
}

// AddRule adds a rule under the given subject identifier. An empty
// subject is allowed; such rules receive a synthesized identifier on
// encode. Adding a second rule under an existing subject folds its
// grants into the existing rule.
func (d *Document) AddRule(subject string, rule *Rule) {
	if subject != "" {
		if existing, ok := d.bySubject[subject]; ok {
			existing.merge(rule)

			return
		}

		d.bySubject[subject] = rule
	}

	d.entries = append(d.entries, RuleEntry{Subject: subject, Rule: rule})
}

// Rule returns the rule stored under subject, or nil.
func (d *Document) Rule(subject string) *Rule {
	return d.bySubject[subject]
}

// Rules returns the rule entries in insertion order. The slice is a
// copy; the rules are shared.
func (d *Document) Rules() []RuleEntry {
	entries := make([]RuleEntry, len(d.entries))
	copy(entries, d.entries)

	return entries
}

// Len returns the number of rules.
func (d *Document) Len() int {
	return len(d.entries)
}

// AddOther appends triples that belong to no authorization subject.
func (d *Document) AddOther(triples ...rdf.Triple) {
	d.otherQuads = append(d.otherQuads, triples...)
}

// OtherQuads returns the document's unattached triples.
func (d *Document) OtherQuads() []rdf.Triple {
	return d.otherQuads
}

// Subjects returns the set of subject identifiers currently in use,
// including those of other quads. The encoder consults this to avoid
// synthesizing a colliding identifier.
func (d *Document) Subjects() map[string]struct{} {
	subjects := make(map[string]struct{}, len(d.entries))

	for _, entry := range d.entries {
		if entry.Subject != "" {
			subjects[entry.Subject] = struct{}{}
		}
	}

	for _, quad := range d.otherQuads {
		subjects[quad.Subject] = struct{}{}
	}

	return subjects
}

// MinimizeRules replaces the document's rules with their minimized
// form. Invoke once before encoding.
func (d *Document) MinimizeRules() {
	d.entries = Minimize(d.entries)

	d.bySubject = make(map[string]*Rule, len(d.entries))
	for _, entry := range d.entries {
		if entry.Subject != "" {
			d.bySubject[entry.Subject] = entry.Rule
		}
	}
}
