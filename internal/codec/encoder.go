package codec

import (
	"fmt"
	"io"

	"github.com/serroba/webacl/internal/acl"
	"github.com/serroba/webacl/internal/rdf"
	"github.com/serroba/webacl/internal/vocab"
)

// Encoder expands Document rules back into canonical triples.
// The synthesized-identifier counter is per instance; use a fresh
// Encoder per document to keep identifiers independent.
type Encoder struct {
	counter int
}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode walks the document's rules in iteration order and returns the
// full triple sequence, with the document's other quads appended last.
// Callers wanting a minimal output must invoke doc.MinimizeRules()
// first; Encode never mutates the document.
func (e *Encoder) Encode(doc *acl.Document) []rdf.Triple {
	taken := doc.Subjects()

	var triples []rdf.Triple

	for _, entry := range doc.Rules() {
		subject := entry.Subject
		if subject == "" {
			subject = e.nextSubject(taken)
		}

		triples = append(triples, encodeRule(subject, entry.Rule)...)
	}

	return append(triples, doc.OtherQuads()...)
}

// EncodeTo serializes the encoded document through the given writer.
// Writer errors are returned as-is.
func (e *Encoder) EncodeTo(w io.Writer, doc *acl.Document, writer rdf.Writer, prefixes rdf.Prefixes) error {
	return writer.WriteTriples(w, e.Encode(doc), prefixes)
}

// nextSubject synthesizes a fresh fragment identifier, skipping any
// already present in the document or handed out earlier by this
// Encoder.
func (e *Encoder) nextSubject(taken map[string]struct{}) string {
	for {
		e.counter++

		subject := fmt.Sprintf("#authorization-%d", e.counter)
		if _, exists := taken[subject]; !exists {
			taken[subject] = struct{}{}

			return subject
		}
	}
}

// encodeRule expands one rule into its canonical triple set: type
// first, then agents, accessTo, default, defaultForNew, modes.
// A degenerate rule still yields its type triple; filtering those is
// the caller's concern.
func encodeRule(subject string, rule *acl.Rule) []rdf.Triple {
	triples := []rdf.Triple{
		rdf.NewTriple(subject, vocab.PredType, vocab.TypeAuthorization),
	}

	for _, webID := range rule.Agents.WebIDs {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredAgent, webID))
	}

	for _, group := range rule.Agents.Groups {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredAgentGroup, group))
	}

	if rule.Agents.Public {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredAgentClass, vocab.ClassPublic))
	}

	if rule.Agents.Authenticated {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredAgentClass, vocab.ClassAuthenticated))
	}

	for _, target := range rule.AccessTo {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredAccessTo, target))
	}

	if rule.Default != "" {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredDefault, rule.Default))
	}

	if rule.DefaultForNew != "" {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredDefaultForNew, rule.DefaultForNew))
	}

	for _, mode := range rule.Permissions {
		triples = append(triples, rdf.NewTriple(subject, vocab.PredMode, mode))
	}

	// Unrecognized triples ride along verbatim.
	return append(triples, rule.OtherQuads...)
}
