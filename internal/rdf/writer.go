package rdf

import (
	"fmt"
	"io"
)

// Writer serializes an ordered sequence of triples.
// Implementations report their own errors; callers must propagate
// them unwrapped.
type Writer interface {
	WriteTriples(w io.Writer, triples []Triple, prefixes Prefixes) error
}

// TurtleWriter emits a Turtle-flavored serialization: a prefix block
// followed by one abbreviated triple per line.
type TurtleWriter struct{}

// NewTurtleWriter creates a TurtleWriter.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{}
}

// WriteTriples writes the prefix declarations and then every triple in
// the order given.
func (t *TurtleWriter) WriteTriples(w io.Writer, triples []Triple, prefixes Prefixes) error {
	for _, label := range prefixes.Labels() {
		if _, err := fmt.Fprintf(w, "@prefix %s: <%s> .\n", label, prefixes[label]); err != nil {
			return err
		}
	}

	if len(prefixes) > 0 && len(triples) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, tr := range triples {
		_, err := fmt.Fprintf(w, "%s %s %s .\n",
			abbreviateSubject(tr.Subject, prefixes),
			prefixes.Abbreviate(tr.Predicate),
			prefixes.Abbreviate(tr.Object),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// abbreviateSubject keeps document-relative fragment subjects bare.
func abbreviateSubject(subject string, prefixes Prefixes) string {
	if len(subject) > 0 && subject[0] == '#' {
		return "<" + subject + ">"
	}

	return prefixes.Abbreviate(subject)
}

// Ensure TurtleWriter implements Writer.
var _ Writer = (*TurtleWriter)(nil)
