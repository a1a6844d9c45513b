package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedTriple is returned when an input line cannot be parsed.
var ErrMalformedTriple = errors.New("malformed triple")

// Parse reads a line-oriented triple serialization: one
// `<subject> <predicate> <object> .` statement per line, with optional
// `@prefix label: <iri> .` declarations and `#` comment lines.
// Prefixed names (`acl:mode`) are expanded using the declared prefixes
// plus the defaults.
func Parse(r io.Reader) ([]Triple, error) {
	prefixes := DefaultPrefixes()

	var triples []Triple

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@prefix") {
			if err := parsePrefix(line, prefixes); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			continue
		}

		triple, err := parseStatement(line, prefixes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		triples = append(triples, triple)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return triples, nil
}

// parsePrefix handles `@prefix label: <iri> .` declarations.
func parsePrefix(line string, prefixes Prefixes) error {
	fields := strings.Fields(line)
	if len(fields) < 3 || !strings.HasSuffix(fields[1], ":") {
		return fmt.Errorf("%w: bad prefix declaration", ErrMalformedTriple)
	}

	label := strings.TrimSuffix(fields[1], ":")

	iri := fields[2]
	if !strings.HasPrefix(iri, "<") || !strings.HasSuffix(iri, ">") {
		return fmt.Errorf("%w: prefix IRI must be bracketed", ErrMalformedTriple)
	}

	prefixes[label] = strings.Trim(iri, "<>")

	return nil
}

// parseStatement handles one `subject predicate object .` line.
func parseStatement(line string, prefixes Prefixes) (Triple, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Triple{}, fmt.Errorf("%w: expected 3 terms", ErrMalformedTriple)
	}

	subject, err := expandTerm(fields[0], prefixes)
	if err != nil {
		return Triple{}, err
	}

	predicate, err := expandTerm(fields[1], prefixes)
	if err != nil {
		return Triple{}, err
	}

	object, err := expandTerm(fields[2], prefixes)
	if err != nil {
		return Triple{}, err
	}

	return NewTriple(subject, predicate, object), nil
}

// expandTerm resolves a bracketed IRI or prefixed name to a full
// identifier. Fragment references (`<#owner>`) stay document-relative.
func expandTerm(term string, prefixes Prefixes) (string, error) {
	if strings.HasPrefix(term, "<") && strings.HasSuffix(term, ">") {
		return strings.Trim(term, "<>"), nil
	}

	colon := strings.Index(term, ":")
	if colon < 0 {
		return "", fmt.Errorf("%w: %q is neither an IRI nor a prefixed name", ErrMalformedTriple, term)
	}

	label := term[:colon]
	local := term[colon+1:]

	// `rdf:type` sugar and absolute IRIs like http://... share the
	// colon syntax; an unknown label with a // local part is treated
	// as an absolute IRI.
	base, ok := prefixes[label]
	if !ok {
		if strings.HasPrefix(local, "//") {
			return term, nil
		}

		return "", fmt.Errorf("%w: unknown prefix %q", ErrMalformedTriple, label)
	}

	return base + local, nil
}
