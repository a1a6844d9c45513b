// Package codec translates between flat triple collections and the
// structured ACL rule model, in both directions.
package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/serroba/webacl/internal/acl"
	"github.com/serroba/webacl/internal/rdf"
	"github.com/serroba/webacl/internal/vocab"
)

// ErrUnsupportedAgentClass is returned when an acl:agentClass triple
// names an object outside the two recognized classes.
var ErrUnsupportedAgentClass = errors.New("unsupported agentClass value")

// Decoder turns subject-grouped triples into Document rules.
type Decoder struct{}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies every subject group and populates doc: groups
// carrying an acl:Authorization type triple become rules, everything
// else lands in the document's other quads. The call is all-or-nothing:
// on error doc is left untouched.
//
// order fixes the iteration order over groups; subjects absent from it
// are visited afterwards in sorted order.
func (d *Decoder) Decode(doc *acl.Document, groups map[string][]rdf.Triple, order []string) error {
	type decoded struct {
		subject string
		rule    *acl.Rule
	}

	var (
		rules  []decoded
		others []rdf.Triple
	)

	for _, subject := range subjectOrder(groups, order) {
		triples := groups[subject]

		if !isAuthorization(triples) {
			others = append(others, triples...)

			continue
		}

		rule, err := decodeRule(triples)
		if err != nil {
			return fmt.Errorf("subject %s: %w", subject, err)
		}

		rules = append(rules, decoded{subject: subject, rule: rule})
	}

	// Commit only after every group decoded cleanly.
	for _, r := range rules {
		doc.AddRule(r.subject, r.rule)
	}

	doc.AddOther(others...)

	return nil
}

// isAuthorization reports whether the group carries the authorization
// type marker. Existence check only: extra triples of any kind do not
// disqualify a group.
func isAuthorization(triples []rdf.Triple) bool {
	for _, t := range triples {
		if t.Predicate == vocab.PredType && t.Object == vocab.TypeAuthorization {
			return true
		}
	}

	return false
}

// decodeRule dispatches each triple of a rule-classified group to its
// rule field. Unrecognized predicates are preserved on the rule.
func decodeRule(triples []rdf.Triple) (*acl.Rule, error) {
	rule := acl.NewRule()

	for _, t := range triples {
		switch vocab.Lookup(t.Predicate) {
		case vocab.Mode:
			rule.AddPermission(t.Object)
		case vocab.AccessTo:
			rule.AddAccessTo(t.Object)
		case vocab.Agent:
			rule.AddAgent(t.Object)
		case vocab.AgentGroup:
			rule.AddGroup(t.Object)
		case vocab.AgentClass:
			switch t.Object {
			case vocab.ClassPublic:
				rule.Agents.Public = true
			case vocab.ClassAuthenticated:
				rule.Agents.Authenticated = true
			default:
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedAgentClass, t.Object)
			}
		case vocab.Default:
			rule.SetDefault(t.Object)
		case vocab.DefaultForNew:
			rule.SetDefaultForNew(t.Object)
		case vocab.Type:
			// Classification marker; no field effect.
		default:
			rule.OtherQuads = append(rule.OtherQuads, t)
		}
	}

	return rule, nil
}

// subjectOrder merges the caller-supplied order with any subjects it
// misses, keeping output deterministic.
func subjectOrder(groups map[string][]rdf.Triple, order []string) []string {
	seen := make(map[string]struct{}, len(order))

	out := make([]string, 0, len(groups))

	for _, subject := range order {
		if _, ok := groups[subject]; !ok {
			continue
		}

		if _, dup := seen[subject]; dup {
			continue
		}

		seen[subject] = struct{}{}
		out = append(out, subject)
	}

	var rest []string

	for subject := range groups {
		if _, ok := seen[subject]; !ok {
			rest = append(rest, subject)
		}
	}

	sort.Strings(rest)

	return append(out, rest...)
}
