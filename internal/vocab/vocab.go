// Package vocab defines the Web Access Control vocabulary: the
// predicate IRIs recognized by the codec and the enumerated object
// values they accept.
package vocab

// Namespace base IRIs.
const (
	ACL  = "http://www.w3.org/ns/auth/acl#"
	FOAF = "http://xmlns.com/foaf/0.1/"
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Recognized predicate IRIs.
const (
	PredMode          = ACL + "mode"
	PredAgent         = ACL + "agent"
	PredAgentGroup    = ACL + "agentGroup"
	PredAgentClass    = ACL + "agentClass"
	PredAccessTo      = ACL + "accessTo"
	PredDefault       = ACL + "default"
	PredDefaultForNew = ACL + "defaultForNew"
	PredType          = RDF + "type"
)

// Object value IRIs.
const (
	// TypeAuthorization marks a subject group as an authorization rule.
	TypeAuthorization = ACL + "Authorization"

	// ClassPublic is the agentClass value granting to everyone.
	ClassPublic = FOAF + "Agent"

	// ClassAuthenticated is the agentClass value granting to any
	// logged-in agent.
	ClassAuthenticated = ACL + "AuthenticatedAgent"
)

// Well-known access mode IRIs.
const (
	ModeRead    = ACL + "Read"
	ModeWrite   = ACL + "Write"
	ModeAppend  = ACL + "Append"
	ModeControl = ACL + "Control"
)

// Predicate identifies one of the recognized predicate kinds.
type Predicate int

const (
	// Unrecognized is returned for predicates outside the vocabulary.
	Unrecognized Predicate = iota
	Mode
	Agent
	AgentGroup
	AgentClass
	AccessTo
	Default
	DefaultForNew
	Type
)

// predicateIRIs maps each recognized kind to its canonical IRI.
// This table is the single source of truth for both lookup directions.
var predicateIRIs = map[Predicate]string{
	Mode:          PredMode,
	Agent:         PredAgent,
	AgentGroup:    PredAgentGroup,
	AgentClass:    PredAgentClass,
	AccessTo:      PredAccessTo,
	Default:       PredDefault,
	DefaultForNew: PredDefaultForNew,
	Type:          PredType,
}

var iriPredicates = func() map[string]Predicate {
	m := make(map[string]Predicate, len(predicateIRIs))

	for kind, iri := range predicateIRIs {
		m[iri] = kind
	}

	return m
}()

// Lookup classifies a predicate IRI, returning Unrecognized for
// anything outside the vocabulary.
func Lookup(iri string) Predicate {
	return iriPredicates[iri]
}

// IRI returns the canonical identifier for a recognized predicate.
// Returns empty string for Unrecognized.
func (p Predicate) IRI() string {
	return predicateIRIs[p]
}

// String returns the short vocabulary name of the predicate.
func (p Predicate) String() string {
	switch p {
	case Mode:
		return "mode"
	case Agent:
		return "agent"
	case AgentGroup:
		return "agentGroup"
	case AgentClass:
		return "agentClass"
	case AccessTo:
		return "accessTo"
	case Default:
		return "default"
	case DefaultForNew:
		return "defaultForNew"
	case Type:
		return "type"
	default:
		return "unrecognized"
	}
}
