// Package acl models WebID ACL authorization rules and the documents
// that contain them.
package acl

import "github.com/serroba/webacl/internal/rdf"

// Agents holds every form of grantee a rule can name. The four forms
// are additive: a rule may grant to explicit WebIDs, groups, and the
// public or authenticated classes at the same time.
type Agents struct {
	// WebIDs are explicit agent identities.
	WebIDs []string

	// Groups are agent group identifiers.
	Groups []string

	// Public grants to every agent (foaf:Agent).
	Public bool

	// Authenticated grants to any logged-in agent.
	Authenticated bool
}

// IsEmpty returns true if no agent form is present.
func (a Agents) IsEmpty() bool {
	return len(a.WebIDs) == 0 && len(a.Groups) == 0 && !a.Public && !a.Authenticated
}

// Rule is one authorization statement: a set of permissions granted to
// a set of agents over a set of target resources.
type Rule struct {
	// Permissions is the set of access mode identifiers. Unique,
	// insertion-ordered for stable serialization.
	Permissions []string

	// Agents are the grantees.
	Agents Agents

	// AccessTo lists the target resource identifiers.
	AccessTo []string

	// Default, when set, names a container whose descendants this
	// rule also applies to.
	Default string

	// DefaultForNew is the deprecated alias of Default. It is only
	// populated when the legacy predicate was present in the source;
	// setting Default alone never sets it.
	DefaultForNew string

	// OtherQuads preserves triples on this rule's subject whose
	// predicate is outside the recognized vocabulary.
	OtherQuads []rdf.Triple
}

// NewRule creates an empty rule.
func NewRule() *Rule {
	return &Rule{}
}

// AddPermission adds a mode identifier to the permission set.
// Duplicates are ignored.
func (r *Rule) AddPermission(mode string) {
	r.Permissions = appendUnique(r.Permissions, mode)
}

// AddAccessTo appends a target resource identifier.
// Duplicates are ignored.
func (r *Rule) AddAccessTo(resource string) {
	r.AccessTo = appendUnique(r.AccessTo, resource)
}

// AddAgent adds an explicit WebID grantee.
func (r *Rule) AddAgent(webID string) {
	r.Agents.WebIDs = appendUnique(r.Agents.WebIDs, webID)
}

// AddGroup adds an agent group grantee.
func (r *Rule) AddGroup(group string) {
	r.Agents.Groups = appendUnique(r.Agents.Groups, group)
}

// SetDefault marks the rule as applying to descendants of container.
func (r *Rule) SetDefault(container string) {
	r.Default = container
}

// SetDefaultForNew records the legacy alias. The current field is set
// alongside it so consumers never need to check both.
func (r *Rule) SetDefaultForNew(container string) {
	r.DefaultForNew = container
	r.Default = container
}

// HasPermission reports whether the rule grants the given mode.
func (r *Rule) HasPermission(mode string) bool {
	for _, p := range r.Permissions {
		if p == mode {
			return true
		}
	}

	return false
}

// merge folds other's grants into r: permissions, agents and accessTo
// targets are unioned, unset default fields filled in, other quads
// concatenated.
func (r *Rule) merge(other *Rule) {
	for _, mode := range other.Permissions {
		r.AddPermission(mode)
	}

	for _, target := range other.AccessTo {
		r.AddAccessTo(target)
	}

	for _, webID := range other.Agents.WebIDs {
		r.AddAgent(webID)
	}

	for _, group := range other.Agents.Groups {
		r.AddGroup(group)
	}

	r.Agents.Public = r.Agents.Public || other.Agents.Public
	r.Agents.Authenticated = r.Agents.Authenticated || other.Agents.Authenticated

	if r.Default == "" {
		r.Default = other.Default
	}

	if r.DefaultForNew == "" {
		r.DefaultForNew = other.DefaultForNew
	}

	r.OtherQuads = append(r.OtherQuads, other.OtherQuads...)
}

// appendUnique appends value unless already present.
func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}

	return append(list, value)
}
