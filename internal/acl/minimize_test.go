package acl_test

import (
	"testing"

	"github.com/serroba/webacl/internal/acl"
	"github.com/serroba/webacl/internal/rdf"
	"github.com/serroba/webacl/internal/vocab"
)

const testResource = "https://example.org/file.txt"

func TestMinimize_UnionsSameApplicability(t *testing.T) {
	t.Parallel()

	first := acl.NewRule()
	first.AddAccessTo(testResource)
	first.AddAgent("https://alice.example/#me")
	first.AddPermission(vocab.ModeRead)

	second := acl.NewRule()
	second.AddAccessTo(testResource)
	second.AddAgent("https://bob.example/#me")
	second.AddPermission(vocab.ModeWrite)

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: first},
		{Subject: "#b", Rule: second},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 merged rule, got %d", len(out))
	}

	merged := out[0].Rule

	if len(merged.Agents.WebIDs) != 2 {
		t.Errorf("expected 2 WebIDs after union, got %v", merged.Agents.WebIDs)
	}

	if !merged.HasPermission(vocab.ModeRead) || !merged.HasPermission(vocab.ModeWrite) {
		t.Errorf("expected unioned permissions, got %v", merged.Permissions)
	}

	if len(merged.AccessTo) != 1 || merged.AccessTo[0] != testResource {
		t.Errorf("accessTo changed by merge: %v", merged.AccessTo)
	}
}

func TestMinimize_DisjointTargetsNeverMerge(t *testing.T) {
	t.Parallel()

	first := acl.NewRule()
	first.AddAccessTo("https://example.org/a.txt")
	first.AddPermission(vocab.ModeRead)

	second := acl.NewRule()
	second.AddAccessTo("https://example.org/b.txt")
	second.AddPermission(vocab.ModeRead)

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: first},
		{Subject: "#b", Rule: second},
	})

	if len(out) != 2 {
		t.Errorf("expected 2 rules for disjoint targets, got %d", len(out))
	}
}

func TestMinimize_DefaultStatusSplitsGroups(t *testing.T) {
	t.Parallel()

	plain := acl.NewRule()
	plain.AddAccessTo(testResource)

	inheriting := acl.NewRule()
	inheriting.AddAccessTo(testResource)
	inheriting.SetDefault("https://example.org/")

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: plain},
		{Subject: "#b", Rule: inheriting},
	})

	if len(out) != 2 {
		t.Errorf("rules with different default status must not merge, got %d", len(out))
	}
}

func TestMinimize_LegacyAliasSplitsGroups(t *testing.T) {
	t.Parallel()

	current := acl.NewRule()
	current.AddAccessTo(testResource)
	current.SetDefault("https://example.org/")

	legacy := acl.NewRule()
	legacy.AddAccessTo(testResource)
	legacy.SetDefaultForNew("https://example.org/")

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: current},
		{Subject: "#b", Rule: legacy},
	})

	if len(out) != 2 {
		t.Errorf("legacy alias presence is part of applicability, got %d rules", len(out))
	}
}

func TestMinimize_PreservesOtherQuads(t *testing.T) {
	t.Parallel()

	first := acl.NewRule()
	first.AddAccessTo(testResource)
	first.OtherQuads = []rdf.Triple{
		rdf.NewTriple("#a", "http://example.org/custom", "http://example.org/one"),
	}

	second := acl.NewRule()
	second.AddAccessTo(testResource)
	second.OtherQuads = []rdf.Triple{
		rdf.NewTriple("#b", "http://example.org/custom", "http://example.org/two"),
	}

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: first},
		{Subject: "#b", Rule: second},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 merged rule, got %d", len(out))
	}

	if len(out[0].Rule.OtherQuads) != 2 {
		t.Errorf("expected both other quads preserved, got %d", len(out[0].Rule.OtherQuads))
	}
}

func TestMinimize_PublicAndAuthenticatedFlagsOr(t *testing.T) {
	t.Parallel()

	first := acl.NewRule()
	first.AddAccessTo(testResource)
	first.Agents.Public = true

	second := acl.NewRule()
	second.AddAccessTo(testResource)
	second.Agents.Authenticated = true

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "#a", Rule: first},
		{Subject: "#b", Rule: second},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 merged rule, got %d", len(out))
	}

	if !out[0].Rule.Agents.Public || !out[0].Rule.Agents.Authenticated {
		t.Errorf("expected both class flags set, got %+v", out[0].Rule.Agents)
	}
}

func TestMinimize_KeepsFirstRealSubject(t *testing.T) {
	t.Parallel()

	first := acl.NewRule()
	first.AddAccessTo(testResource)

	second := acl.NewRule()
	second.AddAccessTo(testResource)

	out := acl.Minimize([]acl.RuleEntry{
		{Subject: "", Rule: first},
		{Subject: "#named", Rule: second},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 merged rule, got %d", len(out))
	}

	if out[0].Subject != "#named" {
		t.Errorf("expected merged entry to adopt the named subject, got %q", out[0].Subject)
	}
}
