package cxrules

import (
	"strings"
	"testing"
)

func TestRule_Strings(t *testing.T) {
	rules := []Rule{
		InvalidHandle(),
		KindMismatch(),
		UnregisteredKind(),
		UnknownNativeKind(),
		PartialOverlap(),
	}

	seen := map[string]bool{}
	for _, r := range rules {
		s := r.String()
		if !strings.HasPrefix(s, r.Code()+": ") {
			t.Errorf("rule %s must start with its code %q", s, r.Code())
		}
		if seen[r.Code()] {
			t.Errorf("duplicate code %s", r.Code())
		}
		seen[r.Code()] = true

		if strings.HasPrefix(r.Description(), "unknown-rule") {
			t.Errorf("rule %s has no description", s)
		}
	}

	if got := Rule(100).String(); got != "rule-unknown(100)" {
		t.Errorf("unexpected invalid rule rendering %q", got)
	}
	if got := Rule(100).Code(); got != "" {
		t.Errorf("invalid rule must have no code, got %q", got)
	}
}
