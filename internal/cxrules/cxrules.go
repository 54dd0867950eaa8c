package cxrules

import "fmt"

// Rule is a CXR-series issue code.
type Rule int

const (
	ruleInvalid Rule = iota

	CXR000InvalidHandle
	CXR010KindMismatch
	CXR020UnregisteredKind
	CXR030UnknownNativeKind
	CXR040PartialOverlap
)

// String returns the canonical code and short name of the rule.
// Example: "CXR000: InvalidHandle"
func (r Rule) String() string {
	switch r {
	case CXR000InvalidHandle:
		return "CXR000: InvalidHandle"
	case CXR010KindMismatch:
		return "CXR010: KindMismatch"
	case CXR020UnregisteredKind:
		return "CXR020: UnregisteredKind"
	case CXR030UnknownNativeKind:
		return "CXR030: UnknownNativeKind"
	case CXR040PartialOverlap:
		return "CXR040: PartialOverlap"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CXR000InvalidHandle:
		return "Cursor is null, disposed or does not belong to its unit."
	case CXR010KindMismatch:
		return "Wrapper discriminants disagree with its handle."
	case CXR020UnregisteredKind:
		return "No wrapper is registered for the cursor kind and statement class pair."
	case CXR030UnknownNativeKind:
		return "Native node kind is unknown and exposed as an unexposed cursor."
	case CXR040PartialOverlap:
		return "Source span partially overlaps a sibling span and cannot be nested."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Code returns the bare code, like "CXR010".
func (r Rule) Code() string {
	if r <= ruleInvalid || r > CXR040PartialOverlap {
		return ""
	}

	return r.String()[:6]
}

// Canonical constructors, for readability and stable call sites.

func InvalidHandle() Rule     { return CXR000InvalidHandle }
func KindMismatch() Rule      { return CXR010KindMismatch }
func UnregisteredKind() Rule  { return CXR020UnregisteredKind }
func UnknownNativeKind() Rule { return CXR030UnknownNativeKind }
func PartialOverlap() Rule    { return CXR040PartialOverlap }
